// Package errors presents paramset failures to the people running a program.
//
// Core types:
//   - CLIError: Wraps errors with message, suggestion, and details
//   - ErrorMessenger: Interface for customizing error messages
//
// Exit codes:
//   - ExitUsage (2): Bad option value, missing required option, too few arguments
//   - ExitFailure (1): Config file and every other failure
//
// Example usage:
//
//	if err := pm.Load(args, "conf", 2); err != nil {
//	    err = errors.Wrap(err, pm.Usage())
//	    fmt.Fprintln(os.Stderr, err)
//	    os.Exit(errors.ExitCode(err))
//	}
//
//	// Wrap with custom messages
//	type MyMessenger struct{ errors.DefaultMessenger }
//	func (m MyMessenger) MissingRequiredMessage(option string) (string, string) {
//	    return "Missing " + option, "See 'myapp --help'."
//	}
//
//	wrapped := errors.Wrap(err, usage, errors.WithMessenger(MyMessenger{}))
//
//	// Check error types
//	if errors.IsConfigError(err) {
//	    // Handle config file problems
//	}
package errors
