package errors

// Process exit codes.
const (
	// ExitOK indicates success.
	ExitOK = 0

	// ExitFailure indicates a runtime failure, including config file errors.
	ExitFailure = 1

	// ExitUsage indicates the program was invoked incorrectly.
	ExitUsage = 2
)

// ExitCode maps an error to the process exit code: ExitOK for nil,
// ExitUsage for command-line mistakes, ExitFailure otherwise.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case IsUsageError(err):
		return ExitUsage
	default:
		return ExitFailure
	}
}
