package errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/randalmurphal/paramset"
	"github.com/randalmurphal/paramset/config"
)

// CLIError wraps an error with user-friendly context and suggestions.
type CLIError struct {
	// Err is the underlying error
	Err error

	// Message is a user-friendly description of what went wrong
	Message string

	// Suggestion is an actionable hint for the user
	Suggestion string

	// Details provides additional context (optional)
	Details string
}

func (e *CLIError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Message)

	if e.Details != "" {
		sb.WriteString("\n")
		sb.WriteString(e.Details)
	}

	if e.Suggestion != "" {
		sb.WriteString("\n\n")
		sb.WriteString(e.Suggestion)
	}

	return sb.String()
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// ErrorMessenger provides customizable error messages.
// Implement this interface to word failures for your program.
type ErrorMessenger interface {
	// InvalidOptionMessage returns the message and suggestion for a bad
	// option value. reason describes what was wrong with it.
	InvalidOptionMessage(option, reason string) (message, suggestion string)

	// MissingRequiredMessage returns the message and suggestion for a
	// required option that was not given.
	MissingRequiredMessage(option string) (message, suggestion string)

	// InsufficientArgumentsMessage returns the message and suggestion for
	// too few positional arguments.
	InsufficientArgumentsMessage(want, got int) (message, suggestion string)

	// ConfigNotFoundMessage returns the message and suggestion for a config
	// file named on the command line that does not exist.
	ConfigNotFoundMessage(path string) (message, suggestion string)

	// ConfigSyntaxMessage returns the message and suggestion for a config
	// file that cannot be parsed.
	ConfigSyntaxMessage(path string) (message, suggestion string)

	// ConfigValueMessage returns the message and suggestion for a config
	// value of the wrong shape or kind. key is dot-separated.
	ConfigValueMessage(path, key string) (message, suggestion string)

	// DefinitionMessage returns the message and suggestion for a malformed
	// definition set.
	DefinitionMessage() (message, suggestion string)
}

// DefaultMessenger provides default error messages.
type DefaultMessenger struct{}

func (m DefaultMessenger) InvalidOptionMessage(option, reason string) (string, string) {
	return fmt.Sprintf("Invalid value for %s: %s", option, reason),
		"Check the option's expected type in the usage below."
}

func (m DefaultMessenger) MissingRequiredMessage(option string) (string, string) {
	return fmt.Sprintf("Option %s is required.", option),
		fmt.Sprintf("Pass %s <value> on the command line.", option)
}

func (m DefaultMessenger) InsufficientArgumentsMessage(want, got int) (string, string) {
	return fmt.Sprintf("Expected at least %d arguments, got %d.", want, got),
		"Add the missing positional arguments."
}

func (m DefaultMessenger) ConfigNotFoundMessage(path string) (string, string) {
	return fmt.Sprintf("Config file %s does not exist.", path),
		"Check the path given to the config option."
}

func (m DefaultMessenger) ConfigSyntaxMessage(path string) (string, string) {
	return fmt.Sprintf("Config file %s could not be parsed.", path),
		"Fix the syntax error shown above."
}

func (m DefaultMessenger) ConfigValueMessage(path, key string) (string, string) {
	return fmt.Sprintf("Config file %s has an invalid value at %s.", path, key),
		"Set the key to a single value of the expected type, or remove it."
}

func (m DefaultMessenger) DefinitionMessage() (string, string) {
	return "The program's parameter definitions are invalid.",
		"This is a bug in the program, not in how it was run."
}

// WrapConfig configures error wrapping behavior.
type WrapConfig struct {
	Messenger ErrorMessenger
}

// Option configures WrapConfig.
type Option func(*WrapConfig)

// WithMessenger sets a custom error messenger.
func WithMessenger(m ErrorMessenger) Option {
	return func(c *WrapConfig) {
		c.Messenger = m
	}
}

func getMessenger(opts []Option) ErrorMessenger {
	cfg := &WrapConfig{
		Messenger: DefaultMessenger{},
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg.Messenger
}

// Wrap turns a paramset failure into a CLIError. For command-line mistakes
// usage is attached as details. Errors that are not paramset failures, and
// errors that are already CLIErrors, are returned unchanged.
func Wrap(err error, usage string, opts ...Option) error {
	if err == nil {
		return nil
	}

	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return err
	}

	messenger := getMessenger(opts)

	var (
		argErr      *paramset.CLIArgumentError
		requiredErr *paramset.MissingRequiredError
		countErr    *paramset.InsufficientArgumentsError
		fileErr     *paramset.ConfigFileError
	)
	switch {
	case errors.As(err, &argErr):
		msg, suggestion := messenger.InvalidOptionMessage(argErr.Option, argErr.Err.Error())
		return &CLIError{Err: err, Message: msg, Suggestion: suggestion, Details: usage}

	case errors.As(err, &requiredErr):
		msg, suggestion := messenger.MissingRequiredMessage(requiredErr.Option)
		return &CLIError{Err: err, Message: msg, Suggestion: suggestion, Details: usage}

	case errors.As(err, &countErr):
		msg, suggestion := messenger.InsufficientArgumentsMessage(countErr.Want, countErr.Got)
		return &CLIError{Err: err, Message: msg, Suggestion: suggestion, Details: usage}

	case errors.As(err, &fileErr):
		return wrapConfigError(fileErr, err, messenger)

	case errors.Is(err, paramset.ErrDefinition):
		msg, suggestion := messenger.DefinitionMessage()
		return &CLIError{Err: err, Message: msg, Suggestion: suggestion, Details: err.Error()}
	}

	return err
}

func wrapConfigError(fileErr *paramset.ConfigFileError, err error, messenger ErrorMessenger) error {
	var msg, suggestion string
	switch {
	case errors.Is(fileErr.Err, config.ErrNotFound):
		msg, suggestion = messenger.ConfigNotFoundMessage(fileErr.Path)
		return &CLIError{Err: err, Message: msg, Suggestion: suggestion}
	case errors.Is(fileErr.Err, config.ErrSyntax):
		msg, suggestion = messenger.ConfigSyntaxMessage(fileErr.Path)
	case len(fileErr.KeyPath) > 0:
		msg, suggestion = messenger.ConfigValueMessage(fileErr.Path, strings.Join(fileErr.KeyPath, "."))
	default:
		return err
	}
	return &CLIError{Err: err, Message: msg, Suggestion: suggestion, Details: fileErr.Err.Error()}
}
