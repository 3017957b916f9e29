package errors

import (
	"errors"

	"github.com/randalmurphal/paramset"
	"github.com/randalmurphal/paramset/config"
)

// IsUsageError checks if an error is a command-line mistake: a bad option
// value, a missing required option or too few positional arguments.
func IsUsageError(err error) bool {
	if err == nil {
		return false
	}

	return errors.Is(err, paramset.ErrCLIArgument) ||
		errors.Is(err, paramset.ErrMissingRequired) ||
		errors.Is(err, paramset.ErrInsufficientArguments)
}

// IsConfigError checks if an error comes from reading the config file.
func IsConfigError(err error) bool {
	if err == nil {
		return false
	}

	return errors.Is(err, paramset.ErrConfigFile) ||
		errors.Is(err, config.ErrNotFound) ||
		errors.Is(err, config.ErrSyntax)
}

// IsDefinitionError checks if an error is a programming mistake in the
// definition set or in how it is used.
func IsDefinitionError(err error) bool {
	if err == nil {
		return false
	}

	return errors.Is(err, paramset.ErrDefinition) ||
		errors.Is(err, paramset.ErrUnknownParameter)
}
