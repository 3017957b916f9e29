package paramset

import (
	"errors"
	"fmt"
	"strings"
)

// Definition and access errors
var (
	// ErrDefinition indicates a malformed definition set.
	ErrDefinition = errors.New("invalid parameter definition")

	// ErrUnknownParameter indicates a read of a name not in the definition set.
	ErrUnknownParameter = errors.New("unknown parameter")

	// ErrTypeMismatch indicates a typed read against a value of another kind.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrParse indicates text or a config node could not be coerced to a kind.
	ErrParse = errors.New("cannot parse value")
)

// Load errors
var (
	// ErrConfigFile indicates the config file is missing, malformed, or holds
	// a non-scalar or badly typed value at a parameter's path.
	ErrConfigFile = errors.New("config file error")

	// ErrCLIArgument indicates a bad command-line option value.
	ErrCLIArgument = errors.New("invalid command-line argument")

	// ErrMissingRequired indicates a required option was not given.
	ErrMissingRequired = errors.New("missing required parameter")

	// ErrInsufficientArguments indicates too few positional arguments.
	ErrInsufficientArguments = errors.New("insufficient positional arguments")
)

// DefinitionError reports a problem with one definition.
type DefinitionError struct {
	Name   string // Parameter name, may be empty
	Reason string
}

func (e *DefinitionError) Error() string {
	if e.Name == "" {
		return "definition: " + e.Reason
	}
	return fmt.Sprintf("definition %q: %s", e.Name, e.Reason)
}

func (e *DefinitionError) Unwrap() error {
	return ErrDefinition
}

// UnknownParameterError reports a lookup of an undefined name.
type UnknownParameterError struct {
	Name string
}

func (e *UnknownParameterError) Error() string {
	return fmt.Sprintf("unknown parameter %q", e.Name)
}

func (e *UnknownParameterError) Unwrap() error {
	return ErrUnknownParameter
}

// TypeMismatchError reports a typed read of a value holding another kind.
type TypeMismatchError struct {
	Name string // Parameter name, empty for a bare Value
	Want Kind
	Got  Kind
}

func (e *TypeMismatchError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("type mismatch: value is %s, requested %s", e.Got, e.Want)
	}
	return fmt.Sprintf("type mismatch: parameter %q is %s, requested %s", e.Name, e.Got, e.Want)
}

func (e *TypeMismatchError) Unwrap() error {
	return ErrTypeMismatch
}

// ParseError reports a failed coercion into Kind.
type ParseError struct {
	Input string // Offending text, or a description of the config node
	Kind  Kind
	Err   error // Underlying error, may be nil
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("cannot parse %s as %s", e.Input, e.Kind)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	if e.Err == nil {
		return ErrParse
	}
	return errors.Join(ErrParse, e.Err)
}

// ConfigFileError reports a failure reading the config file or applying one
// of its values.
type ConfigFileError struct {
	Path    string   // Config file path
	KeyPath []string // Key path inside the file, empty for whole-file errors
	Name    string   // Parameter name, empty for whole-file errors
	Err     error
}

func (e *ConfigFileError) Error() string {
	if len(e.KeyPath) == 0 {
		return fmt.Sprintf("config file %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("config file %s: %s (parameter %q): %v",
		e.Path, strings.Join(e.KeyPath, "."), e.Name, e.Err)
}

func (e *ConfigFileError) Unwrap() error {
	return errors.Join(ErrConfigFile, e.Err)
}

// CLIArgumentError reports a bad option on the command line.
type CLIArgumentError struct {
	Option string // Option token as written, e.g. "--count" or "-c"
	Name   string // Parameter name
	Err    error
}

func (e *CLIArgumentError) Error() string {
	return fmt.Sprintf("option %s (parameter %q): %v", e.Option, e.Name, e.Err)
}

func (e *CLIArgumentError) Unwrap() error {
	return errors.Join(ErrCLIArgument, e.Err)
}

// errMissingValue is the cause of a CLIArgumentError for an option given
// as the last token.
var errMissingValue = errors.New("missing value")

// MissingRequiredError reports a required option absent from the command line.
type MissingRequiredError struct {
	Name   string
	Option string // Long option, e.g. "--input"
}

func (e *MissingRequiredError) Error() string {
	return fmt.Sprintf("parameter %q is required: pass %s <value>", e.Name, e.Option)
}

func (e *MissingRequiredError) Unwrap() error {
	return ErrMissingRequired
}

// InsufficientArgumentsError reports fewer positional arguments than required.
type InsufficientArgumentsError struct {
	Want int
	Got  int
}

func (e *InsufficientArgumentsError) Error() string {
	return fmt.Sprintf("requires at least %d positional arguments, got %d", e.Want, e.Got)
}

func (e *InsufficientArgumentsError) Unwrap() error {
	return ErrInsufficientArguments
}
