package paramset

import (
	"fmt"
	"strings"
	"unicode"
)

// NoShort marks a definition without a single-character option.
const NoShort rune = 0

// Definition describes one parameter: its name, its default (which fixes
// its kind for good), where the config file holds it, and how it is spelled
// on the command line. A definition with neither a config path nor a long
// option is a constant.
type Definition struct {
	Name        string
	Default     Value
	ConfigPath  []string // Key path inside the config file; nil if not file-settable
	Long        string   // Long option without dashes; empty if not CLI-settable
	Short       rune     // Short option, or NoShort
	Description string
	Required    bool // Must be given on the command line; needs Long
}

// Const defines a parameter no source can override.
func Const(name string, value Value) Definition {
	return Definition{Name: name, Default: value}
}

// File defines a parameter settable only from the config file.
func File(name string, def Value, path ...string) Definition {
	return Definition{Name: name, Default: def, ConfigPath: path}
}

// Option defines a parameter settable only from the command line.
func Option(name string, def Value, long string, short rune, description string) Definition {
	return Definition{
		Name:        name,
		Default:     def,
		Long:        long,
		Short:       short,
		Description: description,
	}
}

// Param defines a parameter settable from both the config file and the
// command line.
func Param(name string, def Value, path []string, long string, short rune, description string) Definition {
	return Definition{
		Name:        name,
		Default:     def,
		ConfigPath:  path,
		Long:        long,
		Short:       short,
		Description: description,
	}
}

// MarkRequired returns a copy of d that must be given on the command line.
func (d Definition) MarkRequired() Definition {
	d.Required = true
	return d
}

// FileSettable reports whether the config file can set d.
func (d Definition) FileSettable() bool { return len(d.ConfigPath) > 0 }

// CLISettable reports whether the command line can set d.
func (d Definition) CLISettable() bool { return d.Long != "" }

// IsConstant reports whether no source can override d.
func (d Definition) IsConstant() bool { return !d.FileSettable() && !d.CLISettable() }

// Kind returns the kind fixed by the default.
func (d Definition) Kind() Kind { return d.Default.Kind() }

// LongFlag returns the long option as typed, e.g. "--count".
func (d Definition) LongFlag() string {
	if d.Long == "" {
		return ""
	}
	return "--" + d.Long
}

// ShortFlag returns the short option as typed, e.g. "-c".
func (d Definition) ShortFlag() string {
	if d.Short == NoShort {
		return ""
	}
	return "-" + string(d.Short)
}

func (d Definition) validate() error {
	if d.Name == "" {
		return &DefinitionError{Reason: "empty name"}
	}
	if !d.Default.IsValid() {
		return &DefinitionError{Name: d.Name, Reason: "default value is not set"}
	}
	for i, key := range d.ConfigPath {
		if key == "" {
			return &DefinitionError{Name: d.Name, Reason: fmt.Sprintf("config path element %d is empty", i)}
		}
	}
	if d.Long != "" {
		if strings.HasPrefix(d.Long, "-") {
			return &DefinitionError{Name: d.Name, Reason: fmt.Sprintf("long option %q must not start with '-'", d.Long)}
		}
		if strings.ContainsFunc(d.Long, func(r rune) bool { return r == '=' || unicode.IsSpace(r) }) {
			return &DefinitionError{Name: d.Name, Reason: fmt.Sprintf("long option %q must not contain '=' or spaces", d.Long)}
		}
	}
	if d.Short != NoShort {
		if d.Long == "" {
			return &DefinitionError{Name: d.Name, Reason: "short option needs a long option"}
		}
		if d.Short > unicode.MaxASCII || d.Short == '-' || !unicode.IsGraphic(d.Short) || unicode.IsSpace(d.Short) {
			return &DefinitionError{Name: d.Name, Reason: fmt.Sprintf("invalid short option %q", d.Short)}
		}
	}
	if d.Required && d.Long == "" {
		return &DefinitionError{Name: d.Name, Reason: "required parameter needs a command-line option"}
	}
	return nil
}

// Definitions is an ordered definition set. It is owned by the caller and
// never modified by a Manager.
type Definitions []Definition

// Validate checks every definition and rejects duplicate names, duplicate
// options and config paths that overlap. A config path may not equal
// another or be a prefix of it.
func (defs Definitions) Validate() error {
	names := make(map[string]bool, len(defs))
	longs := make(map[string]string)
	shorts := make(map[rune]string)

	for _, d := range defs {
		if err := d.validate(); err != nil {
			return err
		}
		if names[d.Name] {
			return &DefinitionError{Name: d.Name, Reason: "duplicate name"}
		}
		names[d.Name] = true

		if d.Long != "" {
			if other, ok := longs[d.Long]; ok {
				return &DefinitionError{Name: d.Name, Reason: fmt.Sprintf("option --%s already used by %q", d.Long, other)}
			}
			longs[d.Long] = d.Name
		}
		if d.Short != NoShort {
			if other, ok := shorts[d.Short]; ok {
				return &DefinitionError{Name: d.Name, Reason: fmt.Sprintf("option -%c already used by %q", d.Short, other)}
			}
			shorts[d.Short] = d.Name
		}
	}
	return defs.validateConfigPaths()
}

func (defs Definitions) validateConfigPaths() error {
	for i, d := range defs {
		for j, other := range defs {
			if i == j || len(other.ConfigPath) < len(d.ConfigPath) || !hasPathPrefix(other.ConfigPath, d.ConfigPath) {
				continue
			}
			if len(other.ConfigPath) == len(d.ConfigPath) {
				if j < i {
					continue
				}
				return &DefinitionError{
					Name:   other.Name,
					Reason: fmt.Sprintf("config path %s already used by %q", strings.Join(other.ConfigPath, "."), d.Name),
				}
			}
			return &DefinitionError{
				Name:   other.Name,
				Reason: fmt.Sprintf("config path %s is nested under %q at %s", strings.Join(other.ConfigPath, "."), d.Name, strings.Join(d.ConfigPath, ".")),
			}
		}
	}
	return nil
}

func hasPathPrefix(path, prefix []string) bool {
	if len(prefix) == 0 {
		return false
	}
	for i, key := range prefix {
		if path[i] != key {
			return false
		}
	}
	return true
}

// Lookup returns the definition named name.
func (defs Definitions) Lookup(name string) (Definition, bool) {
	for _, d := range defs {
		if d.Name == name {
			return d, true
		}
	}
	return Definition{}, false
}
