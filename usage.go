package paramset

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// usageValue exposes a definition's default to pflag for help rendering.
type usageValue struct {
	def Definition
}

func (u usageValue) String() string {
	return u.def.Default.String()
}

// Set is never called; the flag set is only used to render help.
func (u usageValue) Set(string) error {
	return fmt.Errorf("option %s is not parsed by pflag", u.def.LongFlag())
}

// Type names the placeholder pflag prints after the option. Booleans use
// "boolean" rather than "bool" so pflag shows that a value is expected.
func (u usageValue) Type() string {
	switch u.def.Kind() {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "boolean"
	default:
		return "string"
	}
}

// flagSet builds a pflag.FlagSet mirroring the command-line options.
func (m *Manager) flagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet(m.program, pflag.ContinueOnError)
	fs.SortFlags = false
	for _, d := range m.defs {
		if !d.CLISettable() {
			continue
		}
		desc := d.Description
		if d.Required {
			desc = strings.TrimSpace(desc + " (required)")
		}
		short := ""
		if d.Short != NoShort {
			short = string(d.Short)
		}
		fs.VarP(usageValue{def: d}, d.Long, short, desc)
	}
	return fs
}

// Usage renders a help text listing every command-line option with its
// value type, description and default.
func (m *Manager) Usage() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Usage: %s [options] [args...]\n", m.program)

	fs := m.flagSet()
	if fs.HasFlags() {
		b.WriteString("\nOptions:\n")
		b.WriteString(fs.FlagUsages())
	}
	return b.String()
}
