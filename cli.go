package paramset

import (
	"log/slog"
	"strings"
)

// optionToken is one recognised option on the command line.
type optionToken struct {
	def       Definition
	spelling  string // option as written, without any inline value
	inline    string
	hasInline bool
}

// matchOption reports whether tok names a defined option. Accepted forms are
// "--long", "--long=value" and "-s". Anything else, including unknown
// options, is not an option token.
func (m *Manager) matchOption(tok string) (optionToken, bool) {
	switch {
	case strings.HasPrefix(tok, "--") && len(tok) > 2:
		name, value, hasValue := strings.Cut(tok[2:], "=")
		for _, d := range m.defs {
			if d.Long != "" && d.Long == name {
				return optionToken{def: d, spelling: "--" + name, inline: value, hasInline: hasValue}, true
			}
		}
	case strings.HasPrefix(tok, "-") && !strings.HasPrefix(tok, "--"):
		r := []rune(tok[1:])
		if len(r) != 1 {
			return optionToken{}, false
		}
		for _, d := range m.defs {
			if d.Short != NoShort && d.Short == r[0] {
				return optionToken{def: d, spelling: tok}, true
			}
		}
	}
	return optionToken{}, false
}

// optionValue returns the value text for the option at args[i] and the
// index of the last token it consumed.
func optionValue(opt optionToken, args []string, i int) (string, int, bool) {
	if opt.hasInline {
		return opt.inline, i, true
	}
	if i+1 >= len(args) {
		return "", i, false
	}
	return args[i+1], i + 1, true
}

// scanOption looks for target's option only. Other known options are not
// applied, but their values are stepped over so a value token is never
// mistaken for an option name.
func (m *Manager) scanOption(args []string, target Definition) (string, bool, error) {
	if !target.CLISettable() {
		return "", false, nil
	}

	var (
		text  string
		found bool
	)
	for i := 0; i < len(args); i++ {
		opt, ok := m.matchOption(args[i])
		if !ok {
			continue
		}
		value, next, hasValue := optionValue(opt, args, i)
		if opt.def.Name != target.Name {
			i = next
			continue
		}
		if !hasValue {
			return "", false, &CLIArgumentError{Option: opt.spelling, Name: target.Name, Err: errMissingValue}
		}
		text, found = value, true
		i = next
	}

	if found {
		m.logger.Debug("config path from command line",
			slog.String("name", target.Name),
			slog.String("path", text))
	}
	return text, found, nil
}

// mergeArgs applies every option on the command line and collects the
// remaining tokens into rest.
func (m *Manager) mergeArgs(args []string) error {
	rest := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		tok := args[i]
		opt, ok := m.matchOption(tok)
		if !ok {
			rest = append(rest, tok)
			continue
		}

		value, next, hasValue := optionValue(opt, args, i)
		if !hasValue {
			return &CLIArgumentError{Option: opt.spelling, Name: opt.def.Name, Err: errMissingValue}
		}
		v, err := ParseValue(value, opt.def.Kind())
		if err != nil {
			return &CLIArgumentError{Option: opt.spelling, Name: opt.def.Name, Err: err}
		}
		m.set(opt.def, v, SourceFlag)
		i = next
	}

	m.rest = rest
	return nil
}
