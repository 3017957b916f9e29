package paramset

// validate checks required options, in definition order, then the number
// of positional arguments. The first failure is returned.
func (m *Manager) validate(minPositional int) error {
	for _, d := range m.defs {
		if d.Required && m.sources[d.Name] != SourceFlag {
			return &MissingRequiredError{Name: d.Name, Option: d.LongFlag()}
		}
	}
	if len(m.rest) < minPositional {
		return &InsufficientArgumentsError{Want: minPositional, Got: len(m.rest)}
	}
	return nil
}
