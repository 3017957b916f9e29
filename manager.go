package paramset

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/randalmurphal/paramset/config"
)

// Reader is read-only access to resolved parameters. Pass it to code that
// needs configuration instead of sharing the Manager.
type Reader interface {
	// Get returns the current value of a parameter.
	Get(name string) (Value, error)
	// Rest returns the positional arguments left over by option parsing.
	Rest() []string
}

// Manager holds the current value of every defined parameter and resolves
// them from defaults, the config file and the command line.
//
// A Manager is not safe for concurrent use while Load runs. Once Load has
// returned, concurrent reads are safe.
type Manager struct {
	defs    Definitions
	index   map[string]int
	values  map[string]Value
	sources map[string]Source
	rest    []string

	parser  config.Parser
	logger  *slog.Logger
	program string
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger used for debug records during Load.
// A nil logger disables logging.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithParser replaces the config file parser. The default picks JSON, YAML
// or HCL from the file extension.
func WithParser(p config.Parser) Option {
	return func(m *Manager) {
		m.parser = p
	}
}

// WithProgramName sets the program name shown in Usage. Defaults to the
// base name of os.Args[0].
func WithProgramName(name string) Option {
	return func(m *Manager) {
		m.program = name
	}
}

// New validates defs and returns a Manager holding every default.
func New(defs Definitions, opts ...Option) (*Manager, error) {
	if err := defs.Validate(); err != nil {
		return nil, err
	}

	m := &Manager{
		defs:   defs,
		index:  make(map[string]int, len(defs)),
		parser: config.DefaultParser,
	}
	if len(os.Args) > 0 {
		m.program = filepath.Base(os.Args[0])
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	for i, d := range defs {
		m.index[d.Name] = i
	}
	m.reset()
	return m, nil
}

// reset restores every default and clears rest.
func (m *Manager) reset() {
	m.values = make(map[string]Value, len(m.defs))
	m.sources = make(map[string]Source, len(m.defs))
	for _, d := range m.defs {
		m.values[d.Name] = d.Default
		m.sources[d.Name] = SourceDefault
	}
	m.rest = nil
}

// set overwrites a parameter's value. The caller has already coerced v to
// the definition's kind.
func (m *Manager) set(d Definition, v Value, src Source) {
	m.values[d.Name] = v
	m.sources[d.Name] = src
	m.logger.Debug("parameter set",
		slog.String("name", d.Name),
		slog.String("value", v.String()),
		slog.String("source", string(src)))
}

// Load resolves parameters from args (program name excluded), reading the
// config file named by the parameter configParam, then checks that every
// required option was given and that at least minPositional positional
// arguments remain.
//
// The steps run in a fixed order: the command line is scanned for
// configParam alone, the config file is merged, every option on the
// command line is merged, then validation runs. Command-line values always
// win over the file, and the file over defaults. An empty configParam
// disables the config file.
//
// Each call starts again from the defaults. On error the store may hold
// a partial merge.
func (m *Manager) Load(args []string, configParam string, minPositional int) error {
	m.reset()

	path, err := m.resolveConfigPath(args, configParam)
	if err != nil {
		return err
	}
	if path != "" {
		if err := m.mergeFile(path); err != nil {
			return err
		}
	}

	if err := m.mergeArgs(args); err != nil {
		return err
	}

	if err := m.validate(minPositional); err != nil {
		return err
	}

	m.logger.Debug("parameters loaded",
		slog.Int("parameters", len(m.defs)),
		slog.Int("rest", len(m.rest)))
	return nil
}

// resolveConfigPath runs the bootstrap scan for configParam. An empty
// result means no config file is read.
func (m *Manager) resolveConfigPath(args []string, configParam string) (string, error) {
	if configParam == "" {
		return "", nil
	}

	d, ok := m.Lookup(configParam)
	if !ok {
		return "", &UnknownParameterError{Name: configParam}
	}
	if d.Kind() != KindText {
		return "", &TypeMismatchError{Name: configParam, Want: KindText, Got: d.Kind()}
	}

	text, found, err := m.scanOption(args, d)
	if err != nil {
		return "", err
	}
	if !found {
		path, _ := d.Default.AsText()
		return path, nil
	}

	m.set(d, Text(text), SourceFlag)
	return text, nil
}

// Get returns the current value of name.
func (m *Manager) Get(name string) (Value, error) {
	v, ok := m.values[name]
	if !ok {
		return Value{}, &UnknownParameterError{Name: name}
	}
	return v, nil
}

// get reads name through assign, naming the parameter in type errors.
func (m *Manager) get(name string, dst any) error {
	v, err := m.Get(name)
	if err != nil {
		return err
	}
	if err := assign(dst, v); err != nil {
		if tm, ok := err.(*TypeMismatchError); ok {
			tm.Name = name
		}
		return err
	}
	return nil
}

// Text returns the text value of name.
func (m *Manager) Text(name string) (string, error) {
	var s string
	err := m.get(name, &s)
	return s, err
}

// Int returns the integer value of name.
func (m *Manager) Int(name string) (int64, error) {
	var i int64
	err := m.get(name, &i)
	return i, err
}

// Float returns the float value of name.
func (m *Manager) Float(name string) (float64, error) {
	var f float64
	err := m.get(name, &f)
	return f, err
}

// Bool returns the boolean value of name.
func (m *Manager) Bool(name string) (bool, error) {
	var b bool
	err := m.get(name, &b)
	return b, err
}

// Scan stores the value of name into dst, a pointer to string, int64, int,
// float64 or bool. The pointer type selects the requested kind and must
// match the parameter's kind.
func (m *Manager) Scan(name string, dst any) error {
	return m.get(name, dst)
}

// Rest returns a copy of the positional arguments left by option parsing,
// in command-line order.
func (m *Manager) Rest() []string {
	out := make([]string, len(m.rest))
	copy(out, m.rest)
	return out
}

// Source reports where the current value of name came from.
func (m *Manager) Source(name string) (Source, error) {
	src, ok := m.sources[name]
	if !ok {
		return "", &UnknownParameterError{Name: name}
	}
	return src, nil
}

// Lookup returns the definition of name.
func (m *Manager) Lookup(name string) (Definition, bool) {
	i, ok := m.index[name]
	if !ok {
		return Definition{}, false
	}
	return m.defs[i], true
}

// Definitions returns the definition set the Manager was built from.
func (m *Manager) Definitions() Definitions {
	return m.defs
}

// ConfigTree returns the current value of every file-settable parameter
// arranged at its config path, ready for config.Save.
func (m *Manager) ConfigTree() *config.Node {
	root := config.MapNode()
	for _, d := range m.defs {
		if d.FileSettable() {
			root.Set(toNode(m.values[d.Name]), d.ConfigPath...)
		}
	}
	return root
}

// Get reads the parameter name from r as T. The parameter's kind must match
// T exactly, see As.
func Get[T Scalar](r Reader, name string) (T, error) {
	var zero T
	v, err := r.Get(name)
	if err != nil {
		return zero, err
	}
	out, err := As[T](v)
	if err != nil {
		if tm, ok := err.(*TypeMismatchError); ok {
			tm.Name = name
		}
		return zero, err
	}
	return out, nil
}
