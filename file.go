package paramset

import (
	"fmt"
	"log/slog"
)

// mergeFile overwrites every file-settable parameter found in the config
// file at path. Keys absent from the file are skipped. A missing file is an
// error whether path came from the command line or the default.
func (m *Manager) mergeFile(path string) error {
	root, err := m.parser.Parse(path)
	if err != nil {
		return &ConfigFileError{Path: path, Err: err}
	}
	m.logger.Debug("config file parsed", slog.String("path", path))

	for _, d := range m.defs {
		if !d.FileSettable() {
			continue
		}
		node, ok := root.Lookup(d.ConfigPath...)
		if !ok {
			continue
		}
		if !node.IsScalar() {
			return &ConfigFileError{
				Path:    path,
				KeyPath: d.ConfigPath,
				Name:    d.Name,
				Err:     fmt.Errorf("expected a scalar, found a %s", node.Kind),
			}
		}
		v, err := FromNode(node, d.Kind())
		if err != nil {
			return &ConfigFileError{Path: path, KeyPath: d.ConfigPath, Name: d.Name, Err: err}
		}
		m.set(d, v, SourceFile)
	}
	return nil
}
