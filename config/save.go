package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"gopkg.in/yaml.v3"
)

// Encode renders a mapping node in the given format.
func Encode(format Format, root *Node) ([]byte, error) {
	if root == nil || root.Kind != KindMap {
		return nil, fmt.Errorf("encode: root must be a mapping")
	}

	switch format {
	case FormatYAML:
		return yaml.Marshal(root.Interface())
	case FormatJSON:
		data, err := json.MarshalIndent(root.Interface(), "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case FormatHCL:
		f := hclwrite.NewEmptyFile()
		if err := writeHCLBody(f.Body(), root); err != nil {
			return nil, err
		}
		return f.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// Save writes root to path in the format matching its extension, creating
// the parent directory if needed.
func Save(path string, root *Node) error {
	data, err := Encode(FormatFor(path), root)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	// Config files are meant to be shared and edited.
	return os.WriteFile(path, data, 0o644) //nolint:gosec
}

// Update sets a single value at keyPath in the file at path, keeping every
// other key. A missing file starts from an empty mapping.
func Update(path string, value *Node, keyPath ...string) error {
	if len(keyPath) == 0 {
		return fmt.Errorf("update %s: empty key path", path)
	}

	existing, err := Load(path)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return err
		}
		existing = MapNode()
	}

	existing.Set(value, keyPath...)
	return Save(path, existing)
}

func writeHCLBody(body *hclwrite.Body, node *Node) error {
	for _, key := range node.Keys() {
		if !hclsyntax.ValidIdentifier(key) {
			return fmt.Errorf("encode: %q is not a valid HCL identifier", key)
		}
		child := node.Children[key]
		switch child.Kind {
		case KindNull:
			continue
		case KindMap:
			block := body.AppendNewBlock(key, nil)
			if err := writeHCLBody(block.Body(), child); err != nil {
				return err
			}
		default:
			body.SetAttributeValue(key, toCty(child))
		}
	}
	return nil
}
