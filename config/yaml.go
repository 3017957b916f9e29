package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLParser parses YAML documents. Scalars are typed by their resolved
// YAML tag, so `count: 5` is an integer and `count: "5"` is a string.
type YAMLParser struct{}

// Parse implements Parser.
func (YAMLParser) Parse(path string) (*Node, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return parseYAML(path, data)
}

func parseYAML(path string, data []byte) (*Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, syntaxError(path, err)
	}

	// An empty file yields a zero document.
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return MapNode(), nil
	}

	root, err := fromYAML(doc.Content[0])
	if err != nil {
		return nil, syntaxError(path, err)
	}
	if root.Kind == KindNull {
		return MapNode(), nil
	}
	if root.Kind != KindMap {
		return nil, syntaxError(path, fmt.Errorf("top-level value is a %s, want a mapping", root.Kind))
	}
	return root, nil
}

func fromYAML(n *yaml.Node) (*Node, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return NullNode(), nil
		}
		return fromYAML(n.Content[0])
	case yaml.AliasNode:
		return fromYAML(n.Alias)
	case yaml.MappingNode:
		node := MapNode()
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i]
			if key.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping key must be a scalar", key.Line)
			}
			child, err := fromYAML(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			node.Children[key.Value] = child
		}
		return node, nil
	case yaml.SequenceNode:
		node := ListNode()
		for _, item := range n.Content {
			child, err := fromYAML(item)
			if err != nil {
				return nil, err
			}
			node.Items = append(node.Items, child)
		}
		return node, nil
	case yaml.ScalarNode:
		return yamlScalar(n)
	default:
		return nil, fmt.Errorf("line %d: unsupported YAML node", n.Line)
	}
}

func yamlScalar(n *yaml.Node) (*Node, error) {
	switch n.ShortTag() {
	case "!!null":
		return NullNode(), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return BoolNode(b), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return IntNode(i), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return FloatNode(f), nil
	default:
		return StringNode(n.Value), nil
	}
}
