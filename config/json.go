package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/goccy/go-json"
)

// JSONParser parses JSON documents. Numbers keep their integer or
// floating-point nature.
type JSONParser struct{}

// Parse implements Parser.
func (JSONParser) Parse(path string) (*Node, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return parseJSON(path, data)
}

func parseJSON(path string, data []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, syntaxError(path, err)
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, syntaxError(path, errors.New("unexpected data after top-level value"))
	}

	root, err := fromJSON(raw)
	if err != nil {
		return nil, syntaxError(path, err)
	}
	if root.Kind != KindMap {
		return nil, syntaxError(path, fmt.Errorf("top-level value is a %s, want an object", root.Kind))
	}
	return root, nil
}

func fromJSON(v any) (*Node, error) {
	switch val := v.(type) {
	case nil:
		return NullNode(), nil
	case string:
		return StringNode(val), nil
	case bool:
		return BoolNode(val), nil
	case json.Number:
		if i, err := strconv.ParseInt(val.String(), 10, 64); err == nil {
			return IntNode(i), nil
		}
		f, err := strconv.ParseFloat(val.String(), 64)
		if err != nil {
			return nil, fmt.Errorf("number %s: %w", val, err)
		}
		return FloatNode(f), nil
	case map[string]any:
		node := MapNode()
		for k, child := range val {
			c, err := fromJSON(child)
			if err != nil {
				return nil, err
			}
			node.Children[k] = c
		}
		return node, nil
	case []any:
		node := ListNode()
		for _, item := range val {
			c, err := fromJSON(item)
			if err != nil {
				return nil, err
			}
			node.Items = append(node.Items, c)
		}
		return node, nil
	default:
		return nil, fmt.Errorf("unexpected JSON value of type %T", v)
	}
}
