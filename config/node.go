package config

import (
	"sort"
	"strconv"
)

// Kind identifies what a Node holds.
type Kind int

// Node kinds.
const (
	KindNull Kind = iota
	KindString
	KindInt
	KindFloat
	KindBool
	KindMap
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	case KindBool:
		return "boolean"
	case KindMap:
		return "mapping"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// Node is one element of a parsed configuration tree. Scalars carry their
// value in the field matching Kind; mappings carry named children.
type Node struct {
	Kind     Kind
	Str      string
	Int      int64
	Float    float64
	Bool     bool
	Children map[string]*Node
	Items    []*Node
}

// StringNode returns a string scalar.
func StringNode(s string) *Node { return &Node{Kind: KindString, Str: s} }

// IntNode returns an integer scalar.
func IntNode(i int64) *Node { return &Node{Kind: KindInt, Int: i} }

// FloatNode returns a floating-point scalar.
func FloatNode(f float64) *Node { return &Node{Kind: KindFloat, Float: f} }

// BoolNode returns a boolean scalar.
func BoolNode(b bool) *Node { return &Node{Kind: KindBool, Bool: b} }

// NullNode returns an explicit null.
func NullNode() *Node { return &Node{Kind: KindNull} }

// ListNode returns a list of items.
func ListNode(items ...*Node) *Node { return &Node{Kind: KindList, Items: items} }

// MapNode returns an empty mapping node.
func MapNode() *Node {
	return &Node{Kind: KindMap, Children: make(map[string]*Node)}
}

// IsScalar reports whether the node holds a primitive value (null included).
func (n *Node) IsScalar() bool {
	return n.Kind != KindMap && n.Kind != KindList
}

// Lookup walks the tree following path. It returns false as soon as a key
// is missing or an intermediate node is not a mapping.
func (n *Node) Lookup(path ...string) (*Node, bool) {
	cur := n
	for _, key := range path {
		if cur == nil || cur.Kind != KindMap {
			return nil, false
		}
		next, ok := cur.Children[key]
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, cur != nil
}

// Set stores value at path, creating intermediate mappings as needed.
// An existing scalar on the way is replaced by a mapping.
func (n *Node) Set(value *Node, path ...string) {
	if len(path) == 0 {
		return
	}
	cur := n
	for _, key := range path[:len(path)-1] {
		next, ok := cur.Children[key]
		if !ok || next.Kind != KindMap {
			next = MapNode()
			cur.Children[key] = next
		}
		cur = next
	}
	cur.Children[path[len(path)-1]] = value
}

// Keys returns the child keys of a mapping in sorted order.
func (n *Node) Keys() []string {
	keys := make([]string, 0, len(n.Children))
	for k := range n.Children {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Text renders a scalar in its canonical textual form.
func (n *Node) Text() string {
	switch n.Kind {
	case KindString:
		return n.Str
	case KindInt:
		return strconv.FormatInt(n.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(n.Float, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(n.Bool)
	case KindNull:
		return "null"
	default:
		return ""
	}
}

// Interface converts the tree to plain Go values for encoders.
func (n *Node) Interface() any {
	switch n.Kind {
	case KindString:
		return n.Str
	case KindInt:
		return n.Int
	case KindFloat:
		return n.Float
	case KindBool:
		return n.Bool
	case KindMap:
		m := make(map[string]any, len(n.Children))
		for k, child := range n.Children {
			m[k] = child.Interface()
		}
		return m
	case KindList:
		items := make([]any, len(n.Items))
		for i, item := range n.Items {
			items[i] = item.Interface()
		}
		return items
	default:
		return nil
	}
}
