package config

import (
	"fmt"
	"math/big"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
)

// HCLParser parses HCL native syntax. Attributes become keys and blocks
// become nested mappings keyed by block type then each label, so
//
//	server "main" {
//	  port = 8080
//	}
//
// resolves at path ["server", "main", "port"]. Expressions must be
// literal: variables and function calls are reported as syntax errors.
type HCLParser struct{}

// Parse implements Parser.
func (HCLParser) Parse(path string) (*Node, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return parseHCL(path, data)
}

func parseHCL(path string, data []byte) (*Node, error) {
	file, diags := hclparse.NewParser().ParseHCL(data, path)
	if diags.HasErrors() {
		return nil, syntaxError(path, diags)
	}
	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, syntaxError(path, fmt.Errorf("unexpected body type %T", file.Body))
	}
	root, err := fromHCLBody(body)
	if err != nil {
		return nil, syntaxError(path, err)
	}
	return root, nil
}

func fromHCLBody(body *hclsyntax.Body) (*Node, error) {
	node := MapNode()
	for name, attr := range body.Attributes {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, diags
		}
		child, err := fromCty(val)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		node.Children[name] = child
	}
	for _, block := range body.Blocks {
		child, err := fromHCLBody(block.Body)
		if err != nil {
			return nil, err
		}
		path := append([]string{block.Type}, block.Labels...)
		if existing, ok := node.Lookup(path...); ok && existing.Kind == KindMap {
			mergeNodes(existing, child)
			continue
		}
		node.Set(child, path...)
	}
	return node, nil
}

// mergeNodes copies src's children into dst, descending into mappings
// present on both sides. Later values win.
func mergeNodes(dst, src *Node) {
	for k, v := range src.Children {
		if cur, ok := dst.Children[k]; ok && cur.Kind == KindMap && v.Kind == KindMap {
			mergeNodes(cur, v)
			continue
		}
		dst.Children[k] = v
	}
}

func fromCty(v cty.Value) (*Node, error) {
	if v.IsNull() {
		return NullNode(), nil
	}
	if !v.IsKnown() {
		return nil, fmt.Errorf("value is not known")
	}

	ty := v.Type()
	switch {
	case ty == cty.String:
		return StringNode(v.AsString()), nil
	case ty == cty.Bool:
		return BoolNode(v.True()), nil
	case ty == cty.Number:
		bf := v.AsBigFloat()
		if bf.IsInt() {
			if i, acc := bf.Int64(); acc == big.Exact {
				return IntNode(i), nil
			}
		}
		f, _ := bf.Float64()
		return FloatNode(f), nil
	case ty.IsObjectType() || ty.IsMapType():
		node := MapNode()
		for it := v.ElementIterator(); it.Next(); {
			k, ev := it.Element()
			child, err := fromCty(ev)
			if err != nil {
				return nil, err
			}
			node.Children[k.AsString()] = child
		}
		return node, nil
	case ty.IsTupleType() || ty.IsListType() || ty.IsSetType():
		node := ListNode()
		for it := v.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			child, err := fromCty(ev)
			if err != nil {
				return nil, err
			}
			node.Items = append(node.Items, child)
		}
		return node, nil
	default:
		return nil, fmt.Errorf("unsupported value type %s", ty.FriendlyName())
	}
}

// toCty converts a Node to a cty value for hclwrite.
func toCty(n *Node) cty.Value {
	switch n.Kind {
	case KindString:
		return cty.StringVal(n.Str)
	case KindInt:
		return cty.NumberIntVal(n.Int)
	case KindFloat:
		return cty.NumberFloatVal(n.Float)
	case KindBool:
		return cty.BoolVal(n.Bool)
	case KindMap:
		attrs := make(map[string]cty.Value, len(n.Children))
		for k, child := range n.Children {
			attrs[k] = toCty(child)
		}
		return cty.ObjectVal(attrs)
	case KindList:
		items := make([]cty.Value, len(n.Items))
		for i, item := range n.Items {
			items[i] = toCty(item)
		}
		return cty.TupleVal(items)
	default:
		return cty.NullVal(cty.DynamicPseudoType)
	}
}
