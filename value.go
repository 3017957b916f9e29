package paramset

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/randalmurphal/paramset/config"
)

// Kind is the type tag of a Value.
type Kind int

// Value kinds. The zero Kind marks an unset Value.
const (
	KindInvalid Kind = iota
	KindText
	KindInt
	KindFloat
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	case KindBool:
		return "boolean"
	default:
		return "invalid"
	}
}

// Value is a scalar tagged with its Kind. Values are immutable; the zero
// Value is invalid.
type Value struct {
	kind Kind
	s    string
	i    int64
	f    float64
	b    bool
}

// Text returns a text value.
func Text(s string) Value { return Value{kind: KindText, s: s} }

// Int returns an integer value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float returns a floating-point value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Kind returns the value's tag.
func (v Value) Kind() Kind { return v.kind }

// IsValid reports whether v was built by one of the constructors.
func (v Value) IsValid() bool { return v.kind != KindInvalid }

// AsText returns the text held by v.
func (v Value) AsText() (string, error) {
	if v.kind != KindText {
		return "", &TypeMismatchError{Want: KindText, Got: v.kind}
	}
	return v.s, nil
}

// AsInt returns the integer held by v.
func (v Value) AsInt() (int64, error) {
	if v.kind != KindInt {
		return 0, &TypeMismatchError{Want: KindInt, Got: v.kind}
	}
	return v.i, nil
}

// AsFloat returns the float held by v. An integer value is not converted.
func (v Value) AsFloat() (float64, error) {
	if v.kind != KindFloat {
		return 0, &TypeMismatchError{Want: KindFloat, Got: v.kind}
	}
	return v.f, nil
}

// AsBool returns the boolean held by v.
func (v Value) AsBool() (bool, error) {
	if v.kind != KindBool {
		return false, &TypeMismatchError{Want: KindBool, Got: v.kind}
	}
	return v.b, nil
}

// String renders v for display. It never fails and is not a typed read.
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return v.s
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return "<invalid>"
	}
}

// Scalar lists the Go types a Value can be read as.
type Scalar interface {
	string | int64 | int | float64 | bool
}

// As reads v as T. The kind held by v must match T exactly: string is
// Text, int64 and int are Integer, float64 is Float, bool is Boolean.
func As[T Scalar](v Value) (T, error) {
	var out T
	err := assign(&out, v)
	return out, err
}

// assign stores v into dst, which must point to one of the Scalar types.
func assign(dst any, v Value) error {
	switch p := dst.(type) {
	case *string:
		s, err := v.AsText()
		if err != nil {
			return err
		}
		*p = s
	case *int64:
		i, err := v.AsInt()
		if err != nil {
			return err
		}
		*p = i
	case *int:
		i, err := v.AsInt()
		if err != nil {
			return err
		}
		if i < math.MinInt || i > math.MaxInt {
			return fmt.Errorf("%w: %d overflows int", ErrTypeMismatch, i)
		}
		*p = int(i)
	case *float64:
		f, err := v.AsFloat()
		if err != nil {
			return err
		}
		*p = f
	case *bool:
		b, err := v.AsBool()
		if err != nil {
			return err
		}
		*p = b
	default:
		return fmt.Errorf("%w: unsupported destination %T", ErrTypeMismatch, dst)
	}
	return nil
}

// ParseValue coerces command-line text into kind. Integers are base 10,
// booleans accept "true" and "false" in any letter case and nothing else.
func ParseValue(text string, kind Kind) (Value, error) {
	switch kind {
	case KindText:
		return Text(text), nil
	case KindInt:
		i, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return Value{}, &ParseError{Input: strconv.Quote(text), Kind: kind, Err: numError(err)}
		}
		return Int(i), nil
	case KindFloat:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Value{}, &ParseError{Input: strconv.Quote(text), Kind: kind, Err: numError(err)}
		}
		return Float(f), nil
	case KindBool:
		switch {
		case strings.EqualFold(text, "true"):
			return Bool(true), nil
		case strings.EqualFold(text, "false"):
			return Bool(false), nil
		}
		return Value{}, &ParseError{Input: strconv.Quote(text), Kind: kind}
	default:
		return Value{}, &ParseError{Input: strconv.Quote(text), Kind: kind}
	}
}

// numError strips strconv's "parsing ..." prefix, which repeats the input.
func numError(err error) error {
	if ne, ok := err.(*strconv.NumError); ok {
		return ne.Err
	}
	return err
}

// FromNode coerces a config node into kind. Text accepts any scalar in its
// canonical form, Integer accepts integer nodes, Float accepts integer and
// float nodes, Boolean accepts native booleans only. Null, mapping and list
// nodes never coerce.
func FromNode(n *config.Node, kind Kind) (Value, error) {
	if n == nil {
		return Value{}, &ParseError{Input: "missing node", Kind: kind}
	}
	fail := func() (Value, error) {
		return Value{}, &ParseError{Input: describeNode(n), Kind: kind}
	}

	switch n.Kind {
	case config.KindNull, config.KindMap, config.KindList:
		return fail()
	}

	switch kind {
	case KindText:
		return Text(n.Text()), nil
	case KindInt:
		if n.Kind == config.KindInt {
			return Int(n.Int), nil
		}
	case KindFloat:
		switch n.Kind {
		case config.KindFloat:
			return Float(n.Float), nil
		case config.KindInt:
			return Float(float64(n.Int)), nil
		}
	case KindBool:
		if n.Kind == config.KindBool {
			return Bool(n.Bool), nil
		}
	}
	return fail()
}

func describeNode(n *config.Node) string {
	if n.IsScalar() && n.Kind != config.KindNull {
		return fmt.Sprintf("%s %s", n.Kind, strconv.Quote(n.Text()))
	}
	return n.Kind.String()
}

// toNode converts v into a config scalar.
func toNode(v Value) *config.Node {
	switch v.kind {
	case KindText:
		return config.StringNode(v.s)
	case KindInt:
		return config.IntNode(v.i)
	case KindFloat:
		return config.FloatNode(v.f)
	case KindBool:
		return config.BoolNode(v.b)
	default:
		return config.NullNode()
	}
}
