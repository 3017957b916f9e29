package paramset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/paramset/config"
)

func TestValue_Accessors(t *testing.T) {
	s, err := Text("hi").AsText()
	require.NoError(t, err)
	assert.Equal(t, "hi", s)

	i, err := Int(-3).AsInt()
	require.NoError(t, err)
	assert.Equal(t, int64(-3), i)

	f, err := Float(2.5).AsFloat()
	require.NoError(t, err)
	assert.Equal(t, 2.5, f)

	b, err := Bool(true).AsBool()
	require.NoError(t, err)
	assert.True(t, b)
}

func TestValue_AccessorMismatch(t *testing.T) {
	values := []Value{Text("1"), Int(1), Float(1), Bool(true), {}}

	for _, v := range values {
		t.Run(v.Kind().String(), func(t *testing.T) {
			readers := map[Kind]func() error{
				KindText:  func() error { _, err := v.AsText(); return err },
				KindInt:   func() error { _, err := v.AsInt(); return err },
				KindFloat: func() error { _, err := v.AsFloat(); return err },
				KindBool:  func() error { _, err := v.AsBool(); return err },
			}
			for kind, read := range readers {
				err := read()
				if kind == v.Kind() {
					assert.NoError(t, err, "reading %s", kind)
					continue
				}
				assert.ErrorIs(t, err, ErrTypeMismatch, "reading %s", kind)
			}
		})
	}
}

func TestAs(t *testing.T) {
	t.Run("matching kinds", func(t *testing.T) {
		s, err := As[string](Text("x"))
		require.NoError(t, err)
		assert.Equal(t, "x", s)

		n, err := As[int](Int(42))
		require.NoError(t, err)
		assert.Equal(t, 42, n)

		n64, err := As[int64](Int(math.MaxInt64))
		require.NoError(t, err)
		assert.Equal(t, int64(math.MaxInt64), n64)

		f, err := As[float64](Float(0.5))
		require.NoError(t, err)
		assert.Equal(t, 0.5, f)

		b, err := As[bool](Bool(false))
		require.NoError(t, err)
		assert.False(t, b)
	})

	t.Run("no truncation from float", func(t *testing.T) {
		_, err := As[int](Float(2.9))
		require.ErrorIs(t, err, ErrTypeMismatch)
	})

	t.Run("no widening from integer", func(t *testing.T) {
		_, err := As[float64](Int(2))
		require.ErrorIs(t, err, ErrTypeMismatch)
	})

	t.Run("no text rendering", func(t *testing.T) {
		_, err := As[string](Int(2))
		require.ErrorIs(t, err, ErrTypeMismatch)

		var tm *TypeMismatchError
		require.ErrorAs(t, err, &tm)
		assert.Equal(t, KindText, tm.Want)
		assert.Equal(t, KindInt, tm.Got)
	})
}

func TestValue_String(t *testing.T) {
	assert.Equal(t, "a b", Text("a b").String())
	assert.Equal(t, "-7", Int(-7).String())
	assert.Equal(t, "2.3", Float(2.3).String())
	assert.Equal(t, "true", Bool(true).String())
	assert.Equal(t, "<invalid>", Value{}.String())
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		kind    Kind
		want    Value
		wantErr bool
	}{
		{name: "text verbatim", text: " spaced ", kind: KindText, want: Text(" spaced ")},
		{name: "empty text", text: "", kind: KindText, want: Text("")},
		{name: "integer", text: "5", kind: KindInt, want: Int(5)},
		{name: "negative integer", text: "-12", kind: KindInt, want: Int(-12)},
		{name: "integer with junk", text: "5x", kind: KindInt, wantErr: true},
		{name: "integer from float text", text: "5.0", kind: KindInt, wantErr: true},
		{name: "integer overflow", text: "9223372036854775808", kind: KindInt, wantErr: true},
		{name: "non-numeric integer", text: "abc", kind: KindInt, wantErr: true},
		{name: "float", text: "2.5", kind: KindFloat, want: Float(2.5)},
		{name: "float from integer text", text: "3", kind: KindFloat, want: Float(3)},
		{name: "float exponent", text: "1e3", kind: KindFloat, want: Float(1000)},
		{name: "non-numeric float", text: "abc", kind: KindFloat, wantErr: true},
		{name: "bool true", text: "true", kind: KindBool, want: Bool(true)},
		{name: "bool upper", text: "TRUE", kind: KindBool, want: Bool(true)},
		{name: "bool mixed false", text: "False", kind: KindBool, want: Bool(false)},
		{name: "bool numeric", text: "1", kind: KindBool, wantErr: true},
		{name: "bool yes", text: "yes", kind: KindBool, wantErr: true},
		{name: "bool empty", text: "", kind: KindBool, wantErr: true},
		{name: "invalid kind", text: "x", kind: KindInvalid, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseValue(tt.text, tt.kind)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrParse)
				var pe *ParseError
				require.ErrorAs(t, err, &pe)
				assert.Equal(t, tt.kind, pe.Kind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromNode(t *testing.T) {
	nested := config.MapNode()
	nested.Set(config.IntNode(1), "x")

	tests := []struct {
		name    string
		node    *config.Node
		kind    Kind
		want    Value
		wantErr bool
	}{
		{name: "string to text", node: config.StringNode("hi"), kind: KindText, want: Text("hi")},
		{name: "int to text", node: config.IntNode(5), kind: KindText, want: Text("5")},
		{name: "bool to text", node: config.BoolNode(true), kind: KindText, want: Text("true")},
		{name: "int to int", node: config.IntNode(5), kind: KindInt, want: Int(5)},
		{name: "float to int", node: config.FloatNode(5.5), kind: KindInt, wantErr: true},
		{name: "string to int", node: config.StringNode("5"), kind: KindInt, wantErr: true},
		{name: "float to float", node: config.FloatNode(2.5), kind: KindFloat, want: Float(2.5)},
		{name: "int to float", node: config.IntNode(2), kind: KindFloat, want: Float(2)},
		{name: "bool to float", node: config.BoolNode(true), kind: KindFloat, wantErr: true},
		{name: "bool to bool", node: config.BoolNode(false), kind: KindBool, want: Bool(false)},
		{name: "string to bool", node: config.StringNode("true"), kind: KindBool, wantErr: true},
		{name: "int to bool", node: config.IntNode(1), kind: KindBool, wantErr: true},
		{name: "null", node: config.NullNode(), kind: KindText, wantErr: true},
		{name: "mapping", node: nested, kind: KindText, wantErr: true},
		{name: "list", node: config.ListNode(config.IntNode(1)), kind: KindInt, wantErr: true},
		{name: "nil node", node: nil, kind: KindInt, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromNode(tt.node, tt.kind)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrParse)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToNode(t *testing.T) {
	assert.Equal(t, config.StringNode("a"), toNode(Text("a")))
	assert.Equal(t, config.IntNode(3), toNode(Int(3)))
	assert.Equal(t, config.FloatNode(0.25), toNode(Float(0.25)))
	assert.Equal(t, config.BoolNode(true), toNode(Bool(true)))
	assert.Equal(t, config.NullNode(), toNode(Value{}))
}
