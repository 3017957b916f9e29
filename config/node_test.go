package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNode_Lookup(t *testing.T) {
	root := sampleTree()

	t.Run("nested scalar", func(t *testing.T) {
		n, ok := root.Lookup("path", "to", "flag")
		require.True(t, ok)
		assert.Equal(t, BoolNode(false), n)
	})

	t.Run("missing intermediate", func(t *testing.T) {
		_, ok := root.Lookup("path", "from", "flag")
		assert.False(t, ok)
	})

	t.Run("through a scalar", func(t *testing.T) {
		_, ok := root.Lookup("count", "deeper")
		assert.False(t, ok)
	})

	t.Run("empty path is the root", func(t *testing.T) {
		n, ok := root.Lookup()
		require.True(t, ok)
		assert.Same(t, root, n)
	})
}

func TestNode_SetReplacesScalarOnPath(t *testing.T) {
	root := MapNode()
	root.Set(IntNode(1), "a")
	root.Set(IntNode(2), "a", "b")

	n, ok := root.Lookup("a", "b")
	require.True(t, ok)
	assert.Equal(t, IntNode(2), n)
}

func TestNode_Text(t *testing.T) {
	tests := []struct {
		node *Node
		want string
	}{
		{StringNode("x y"), "x y"},
		{IntNode(-12), "-12"},
		{FloatNode(2.5), "2.5"},
		{FloatNode(1e21), "1e+21"},
		{BoolNode(true), "true"},
		{NullNode(), "null"},
		{MapNode(), ""},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.node.Text())
		})
	}
}

func TestNode_IsScalar(t *testing.T) {
	assert.True(t, StringNode("").IsScalar())
	assert.True(t, NullNode().IsScalar())
	assert.False(t, MapNode().IsScalar())
	assert.False(t, ListNode().IsScalar())
}

func TestNode_Keys(t *testing.T) {
	assert.Equal(t, []string{"count", "path", "radius", "text"}, sampleTree().Keys())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "mapping", KindMap.String())
	assert.Equal(t, "integer", KindInt.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
