package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// sampleTree is what every sample document below parses to.
func sampleTree() *Node {
	root := MapNode()
	root.Set(StringNode("Hi"), "text")
	root.Set(IntNode(5), "count")
	root.Set(FloatNode(2.5), "radius")
	root.Set(BoolNode(false), "path", "to", "flag")
	return root
}

func TestFormatFor(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"app.json", FormatJSON},
		{"app.yaml", FormatYAML},
		{"app.YML", FormatYAML},
		{"app.hcl", FormatHCL},
		{"main.tf", FormatHCL},
		{"app.conf", FormatJSON},
		{"noext", FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFor(tt.path))
		})
	}
}

func TestLoad_Formats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "json",
			file: "app.json",
			content: `{
  "text": "Hi",
  "count": 5,
  "radius": 2.5,
  "path": {"to": {"flag": false}}
}`,
		},
		{
			name: "yaml",
			file: "app.yaml",
			content: `text: Hi
count: 5
radius: 2.5
path:
  to:
    flag: false
`,
		},
		{
			name: "hcl attributes and blocks",
			file: "app.hcl",
			content: `text   = "Hi"
count  = 5
radius = 2.5

path {
  to {
    flag = false
  }
}
`,
		},
		{
			name: "hcl object expression",
			file: "app.hcl",
			content: `text   = "Hi"
count  = 5
radius = 2.5
path   = { to = { flag = false } }
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := Load(writeFile(t, tt.file, tt.content))
			require.NoError(t, err)
			if diff := cmp.Diff(sampleTree(), root); diff != "" {
				t.Errorf("tree mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoad_NotFound(t *testing.T) {
	for _, name := range []string{"missing.json", "missing.yaml", "missing.hcl"} {
		t.Run(name, func(t *testing.T) {
			_, err := Load(filepath.Join(t.TempDir(), name))
			require.ErrorIs(t, err, ErrNotFound)
			assert.NotErrorIs(t, err, ErrSyntax)
		})
	}
}

func TestLoad_SyntaxErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"json unterminated", "bad.json", `{"text": "Hi"`},
		{"json trailing data", "bad.json", `{"text": "Hi"} {}`},
		{"json top-level array", "bad.json", `[1, 2]`},
		{"yaml unclosed flow sequence", "bad.yaml", "key: [unclosed\n"},
		{"yaml top-level list", "bad.yaml", "- a\n- b\n"},
		{"hcl unclosed block", "bad.hcl", "path {\n  flag = true\n"},
		{"hcl variable reference", "bad.hcl", "count = var.count\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			require.ErrorIs(t, err, ErrSyntax)
			assert.NotErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestLoad_EmptyYAML(t *testing.T) {
	root, err := Load(writeFile(t, "empty.yaml", ""))
	require.NoError(t, err)
	assert.Equal(t, KindMap, root.Kind)
	assert.Empty(t, root.Children)
}

func TestYAML_ScalarTags(t *testing.T) {
	root, err := Load(writeFile(t, "tags.yaml", `quoted: "5"
number: 5
float: 1e3
enabled: true
nothing: null
list: [1, two]
`))
	require.NoError(t, err)

	want := MapNode()
	want.Set(StringNode("5"), "quoted")
	want.Set(IntNode(5), "number")
	want.Set(FloatNode(1000), "float")
	want.Set(BoolNode(true), "enabled")
	want.Set(NullNode(), "nothing")
	want.Set(ListNode(IntNode(1), StringNode("two")), "list")

	if diff := cmp.Diff(want, root); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestJSON_Numbers(t *testing.T) {
	_, err := Load(writeFile(t, "big.json", `{"big": 1e400}`))
	require.ErrorIs(t, err, ErrSyntax, "out-of-range number")

	root, err := Load(writeFile(t, "n.json", `{"i": 42, "neg": -7, "f": 4.0, "s": "42"}`))
	require.NoError(t, err)

	i, _ := root.Lookup("i")
	assert.Equal(t, IntNode(42), i)
	neg, _ := root.Lookup("neg")
	assert.Equal(t, IntNode(-7), neg)
	f, _ := root.Lookup("f")
	assert.Equal(t, FloatNode(4), f)
	s, _ := root.Lookup("s")
	assert.Equal(t, StringNode("42"), s)
}

func TestHCL_LabeledBlocks(t *testing.T) {
	root, err := Load(writeFile(t, "app.hcl", `server "main" {
  port = 8080
}

server "main" {
  host = "localhost"
}

server "backup" {
  port = 9090
}
`))
	require.NoError(t, err)

	port, ok := root.Lookup("server", "main", "port")
	require.True(t, ok)
	assert.Equal(t, IntNode(8080), port)

	host, ok := root.Lookup("server", "main", "host")
	require.True(t, ok)
	assert.Equal(t, StringNode("localhost"), host)

	backup, ok := root.Lookup("server", "backup", "port")
	require.True(t, ok)
	assert.Equal(t, IntNode(9090), backup)
}

func TestParserFunc(t *testing.T) {
	called := ""
	p := ParserFunc(func(path string) (*Node, error) {
		called = path
		return MapNode(), nil
	})

	root, err := p.Parse("x.json")
	require.NoError(t, err)
	assert.Equal(t, "x.json", called)
	assert.Equal(t, KindMap, root.Kind)
}

func TestParserFor_Unsupported(t *testing.T) {
	_, err := ParserFor(Format("toml"))
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}
