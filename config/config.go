package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Parsing errors. Parsers wrap one of these so callers can tell a missing
// file apart from a malformed one.
var (
	// ErrNotFound indicates the configuration file does not exist.
	ErrNotFound = errors.New("config file not found")

	// ErrSyntax indicates the file exists but is not valid for its format.
	ErrSyntax = errors.New("config file syntax error")

	// ErrUnsupportedFormat indicates no parser or encoder handles the format.
	ErrUnsupportedFormat = errors.New("unsupported config format")
)

// Parser reads a structured configuration file into a Node tree whose root
// is a mapping.
type Parser interface {
	Parse(path string) (*Node, error)
}

// ParserFunc adapts a function to the Parser interface.
type ParserFunc func(path string) (*Node, error)

// Parse implements Parser.
func (f ParserFunc) Parse(path string) (*Node, error) {
	return f(path)
}

// Format names a supported file format.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatHCL  Format = "hcl"
)

// FormatFor picks the format from the file extension. Unknown extensions
// are treated as JSON.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".hcl", ".tf":
		return FormatHCL
	default:
		return FormatJSON
	}
}

// ParserFor returns the parser for a format.
func ParserFor(format Format) (Parser, error) {
	switch format {
	case FormatJSON:
		return JSONParser{}, nil
	case FormatYAML:
		return YAMLParser{}, nil
	case FormatHCL:
		return HCLParser{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// Load parses path with the parser matching its extension.
func Load(path string) (*Node, error) {
	parser, err := ParserFor(FormatFor(path))
	if err != nil {
		return nil, err
	}
	return parser.Parse(path)
}

// DefaultParser is Load as a Parser.
var DefaultParser Parser = ParserFunc(Load)

// readFile reads path, mapping a missing file to ErrNotFound.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

func syntaxError(path string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrSyntax, path, err)
}
