package testutil

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/randalmurphal/paramset"
)

// ExampleDefinitions returns one parameter of every shape: file and CLI,
// CLI only, file only and constant.
//
//	txt  text    "Hello, paramset!"  text           --strarg/-s
//	cnt  integer 1                   count          --intarg/-i
//	rad  float   2.3                 radius         --doublearg
//	flg  boolean true                path.to.flag
//	conf text    ""                                 --config/-c
//	PI   float   3.14                (constant)
func ExampleDefinitions() paramset.Definitions {
	return paramset.Definitions{
		paramset.Param("txt", paramset.Text("Hello, paramset!"), []string{"text"}, "strarg", 's', "string argument"),
		paramset.Param("cnt", paramset.Int(1), []string{"count"}, "intarg", 'i', "integer argument"),
		paramset.Param("rad", paramset.Float(2.3), []string{"radius"}, "doublearg", paramset.NoShort, "double argument"),
		paramset.File("flg", paramset.Bool(true), "path", "to", "flag"),
		paramset.Option("conf", paramset.Text(""), "config", 'c', "config file path"),
		paramset.Const("PI", paramset.Float(3.14)),
	}
}

// NewManager builds a Manager from defs, failing the test on error. Debug
// records are written to the test log.
func NewManager(t *testing.T, defs paramset.Definitions, opts ...paramset.Option) *paramset.Manager {
	t.Helper()

	opts = append([]paramset.Option{
		paramset.WithLogger(Logger(t)),
		paramset.WithProgramName("test"),
	}, opts...)

	m, err := paramset.New(defs, opts...)
	if err != nil {
		t.Fatalf("paramset.New() error = %v", err)
	}
	return m
}

// Logger returns a debug-level logger writing to t.Log.
func Logger(t *testing.T) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(testWriter{t}, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

type testWriter struct {
	t *testing.T
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}
