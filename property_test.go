package paramset_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/randalmurphal/paramset"
	"github.com/randalmurphal/paramset/config"
)

// precedenceManager builds a Manager over one Integer parameter whose
// config file is served from tree.
func precedenceManager(t require.TestingT, tree *config.Node) *paramset.Manager {
	defs := paramset.Definitions{
		paramset.Param("n", paramset.Int(-1), []string{"n"}, "num", 'n', "number"),
		paramset.Option("conf", paramset.Text(""), "config", 'c', "config file path"),
	}
	parser := config.ParserFunc(func(string) (*config.Node, error) { return tree, nil })
	m, err := paramset.New(defs, paramset.WithParser(parser))
	require.NoError(t, err)
	return m
}

func TestProperty_Precedence(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		inFile := rapid.Bool().Draw(t, "inFile")
		onCLI := rapid.Bool().Draw(t, "onCLI")
		fileValue := rapid.Int64().Draw(t, "fileValue")
		cliValue := rapid.Int64().Draw(t, "cliValue")

		tree := config.MapNode()
		if inFile {
			tree.Set(config.IntNode(fileValue), "n")
		}
		args := []string{"-c", "virtual.json"}
		if onCLI {
			args = append(args, "--num", strconv.FormatInt(cliValue, 10))
		}

		m := precedenceManager(t, tree)
		require.NoError(t, m.Load(args, "conf", 0))

		want, wantSource := int64(-1), paramset.SourceDefault
		switch {
		case onCLI:
			want, wantSource = cliValue, paramset.SourceFlag
		case inFile:
			want, wantSource = fileValue, paramset.SourceFile
		}

		got, err := m.Int("n")
		require.NoError(t, err)
		if got != want {
			t.Fatalf("n = %d, want %d", got, want)
		}
		src, _ := m.Source("n")
		if src != wantSource {
			t.Fatalf("source = %s, want %s", src, wantSource)
		}
	})
}

func TestProperty_RestPreservesPositionals(t *testing.T) {
	word := rapid.StringMatching(`[a-z0-9./]{1,8}`)

	rapid.Check(t, func(t *rapid.T) {
		positionals := rapid.SliceOfN(word, 0, 6).Draw(t, "positionals")

		var args []string
		for i, p := range positionals {
			if rapid.Bool().Draw(t, "option"+strconv.Itoa(i)) {
				args = append(args, "-n", strconv.Itoa(i))
			}
			args = append(args, p)
		}

		m := precedenceManager(t, config.MapNode())
		require.NoError(t, m.Load(args, "", 0))

		rest := m.Rest()
		if strings.Join(rest, "\x00") != strings.Join(positionals, "\x00") || len(rest) != len(positionals) {
			t.Fatalf("Rest() = %q, want %q", rest, positionals)
		}
	})
}

func TestProperty_MinimumPositionals(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		count := rapid.IntRange(0, 5).Draw(t, "count")
		minimum := rapid.IntRange(0, 5).Draw(t, "minimum")

		args := make([]string, count)
		for i := range args {
			args[i] = "arg" + strconv.Itoa(i)
		}

		m := precedenceManager(t, config.MapNode())
		err := m.Load(args, "", minimum)
		if count >= minimum {
			require.NoError(t, err)
		} else {
			require.ErrorIs(t, err, paramset.ErrInsufficientArguments)
		}
	})
}

func TestProperty_ParseValueRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		i := rapid.Int64().Draw(t, "int")
		v, err := paramset.ParseValue(strconv.FormatInt(i, 10), paramset.KindInt)
		require.NoError(t, err)
		require.Equal(t, paramset.Int(i), v)

		f := rapid.Float64Range(-1e12, 1e12).Draw(t, "float")
		v, err = paramset.ParseValue(paramset.Float(f).String(), paramset.KindFloat)
		require.NoError(t, err)
		require.Equal(t, paramset.Float(f), v)

		s := rapid.String().Draw(t, "text")
		v, err = paramset.ParseValue(s, paramset.KindText)
		require.NoError(t, err)
		require.Equal(t, paramset.Text(s), v)
	})
}

func TestProperty_BoolIgnoresCase(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := rapid.Bool().Draw(t, "bool")
		word := []rune(strconv.FormatBool(b))
		for i := range word {
			if rapid.Bool().Draw(t, "upper"+strconv.Itoa(i)) {
				word[i] = []rune(strings.ToUpper(string(word[i])))[0]
			}
		}

		v, err := paramset.ParseValue(string(word), paramset.KindBool)
		require.NoError(t, err)
		require.Equal(t, paramset.Bool(b), v)
	})
}
