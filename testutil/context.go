package testutil

import (
	"context"
	"testing"

	"github.com/randalmurphal/paramset"
	pctx "github.com/randalmurphal/paramset/context"
)

// LoadedContext builds a Manager from defs, loads args with no config file
// and returns it together with a context carrying it and a test logger. The
// context is canceled when the test ends.
func LoadedContext(t *testing.T, defs paramset.Definitions, args []string, minPositional int) (context.Context, *paramset.Manager) {
	t.Helper()

	m := NewManager(t, defs)
	if err := m.Load(args, "", minPositional); err != nil {
		t.Fatalf("Load(%q) error = %v", args, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	services := &pctx.Services{Params: m, Logger: Logger(t)}
	return services.InjectAll(ctx), m
}
