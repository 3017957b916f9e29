package context

import (
	"context"
	"log/slog"

	"github.com/randalmurphal/paramset"
)

// Services bundles what a program hands down to its workers once
// parameters are resolved
type Services struct {
	Params paramset.Reader
	Logger *slog.Logger // Optional
}

// InjectAll adds all configured services to the context
func (s *Services) InjectAll(ctx context.Context) context.Context {
	if s.Params != nil {
		ctx = WithParams(ctx, s.Params)
	}
	if s.Logger != nil {
		ctx = WithLogger(ctx, s.Logger)
	}
	return ctx
}
