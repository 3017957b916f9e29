// Package context passes resolved parameters down a call tree explicitly.
//
// A program loads its parameters once, then hands a read-only view to the
// code that needs it through context.Context instead of a global:
//
//	services := &context.Services{
//	    Params: pm, // *paramset.Manager after a successful Load
//	    Logger: logger,
//	}
//	ctx := services.InjectAll(ctx)
//
//	// Later, deep in the call tree
//	params := context.MustParams(ctx)
//	n, err := paramset.Get[int](params, "cnt")
//	context.GetLogger(ctx).Info("starting", "count", n)
package context
