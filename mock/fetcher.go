package mock

import (
	"context"

	"github.com/fwojciec/cratedocs"
)

// Compile-time interface verification.
var (
	_ cratedocs.CrateFetcher = (*CrateFetcher)(nil)
	_ cratedocs.Pacer        = (*Pacer)(nil)
)

// CrateFetcher is a mock implementation of cratedocs.CrateFetcher.
type CrateFetcher struct {
	FetchCrateFn func(ctx context.Context, name, version string, includeFeatures bool) cratedocs.DocumentSet
}

func (f *CrateFetcher) FetchCrate(ctx context.Context, name, version string, includeFeatures bool) cratedocs.DocumentSet {
	return f.FetchCrateFn(ctx, name, version, includeFeatures)
}

// Pacer is a mock implementation of cratedocs.Pacer.
type Pacer struct {
	WaitFn func(ctx context.Context) error
}

func (p *Pacer) Wait(ctx context.Context) error {
	return p.WaitFn(ctx)
}
