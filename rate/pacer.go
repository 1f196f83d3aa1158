// Package rate provides request pacing built on token buckets.
package rate

import (
	"context"
	"time"

	"github.com/fwojciec/cratedocs"
	xrate "golang.org/x/time/rate"
)

// Ensure Pacer implements cratedocs.Pacer at compile time.
var _ cratedocs.Pacer = (*Pacer)(nil)

// Pacer spaces successive requests by a fixed interval using a token
// bucket with a burst of 1 (no bursting allowed). The first wait is
// immediate.
type Pacer struct {
	limiter *xrate.Limiter
}

// NewPacer creates a Pacer that allows one request per interval.
func NewPacer(interval time.Duration) *Pacer {
	return &Pacer{limiter: xrate.NewLimiter(xrate.Every(interval), 1)}
}

// Wait blocks until the next request is allowed.
// Returns an error if the context is canceled before the wait completes.
func (p *Pacer) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}
