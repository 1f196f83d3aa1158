package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/cratedocs"
)

// Ensure LoggingCrateFetcher implements cratedocs.CrateFetcher.
var _ cratedocs.CrateFetcher = (*LoggingCrateFetcher)(nil)

// LoggingCrateFetcher wraps a CrateFetcher with operation logging.
type LoggingCrateFetcher struct {
	next   cratedocs.CrateFetcher
	logger *slog.Logger
}

// NewLoggingCrateFetcher creates a new LoggingCrateFetcher.
func NewLoggingCrateFetcher(next cratedocs.CrateFetcher, logger *slog.Logger) *LoggingCrateFetcher {
	return &LoggingCrateFetcher{next: next, logger: logger}
}

// FetchCrate delegates to the wrapped fetcher and logs the operation.
func (f *LoggingCrateFetcher) FetchCrate(ctx context.Context, name, version string, includeFeatures bool) (docs cratedocs.DocumentSet) {
	defer func(begin time.Time) {
		f.logger.Info("crate fetch",
			"crate", name,
			"version", version,
			"features", includeFeatures,
			"sections", len(docs),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return f.next.FetchCrate(ctx, name, version, includeFeatures)
}
