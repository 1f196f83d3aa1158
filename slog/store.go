package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/cratedocs"
)

// Ensure LoggingDocStore implements cratedocs.DocStore.
var _ cratedocs.DocStore = (*LoggingDocStore)(nil)

// LoggingDocStore wraps a DocStore with operation logging.
type LoggingDocStore struct {
	next   cratedocs.DocStore
	logger *slog.Logger
}

// NewLoggingDocStore creates a new LoggingDocStore.
func NewLoggingDocStore(next cratedocs.DocStore, logger *slog.Logger) *LoggingDocStore {
	return &LoggingDocStore{next: next, logger: logger}
}

// Load delegates to the wrapped store and logs the operation.
func (s *LoggingDocStore) Load(ctx context.Context, name, version string) (docs cratedocs.DocumentSet, err error) {
	defer func(begin time.Time) {
		s.logger.Info("cache load",
			"crate", name,
			"version", version,
			"hit", docs != nil,
			"sections", len(docs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Load(ctx, name, version)
}

// Store delegates to the wrapped store and logs the operation.
func (s *LoggingDocStore) Store(ctx context.Context, name, version string, docs cratedocs.DocumentSet) (path string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("cache store",
			"crate", name,
			"version", version,
			"sections", len(docs),
			"path", path,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Store(ctx, name, version, docs)
}

// List delegates to the wrapped store and logs the operation.
func (s *LoggingDocStore) List(ctx context.Context) (names []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("cache list",
			"count", len(names),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.List(ctx)
}

// FindByPrefix delegates to the wrapped store and logs the operation.
func (s *LoggingDocStore) FindByPrefix(ctx context.Context, prefix string) (path string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("cache find",
			"prefix", prefix,
			"path", path,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindByPrefix(ctx, prefix)
}

// Index delegates to the wrapped store and logs the operation.
func (s *LoggingDocStore) Index(ctx context.Context, prefix string) (content string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("cache index",
			"prefix", prefix,
			"bytes", len(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Index(ctx, prefix)
}

// EntryPath delegates to the wrapped store.
func (s *LoggingDocStore) EntryPath(name, version string) string {
	return s.next.EntryPath(name, version)
}
