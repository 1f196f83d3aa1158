package mock

import (
	"context"

	"github.com/fwojciec/cratedocs"
)

var _ cratedocs.DocStore = (*DocStore)(nil)

// DocStore is a mock implementation of cratedocs.DocStore.
type DocStore struct {
	LoadFn         func(ctx context.Context, name, version string) (cratedocs.DocumentSet, error)
	StoreFn        func(ctx context.Context, name, version string, docs cratedocs.DocumentSet) (string, error)
	ListFn         func(ctx context.Context) ([]string, error)
	FindByPrefixFn func(ctx context.Context, prefix string) (string, error)
	IndexFn        func(ctx context.Context, prefix string) (string, error)
	EntryPathFn    func(name, version string) string
}

func (s *DocStore) Load(ctx context.Context, name, version string) (cratedocs.DocumentSet, error) {
	return s.LoadFn(ctx, name, version)
}

func (s *DocStore) Store(ctx context.Context, name, version string, docs cratedocs.DocumentSet) (string, error) {
	return s.StoreFn(ctx, name, version, docs)
}

func (s *DocStore) List(ctx context.Context) ([]string, error) {
	return s.ListFn(ctx)
}

func (s *DocStore) FindByPrefix(ctx context.Context, prefix string) (string, error) {
	return s.FindByPrefixFn(ctx, prefix)
}

func (s *DocStore) Index(ctx context.Context, prefix string) (string, error) {
	return s.IndexFn(ctx, prefix)
}

func (s *DocStore) EntryPath(name, version string) string {
	return s.EntryPathFn(name, version)
}
