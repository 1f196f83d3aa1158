package cratedocs

import "context"

// DocStore persists crate documentation sets, one entry per crate version.
type DocStore interface {
	// Load reads the cached entry for a crate version.
	// Returns (nil, nil) if no entry exists. An entry with no section
	// files loads as an empty set, which callers treat as a miss.
	Load(ctx context.Context, name, version string) (DocumentSet, error)

	// Store writes every section of docs to the entry for a crate
	// version, creating or overwriting it, and regenerates the entry's
	// index. Returns the entry's directory path.
	Store(ctx context.Context, name, version string, docs DocumentSet) (string, error)

	// List returns the names of all cache entries in sorted order.
	List(ctx context.Context) ([]string, error)

	// FindByPrefix returns the path of the first entry whose name starts
	// with prefix. Which entry is first when several match is
	// unspecified; with multiple cached versions of one crate the result
	// depends on directory read order.
	// Returns ENOTFOUND if no entry matches.
	FindByPrefix(ctx context.Context, prefix string) (string, error)

	// Index returns the index document of the first entry matching
	// prefix, or a listing of the entry's files when it has no index.
	// Returns ENOTFOUND if no entry matches.
	Index(ctx context.Context, prefix string) (string, error)

	// EntryPath returns the directory path an entry for the crate
	// version occupies, whether or not it exists.
	EntryPath(name, version string) string
}
