// Package fs provides file-based storage for crate documentation.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/cratedocs"
)

// indexFile is the generated per-entry index. It is not a documentation
// section and is skipped on load.
const indexFile = "README.md"

// SanitizeKey converts a section key into a safe filename stem by
// replacing filesystem-reserved characters with underscores. The mapping
// is lossy: distinct keys can collide, and a load returns the sanitized
// stem rather than the original key.
func SanitizeKey(key string) string {
	return keySanitizer.Replace(key)
}

var keySanitizer = strings.NewReplacer(
	"<", "_",
	">", "_",
	":", "_",
	`"`, "_",
	"/", "_",
	`\`, "_",
	"|", "_",
	"?", "_",
	"*", "_",
)

// FormatIndex renders an entry's index document linking to every section
// file. Keys are listed in sorted order.
func FormatIndex(name, version string, docs cratedocs.DocumentSet) string {
	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(name)
	b.WriteString(" v")
	b.WriteString(version)
	b.WriteString(" Documentation\n\nGenerated from docs.rs\n\n## Modules\n\n")
	for _, key := range docs.Keys() {
		b.WriteString("- [")
		b.WriteString(key)
		b.WriteString("](./")
		b.WriteString(SanitizeKey(key))
		b.WriteString(".md)\n")
	}
	return b.String()
}

// Ensure Cache implements cratedocs.DocStore at compile time.
var _ cratedocs.DocStore = (*Cache)(nil)

// Cache stores documentation under a root directory, one subdirectory per
// crate version. Directory existence is the sole cache-hit signal.
type Cache struct {
	root string
}

// NewCache creates a cache rooted at dir. The directory is created lazily
// on the first store.
func NewCache(dir string) *Cache {
	return &Cache{root: dir}
}

// EntryPath returns the directory path for a crate version entry.
func (c *Cache) EntryPath(name, version string) string {
	return filepath.Join(c.root, name+"-"+version)
}

// Load reads the cached sections for a crate version. A missing entry is
// not an error and yields a nil set. An entry holding only the index file
// loads as an empty, non-nil set.
func (c *Cache) Load(ctx context.Context, name, version string) (cratedocs.DocumentSet, error) {
	entries, err := os.ReadDir(c.EntryPath(name, version))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	docs := make(cratedocs.DocumentSet)
	for _, entry := range entries {
		if entry.IsDir() || entry.Name() == indexFile || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		content, err := os.ReadFile(filepath.Join(c.EntryPath(name, version), entry.Name()))
		if err != nil {
			return nil, err
		}
		docs[strings.TrimSuffix(entry.Name(), ".md")] = string(content)
	}
	return docs, nil
}

// Store writes one markdown file per section plus a regenerated index and
// returns the entry's directory path. Files whose content is unchanged
// are left untouched so repeated stores do not disturb mtimes.
func (c *Cache) Store(ctx context.Context, name, version string, docs cratedocs.DocumentSet) (string, error) {
	dir := c.EntryPath(name, version)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	for key, content := range docs {
		path := filepath.Join(dir, SanitizeKey(key)+".md")
		if err := writeFileIfChanged(path, []byte(content)); err != nil {
			return "", err
		}
	}

	index := FormatIndex(name, version, docs)
	if err := writeFileIfChanged(filepath.Join(dir, indexFile), []byte(index)); err != nil {
		return "", err
	}

	return dir, nil
}

// List returns the names of all cache entries in lexicographic order. A
// missing cache root is an empty cache.
func (c *Cache) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(c.root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// FindByPrefix returns the path of the first entry whose name starts with
// prefix. Entries are scanned in lexicographic order, so with several
// cached versions of one crate the lowest-sorting one wins.
// Returns ENOTFOUND when nothing matches.
func (c *Cache) FindByPrefix(ctx context.Context, prefix string) (string, error) {
	entries, err := os.ReadDir(c.root)
	if err != nil && !os.IsNotExist(err) {
		return "", err
	}

	for _, entry := range entries {
		if entry.IsDir() && strings.HasPrefix(entry.Name(), prefix) {
			return filepath.Join(c.root, entry.Name()), nil
		}
	}
	return "", cratedocs.Errorf(cratedocs.ENOTFOUND, "no cached documentation for %q", prefix)
}

// Index returns the index document of the first entry matching prefix.
// An entry missing its index file gets a plain listing of its files
// instead.
func (c *Cache) Index(ctx context.Context, prefix string) (string, error) {
	dir, err := c.FindByPrefix(ctx, prefix)
	if err != nil {
		return "", err
	}

	content, err := os.ReadFile(filepath.Join(dir, indexFile))
	if err == nil {
		return string(content), nil
	}
	if !os.IsNotExist(err) {
		return "", err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("Documentation files in ")
	b.WriteString(filepath.Base(dir))
	b.WriteString(":\n")
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		b.WriteString("- ")
		b.WriteString(entry.Name())
		b.WriteString("\n")
	}
	return b.String(), nil
}

// writeFileIfChanged writes data to path unless an identical file already
// exists. Existing content is compared by hash before rewriting.
func writeFileIfChanged(path string, data []byte) error {
	if existing, err := os.ReadFile(path); err == nil {
		if xxhash.Sum64(existing) == xxhash.Sum64(data) {
			return nil
		}
	}
	return os.WriteFile(path, data, 0644)
}
