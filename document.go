package cratedocs

import "sort"

// Section keys with fixed meanings inside a DocumentSet.
// Module sections are keyed by module name.
const (
	SectionIndex    = "index"
	SectionFeatures = "features"
)

// DocumentSet holds the markdown documentation collected for one crate
// version, keyed by section. Sections with empty content are never stored.
type DocumentSet map[string]string

// Keys returns the section keys in sorted order.
func (ds DocumentSet) Keys() []string {
	keys := make([]string, 0, len(ds))
	for key := range ds {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
