package cratedocs

import "strings"

// FormatSections renders a document set as one markdown text.
// Sections appear in sorted key order, separated by blank lines.
func FormatSections(docs DocumentSet) string {
	if len(docs) == 0 {
		return ""
	}

	parts := make([]string, 0, len(docs))
	for _, key := range docs.Keys() {
		parts = append(parts, docs[key])
	}

	return strings.Join(parts, "\n\n")
}
