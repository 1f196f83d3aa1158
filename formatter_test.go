package cratedocs_test

import (
	"testing"

	"github.com/fwojciec/cratedocs"
	"github.com/stretchr/testify/assert"
)

func TestFormatSections(t *testing.T) {
	t.Parallel()

	t.Run("joins sections in key order", func(t *testing.T) {
		t.Parallel()

		docs := cratedocs.DocumentSet{
			"index": "# serde (main)\n\nA serialization framework.",
			"de":    "# de\n\nDeserialization.",
		}

		result := cratedocs.FormatSections(docs)

		expected := "# de\n\nDeserialization.\n\n# serde (main)\n\nA serialization framework."
		assert.Equal(t, expected, result)
	})

	t.Run("returns empty string for empty set", func(t *testing.T) {
		t.Parallel()

		result := cratedocs.FormatSections(cratedocs.DocumentSet{})

		assert.Empty(t, result)
	})

	t.Run("returns empty string for nil set", func(t *testing.T) {
		t.Parallel()

		result := cratedocs.FormatSections(nil)

		assert.Empty(t, result)
	})

	t.Run("preserves markdown content", func(t *testing.T) {
		t.Parallel()

		docs := cratedocs.DocumentSet{
			"index": "# Heading\n\n- item 1\n- item 2\n\n```rust\nfn main() {}\n```",
		}

		result := cratedocs.FormatSections(docs)

		expected := "# Heading\n\n- item 1\n- item 2\n\n```rust\nfn main() {}\n```"
		assert.Equal(t, expected, result)
	})
}
