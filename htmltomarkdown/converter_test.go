package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/cratedocs"
	"github.com/fwojciec/cratedocs/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements cratedocs.Converter at compile time.
var _ cratedocs.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts basic paragraph", func(t *testing.T) {
		t.Parallel()

		html := `<p>A framework for serializing Rust data structures.</p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "A framework for serializing Rust data structures.")
	})

	t.Run("converts headings", func(t *testing.T) {
		t.Parallel()

		html := `<h1>Crate serde</h1><h2>Modules</h2><h3>Traits</h3>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "# Crate serde")
		assert.Contains(t, md, "## Modules")
		assert.Contains(t, md, "### Traits")
	})

	t.Run("converts links", func(t *testing.T) {
		t.Parallel()

		html := `<p>See <a href="https://docs.rs/serde">docs.rs</a> for details.</p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "[docs.rs](https://docs.rs/serde)")
	})

	t.Run("converts unordered lists", func(t *testing.T) {
		t.Parallel()

		html := `<ul><li>derive</li><li>alloc</li><li>rc</li></ul>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "- derive")
		assert.Contains(t, md, "- alloc")
		assert.Contains(t, md, "- rc")
	})

	t.Run("converts ordered lists", func(t *testing.T) {
		t.Parallel()

		html := `<ol><li>Add the dependency</li><li>Derive the traits</li><li>Serialize</li></ol>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "1. Add the dependency")
		assert.Contains(t, md, "2. Derive the traits")
		assert.Contains(t, md, "3. Serialize")
	})

	t.Run("converts inline code", func(t *testing.T) {
		t.Parallel()

		html := `<p>Implement <code>Serialize</code> for your type.</p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "`Serialize`")
	})

	t.Run("converts code blocks with language hint", func(t *testing.T) {
		t.Parallel()

		html := `<pre><code class="language-rust">use serde::Serialize;

#[derive(Serialize)]
struct Point { x: i32, y: i32 }
</code></pre>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "```rust")
		assert.Contains(t, md, "use serde::Serialize;")
		assert.Contains(t, md, "```")
	})

	t.Run("converts code blocks without language hint", func(t *testing.T) {
		t.Parallel()

		html := `<pre><code>cargo add serde</code></pre>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "```")
		assert.Contains(t, md, "cargo add serde")
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()

		html := `<table>
<thead><tr><th>Feature</th><th>Description</th></tr></thead>
<tbody><tr><td>derive</td><td>Derive macros</td></tr><tr><td>alloc</td><td>No-std support</td></tr></tbody>
</table>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		// Table cells may have padding for alignment, so check for content
		assert.Contains(t, md, "Feature")
		assert.Contains(t, md, "Description")
		assert.Contains(t, md, "derive")
		assert.Contains(t, md, "alloc")
		assert.Contains(t, md, "|")
		assert.Contains(t, md, "---")
	})

	t.Run("converts bold and italic", func(t *testing.T) {
		t.Parallel()

		html := `<p><strong>Stable</strong> and <em>widely used</em>.</p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "**Stable**")
		assert.Contains(t, md, "*widely used*")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert("")

		require.Error(t, err)
		assert.Equal(t, cratedocs.EINVALID, cratedocs.ErrorCode(err))
	})

	t.Run("handles a full crate documentation page", func(t *testing.T) {
		t.Parallel()

		html := `<div>
<h1>Crate tokio</h1>
<p>A runtime for writing reliable asynchronous applications.</p>
<h2>Getting Started</h2>
<p>Add the dependency:</p>
<pre><code class="language-toml">[dependencies]
tokio = { version = "1", features = ["full"] }</code></pre>
<h2>Example</h2>
<pre><code class="language-rust">#[tokio::main]
async fn main() {
    println!("hello");
}</code></pre>
<p>The <code>#[tokio::main]</code> macro sets up the runtime.</p>
<h3>Feature Flags</h3>
<table>
<thead><tr><th>Feature</th><th>Default</th><th>Description</th></tr></thead>
<tbody>
<tr><td>rt</td><td>yes</td><td>Single-threaded runtime</td></tr>
<tr><td>rt-multi-thread</td><td>no</td><td>Work-stealing runtime</td></tr>
</tbody>
</table>
</div>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "# Crate tokio")
		assert.Contains(t, md, "## Getting Started")
		assert.Contains(t, md, "```toml")
		assert.Contains(t, md, "```rust")
		assert.Contains(t, md, "`#[tokio::main]`")
		// Table cells may have padding for alignment
		assert.Contains(t, md, "Feature")
		assert.Contains(t, md, "rt-multi-thread")
	})
}
