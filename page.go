package cratedocs

// ModuleLink is a candidate module page discovered on a crate's root
// documentation page.
type ModuleLink struct {
	Name string
	URL  string
}

// ContentExtractor converts a documentation page into markdown.
type ContentExtractor interface {
	// Extract renders the page's main documentation region as markdown,
	// prefixed with a level-1 heading holding the given title.
	// Pages without a recognizable content region yield "" without error.
	Extract(html, title string) (string, error)
}

// LinkDiscoverer finds module links on a crate's root documentation page.
type LinkDiscoverer interface {
	// DiscoverLinks returns candidate module links in document order.
	// Relative hrefs are resolved against baseURL. The result is not
	// deduplicated; the caller decides how many links to follow.
	DiscoverLinks(html, baseURL string) ([]ModuleLink, error)
}

// FeatureExtractor summarizes a crate's feature flags from its docs.rs
// features page.
type FeatureExtractor interface {
	// ExtractFeatures renders a markdown summary of the feature flags
	// found in the page. Returns "" when the page holds no recognizable
	// feature information.
	ExtractFeatures(html, crate string) (string, error)
}
