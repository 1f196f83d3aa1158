package mock

import (
	"github.com/fwojciec/cratedocs"
)

// Compile-time interface verification.
var (
	_ cratedocs.ContentExtractor = (*ContentExtractor)(nil)
	_ cratedocs.LinkDiscoverer   = (*LinkDiscoverer)(nil)
	_ cratedocs.FeatureExtractor = (*FeatureExtractor)(nil)
)

// ContentExtractor is a mock implementation of cratedocs.ContentExtractor.
type ContentExtractor struct {
	ExtractFn func(html, title string) (string, error)
}

func (e *ContentExtractor) Extract(html, title string) (string, error) {
	return e.ExtractFn(html, title)
}

// LinkDiscoverer is a mock implementation of cratedocs.LinkDiscoverer.
type LinkDiscoverer struct {
	DiscoverLinksFn func(html, baseURL string) ([]cratedocs.ModuleLink, error)
}

func (d *LinkDiscoverer) DiscoverLinks(html, baseURL string) ([]cratedocs.ModuleLink, error) {
	return d.DiscoverLinksFn(html, baseURL)
}

// FeatureExtractor is a mock implementation of cratedocs.FeatureExtractor.
type FeatureExtractor struct {
	ExtractFeaturesFn func(html, crate string) (string, error)
}

func (e *FeatureExtractor) ExtractFeatures(html, crate string) (string, error) {
	return e.ExtractFeaturesFn(html, crate)
}
