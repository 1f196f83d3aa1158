package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/cratedocs"
)

// Ensure Discoverer implements cratedocs.LinkDiscoverer at compile time.
var _ cratedocs.LinkDiscoverer = (*Discoverer)(nil)

// Discoverer finds candidate module links on a crate's root page.
type Discoverer struct{}

// NewDiscoverer creates a new Discoverer.
func NewDiscoverer() *Discoverer {
	return &Discoverer{}
}

// DiscoverLinks returns module link candidates in document order. Anchors
// qualify when their href holds a path separator or ends in .html. The
// result is deliberately over-collected and not deduplicated; the caller
// bounds how many links it follows.
func (d *Discoverer) DiscoverLinks(html, baseURL string) ([]cratedocs.ModuleLink, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, cratedocs.Errorf(cratedocs.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, cratedocs.Errorf(cratedocs.EINVALID, "failed to parse HTML: %v", err)
	}

	var links []cratedocs.ModuleLink
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if href == "" {
			return
		}
		if !strings.Contains(href, "/") && !strings.HasSuffix(href, ".html") {
			return
		}

		resolved := resolveURL(base, href)
		if resolved == "" {
			return
		}

		name := strings.TrimSpace(sel.Text())
		if name == "" {
			name = lastSegment(href)
		}
		if name == "" || strings.HasPrefix(name, "http") {
			return
		}

		links = append(links, cratedocs.ModuleLink{Name: name, URL: resolved})
	})

	return links, nil
}

// lastSegment derives a display name from the href's final path segment,
// trimming the page file extension.
func lastSegment(href string) string {
	segments := strings.Split(href, "/")
	return strings.TrimSuffix(segments[len(segments)-1], ".html")
}

// resolveURL resolves a relative URL against a base URL.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}
