// Package goquery provides DOM-based implementations of the page
// processing interfaces: content extraction, module link discovery, and
// feature flag extraction for docs.rs pages.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/cratedocs"
)

// Ensure Extractor implements cratedocs.ContentExtractor at compile time.
var _ cratedocs.ContentExtractor = (*Extractor)(nil)

// Matcher is one step of the content landmark fallback chain. Matchers are
// tried in order; the first one that locates an element wins.
type Matcher struct {
	// Name identifies the strategy.
	Name string

	// Selector is the CSS selector that locates the content region.
	Selector string
}

// Match returns the first element the selector locates and whether one was
// found.
func (m Matcher) Match(doc *goquery.Document) (*goquery.Selection, bool) {
	sel := doc.Find(m.Selector).First()
	return sel, sel.Length() > 0
}

// DefaultMatchers returns the landmark chain for docs.rs documentation
// pages: the main landmark, then the rustdoc content block, then the
// container rustdoc used before switching to semantic markup.
func DefaultMatchers() []Matcher {
	return []Matcher{
		{Name: "main", Selector: "main"},
		{Name: "docblock", Selector: "div.docblock"},
		{Name: "main-id", Selector: "div#main"},
	}
}

// Extractor converts the documentation region of a docs.rs page into
// markdown.
type Extractor struct {
	matchers []Matcher
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithMatchers replaces the landmark fallback chain.
func WithMatchers(matchers ...Matcher) ExtractorOption {
	return func(e *Extractor) {
		e.matchers = matchers
	}
}

// NewExtractor creates an Extractor with the default landmark chain.
func NewExtractor(opts ...ExtractorOption) *Extractor {
	e := &Extractor{
		matchers: DefaultMatchers(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract renders the page's documentation region as markdown under a
// level-1 heading built from title. Pages without any recognized landmark
// yield "" regardless of title.
func (e *Extractor) Extract(html, title string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", cratedocs.Errorf(cratedocs.EINVALID, "failed to parse HTML: %v", err)
	}

	region, ok := e.content(doc)
	if !ok {
		return "", nil
	}

	fragments := []string{"# " + title}
	region.Find("h1, h2, h3, h4, h5, h6, p, pre, code, ul, ol").Each(func(_ int, sel *goquery.Selection) {
		fragments = appendFragments(fragments, sel)
	})

	return strings.Join(fragments, "\n"), nil
}

func (e *Extractor) content(doc *goquery.Document) (*goquery.Selection, bool) {
	for _, m := range e.matchers {
		if sel, ok := m.Match(doc); ok {
			return sel, true
		}
	}
	return nil, false
}

// appendFragments converts one walked element into markdown fragments.
// Fragments are later joined with newlines, so multi-line constructs embed
// their own newlines.
func appendFragments(fragments []string, sel *goquery.Selection) []string {
	node := goquery.NodeName(sel)
	switch node {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		level := int(node[1] - '0')
		return append(fragments, strings.Repeat("#", level)+" "+strings.TrimSpace(sel.Text()))

	case "p":
		text := strings.TrimSpace(sel.Text())
		if text == "" {
			return fragments
		}
		return append(fragments, text)

	case "pre":
		// Code block content is kept verbatim, untrimmed.
		return append(fragments, "```rust\n"+sel.Text()+"\n```")

	case "code":
		// Code inside a pre already appears in its fenced block.
		if sel.ParentsFiltered("pre").Length() > 0 {
			return fragments
		}
		return append(fragments, "`"+sel.Text()+"`")

	case "ul", "ol":
		marker := "- "
		if node == "ol" {
			// Every ordered item uses the literal 1. marker; markdown
			// renderers renumber on display.
			marker = "1. "
		}
		sel.ChildrenFiltered("li").Each(func(_ int, li *goquery.Selection) {
			if text := strings.TrimSpace(li.Text()); text != "" {
				fragments = append(fragments, marker+text)
			}
		})
		// Blank separator after each list.
		return append(fragments, "")
	}

	return fragments
}
