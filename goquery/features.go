package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/cratedocs"
)

// Ensure FeatureExtractor implements cratedocs.FeatureExtractor at compile time.
var _ cratedocs.FeatureExtractor = (*FeatureExtractor)(nil)

// FeatureExtractor summarizes the feature flags listed on a docs.rs
// features page.
type FeatureExtractor struct{}

// NewFeatureExtractor creates a new FeatureExtractor.
func NewFeatureExtractor() *FeatureExtractor {
	return &FeatureExtractor{}
}

// ExtractFeatures renders a markdown summary of the feature flags found in
// the page. Candidate regions are located in three stages: elements whose
// class mentions features, then tables whose headers mention features, then
// the page's main content as a whole. Each region contributes its feature
// tables and lists; a plain-text pass runs as a last resort. Returns ""
// when nothing beyond the title line accumulated.
func (e *FeatureExtractor) ExtractFeatures(html, crate string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", cratedocs.Errorf(cratedocs.EINVALID, "failed to parse HTML: %v", err)
	}

	fragments := []string{"# " + crate + " - Feature Flags"}

	for _, region := range featureRegions(doc) {
		fragments = appendFeatureTables(fragments, region)
		fragments = appendFeatureLists(fragments, region)
	}

	if len(fragments) == 1 {
		fragments = appendFeatureText(fragments, doc)
	}

	if len(fragments) == 1 {
		return "", nil
	}
	return strings.Join(fragments, "\n"), nil
}

// featureRegions locates candidate regions in three stages. The first
// stage with any match supplies all of its matches; the final stage falls
// back to the page's content as a single region.
func featureRegions(doc *goquery.Document) []*goquery.Selection {
	var regions []*goquery.Selection

	doc.Find("[class]").Each(func(_ int, sel *goquery.Selection) {
		class, _ := sel.Attr("class")
		if strings.Contains(strings.ToLower(class), "feature") {
			regions = append(regions, sel)
		}
	})
	if len(regions) > 0 {
		return regions
	}

	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		if tableMentionsFeature(table) {
			regions = append(regions, table)
		}
	})
	if len(regions) > 0 {
		return regions
	}

	for _, selector := range []string{"main", "div.content", "body"} {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			return []*goquery.Selection{sel}
		}
	}

	return nil
}

func tableMentionsFeature(table *goquery.Selection) bool {
	found := false
	table.Find("th").EachWithBreak(func(_ int, th *goquery.Selection) bool {
		if strings.Contains(strings.ToLower(th.Text()), "feature") {
			found = true
			return false
		}
		return true
	})
	return found
}

// appendFeatureTables renders the feature tables found inside the region.
// A table qualifies when its first row mentions feature, name, or
// description; each later row with at least two cells becomes a name
// heading and description pair. A region that is itself a table holds no
// descendant tables and contributes nothing here.
func appendFeatureTables(fragments []string, region *goquery.Selection) []string {
	region.Find("table").Each(func(_ int, table *goquery.Selection) {
		rows := table.Find("tr")
		if rows.Length() == 0 {
			return
		}

		header := strings.ToLower(rowText(rows.First()))
		if !strings.Contains(header, "feature") &&
			!strings.Contains(header, "name") &&
			!strings.Contains(header, "description") {
			return
		}

		fragments = append(fragments, "## Available Features")
		rows.Slice(1, rows.Length()).Each(func(_ int, row *goquery.Selection) {
			cells := row.Find("td, th")
			if cells.Length() < 2 {
				return
			}
			name := strings.TrimSpace(cells.Eq(0).Text())
			desc := strings.TrimSpace(cells.Eq(1).Text())
			if name == "" || desc == "" {
				return
			}
			fragments = append(fragments, "### `"+name+"`", desc)
		})
	})
	return fragments
}

// rowText joins the trimmed text of the row's cells with spaces.
func rowText(row *goquery.Selection) string {
	var parts []string
	row.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
		parts = append(parts, strings.TrimSpace(cell.Text()))
	})
	return strings.Join(parts, " ")
}

// appendFeatureLists renders the lists found inside the region when one of
// the first three items mentions features.
func appendFeatureLists(fragments []string, region *goquery.Selection) []string {
	region.Find("ul, ol").Each(func(_ int, list *goquery.Selection) {
		items := list.Find("li")
		if items.Length() == 0 || !mentionsFeatureEarly(items) {
			return
		}

		fragments = append(fragments, "## Feature List")
		items.Each(func(_ int, li *goquery.Selection) {
			if text := strings.TrimSpace(li.Text()); text != "" {
				fragments = append(fragments, "- "+text)
			}
		})
		fragments = append(fragments, "")
	})
	return fragments
}

func mentionsFeatureEarly(items *goquery.Selection) bool {
	limit := items.Length()
	if limit > 3 {
		limit = 3
	}

	found := false
	items.Slice(0, limit).EachWithBreak(func(_ int, li *goquery.Selection) bool {
		if strings.Contains(strings.ToLower(li.Text()), "feature") {
			found = true
			return false
		}
		return true
	})
	return found
}

// appendFeatureText is the last-resort pass: the first five leaf text
// blocks mentioning features become plain paragraphs. The section heading
// is emitted as soon as candidates exist, even when none survive the
// length filter.
func appendFeatureText(fragments []string, doc *goquery.Document) []string {
	var candidates []*goquery.Selection
	doc.Find("div, p").Each(func(_ int, sel *goquery.Selection) {
		if sel.Children().Length() > 0 {
			return
		}
		if strings.Contains(strings.ToLower(sel.Text()), "feature") {
			candidates = append(candidates, sel)
		}
	})
	if len(candidates) == 0 {
		return fragments
	}

	fragments = append(fragments, "## Feature Information")
	if len(candidates) > 5 {
		candidates = candidates[:5]
	}
	for _, sel := range candidates {
		text := strings.TrimSpace(sel.Text())
		if text != "" && len(text) > 10 {
			fragments = append(fragments, text)
		}
	}
	return fragments
}
