package readability

import (
	"strings"

	"github.com/fwojciec/cratedocs"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements cratedocs.Extractor at compile time.
var _ cratedocs.Extractor = (*Extractor)(nil)

// Extractor isolates main content using the readability algorithm. It is
// the alternative engine to the trafilatura extractor and tends to keep
// more of a page when the markup lacks semantic landmarks.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*cratedocs.ExtractResult, error) {
	if rawHTML == "" {
		return nil, cratedocs.Errorf(cratedocs.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, cratedocs.Errorf(cratedocs.EINVALID, "failed to parse HTML: %v", err)
	}

	return &cratedocs.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
