// Package readability provides a heuristic content extractor based on the
// arc90 readability algorithm. It ignores the resolved hints entirely.
package readability

import (
	"strings"

	readability "github.com/go-shiori/go-readability"
	"github.com/tiagrib/webeater"
)

// Ensure Extractor implements webeater.Extractor at compile time.
var _ webeater.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content. The hints
// argument is ignored: readability uses its own content heuristics.
func (e *Extractor) Extract(pageURL, rawHTML string, _ webeater.Hint) (*webeater.ExtractResult, error) {
	if rawHTML == "" {
		return nil, webeater.Errorf(webeater.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &webeater.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
		Text:        webeater.NormalizeWhitespace(article.TextContent),
	}, nil
}
