// Package trafilatura provides a heuristic content extractor for pages
// where no hints apply. It ignores the resolved hints entirely.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"github.com/tiagrib/webeater"
	"golang.org/x/net/html"
)

// Ensure Extractor implements webeater.Extractor at compile time.
var _ webeater.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content. The hints
// argument is ignored: trafilatura uses its own content heuristics.
func (e *Extractor) Extract(pageURL, rawHTML string, _ webeater.Hint) (*webeater.ExtractResult, error) {
	if rawHTML == "" {
		return nil, webeater.Errorf(webeater.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &webeater.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
		Text:        webeater.NormalizeWhitespace(result.ContentText),
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
