package mock

import "github.com/tiagrib/webeater"

var _ webeater.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of webeater.Extractor.
type Extractor struct {
	ExtractFn func(pageURL, html string, hints webeater.Hint) (*webeater.ExtractResult, error)
}

func (e *Extractor) Extract(pageURL, html string, hints webeater.Hint) (*webeater.ExtractResult, error) {
	return e.ExtractFn(pageURL, html, hints)
}
