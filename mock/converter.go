package mock

import "github.com/tiagrib/webeater"

var _ webeater.Converter = (*Converter)(nil)

// Converter is a mock implementation of webeater.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
