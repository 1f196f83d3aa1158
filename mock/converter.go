package mock

import "github.com/fwojciec/cratedocs"

var _ cratedocs.Converter = (*Converter)(nil)

// Converter is a mock implementation of cratedocs.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
