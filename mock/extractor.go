package mock

import "github.com/fwojciec/mkdict"

var _ mkdict.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of mkdict.Extractor.
type Extractor struct {
	ExtractRangeURIsFn func(html string) ([]string, error)
	ExtractWordURIsFn  func(html string) ([]string, error)
	ExtractWordFn      func(html string) (*mkdict.WordRecord, error)
}

func (e *Extractor) ExtractRangeURIs(html string) ([]string, error) {
	return e.ExtractRangeURIsFn(html)
}

func (e *Extractor) ExtractWordURIs(html string) ([]string, error) {
	return e.ExtractWordURIsFn(html)
}

func (e *Extractor) ExtractWord(html string) (*mkdict.WordRecord, error) {
	return e.ExtractWordFn(html)
}
