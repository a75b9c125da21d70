// Package bloom tracks previously seen URIs with a Bloom filter.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter remembers keys approximately. It may report a key as seen when it
// was not, but never the reverse, so it suits counting repeats for logs
// and must not be used to drop data.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a filter sized for n expected keys at the given false
// positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{f: bloom.NewWithEstimates(n, fpRate)}
}

// Seen records key and reports whether it had probably been recorded before.
func (f *Filter) Seen(key string) bool {
	return f.f.TestOrAddString(key)
}
