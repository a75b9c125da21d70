package mock

import (
	"io"

	"github.com/fwojciec/mkdict"
)

var _ mkdict.Exporter = (*Exporter)(nil)

// Exporter is a mock implementation of mkdict.Exporter.
type Exporter struct {
	ExportFn func(w io.Writer, words []*mkdict.WordRecord) error
}

func (e *Exporter) Export(w io.Writer, words []*mkdict.WordRecord) error {
	return e.ExportFn(w, words)
}
