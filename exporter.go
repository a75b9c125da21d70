package mkdict

import "io"

// Exporter serializes a word list into a dictionary interchange format.
type Exporter interface {
	Export(w io.Writer, words []*WordRecord) error
}
