package mkdict

// Readiness selectors the renderer waits for before each extraction.
const (
	RangesReadySelector = "#ranges"
	WordsReadySelector  = "#lexems"
	WordReadySelector   = "#main_content"
)

// Extractor pulls structured values out of rendered pages.
// Implementations are stateless and never modify the document.
type Extractor interface {
	// ExtractRangeURIs returns every range URI on a letter listing page,
	// in document order.
	ExtractRangeURIs(html string) ([]string, error)

	// ExtractWordURIs returns every word URI on a range page,
	// in document order.
	ExtractWordURIs(html string) ([]string, error)

	// ExtractWord returns the entry shown on a word page.
	// Returns EEXTRACTION if the headword, grammar, or a definition's
	// meaning is missing.
	ExtractWord(html string) (*WordRecord, error)
}
