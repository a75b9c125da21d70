package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/mkdict"
)

// Ensure Extractor implements mkdict.Extractor at compile time.
var _ mkdict.Extractor = (*Extractor)(nil)

// Extractor implements mkdict.Extractor over rendered HTML snapshots.
// It holds no state besides its selectors and is safe for concurrent use.
type Extractor struct {
	sel Selectors
}

// NewExtractor creates an Extractor using DefaultSelectors.
func NewExtractor() *Extractor {
	return NewExtractorWithSelectors(DefaultSelectors())
}

// NewExtractorWithSelectors creates an Extractor with custom selectors.
func NewExtractorWithSelectors(sel Selectors) *Extractor {
	return &Extractor{sel: sel}
}

// ExtractRangeURIs returns the range select's option values in document order.
func (e *Extractor) ExtractRangeURIs(html string) ([]string, error) {
	doc, err := parseHTML(html)
	if err != nil {
		return nil, err
	}
	return optionValues(doc, e.sel.RangeOptions), nil
}

// ExtractWordURIs returns the word select's option values in document order.
func (e *Extractor) ExtractWordURIs(html string) ([]string, error) {
	doc, err := parseHTML(html)
	if err != nil {
		return nil, err
	}
	return optionValues(doc, e.sel.WordOptions), nil
}

// ExtractWord reads one dictionary entry from a word page. The headword,
// grammar and each definition's meaning must be present on the page, though
// their text may be empty.
func (e *Extractor) ExtractWord(html string) (*mkdict.WordRecord, error) {
	doc, err := parseHTML(html)
	if err != nil {
		return nil, err
	}
	root := doc.Selection

	word, ok := firstText(root, e.sel.Headword)
	if !ok {
		return nil, mkdict.Errorf(mkdict.EEXTRACTION, "headword %q not found", e.sel.Headword)
	}
	grammar, ok := firstText(root, e.sel.Grammar)
	if !ok {
		return nil, mkdict.Errorf(mkdict.EEXTRACTION, "word %q: grammar %q not found", word, e.sel.Grammar)
	}

	record := &mkdict.WordRecord{
		Word:        word,
		Grammar:     grammar,
		Definitions: []*mkdict.Definition{},
	}
	if flexion, ok := firstText(root, e.sel.Flexion); ok {
		record.Flexion = flexion
	}

	var defErr error
	root.Find(e.sel.Definition).EachWithBreak(func(i int, block *goquery.Selection) bool {
		def, err := e.extractDefinition(block)
		if err != nil {
			defErr = mkdict.Errorf(mkdict.EEXTRACTION, "word %q definition %d: %s", word, i+1, mkdict.ErrorMessage(err))
			return false
		}
		record.Definitions = append(record.Definitions, def)
		return true
	})
	if defErr != nil {
		return nil, defErr
	}
	return record, nil
}

func (e *Extractor) extractDefinition(block *goquery.Selection) (*mkdict.Definition, error) {
	meaning, ok := firstText(block, e.sel.Meaning)
	if !ok {
		return nil, mkdict.Errorf(mkdict.EEXTRACTION, "meaning %q not found", e.sel.Meaning)
	}

	def := &mkdict.Definition{Meaning: meaning}
	if english, ok := firstText(block, e.sel.English); ok {
		def.English = english
	}
	if example, ok := firstText(block, e.sel.Example); ok {
		def.Example = example
	}
	// Synonyms stay nil, not empty, when the block has no links.
	if synonyms := allText(block, e.sel.Synonyms); len(synonyms) > 0 {
		def.Synonyms = synonyms
	}
	return def, nil
}
