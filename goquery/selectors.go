// Package goquery extracts dictionary data from rendered HTML using CSS selectors.
package goquery

import "github.com/fwojciec/mkdict"

// Selectors holds the CSS selectors that locate dictionary data on rendered pages.
type Selectors struct {
	// RangeOptions matches the options of the range select control.
	RangeOptions string
	// WordOptions matches the options of the word select control.
	WordOptions string

	Headword string
	Grammar  string
	Flexion  string

	// Definition matches each definition block. The remaining selectors
	// are evaluated relative to a single block.
	Definition string
	Meaning    string
	English    string
	Example    string
	Synonyms   string
}

// DefaultSelectors returns the selectors used by makedonski.info.
func DefaultSelectors() Selectors {
	return Selectors{
		RangeOptions: mkdict.RangesReadySelector + " option",
		WordOptions:  mkdict.WordsReadySelector + " option",
		Headword:     ".lexem span:first-of-type",
		Grammar:      ".grammar i",
		Flexion:      ".flexion i",
		Definition:   ".definition",
		Meaning:      ".meaning",
		English:      ".translation.eng a",
		Example:      ".example",
		Synonyms:     ".semem-links a",
	}
}
