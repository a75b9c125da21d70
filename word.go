package mkdict

// Letter is one grapheme of the source alphabet.
type Letter string

// Alphabet is the fixed, ordered Macedonian alphabet the crawl starts from.
var Alphabet = []Letter{
	"а", "б", "в", "г", "д", "ѓ", "е", "ж", "з", "ѕ", "и",
	"ј", "к", "л", "љ", "м", "н", "њ", "о", "п", "р", "с",
	"т", "ќ", "у", "ф", "х", "ц", "ч", "џ", "ш",
}

// ParseLetters converts strings into letters, rejecting anything that is
// not part of Alphabet. The input order is kept.
func ParseLetters(ss []string) ([]Letter, error) {
	letters := make([]Letter, 0, len(ss))
	for _, s := range ss {
		l := Letter(s)
		if !l.Valid() {
			return nil, Errorf(EINVALID, "letter %q is not in the alphabet", s)
		}
		letters = append(letters, l)
	}
	return letters, nil
}

// Valid reports whether l belongs to Alphabet.
func (l Letter) Valid() bool {
	for _, a := range Alphabet {
		if a == l {
			return true
		}
	}
	return false
}

// Definition is one sense of a dictionary entry.
type Definition struct {
	Meaning  string   `json:"meaning"`
	English  string   `json:"english,omitempty"`
	Example  string   `json:"example,omitempty"`
	Synonyms []string `json:"synonyms,omitempty"`
}

// WordRecord is the fully extracted representation of one dictionary entry.
// Definitions are kept in the order they appear on the source page.
type WordRecord struct {
	Word        string        `json:"word"`
	Flexion     string        `json:"flexion,omitempty"`
	Grammar     string        `json:"grammar"`
	Definitions []*Definition `json:"definitions"`
}

// Validate returns an error if the record is structurally incomplete.
// Empty text is valid: a page element that exists but renders no text
// yields an empty field, not a missing one.
func (w *WordRecord) Validate() error {
	if w.Definitions == nil {
		return Errorf(EEXTRACTION, "word %q definitions required", w.Word)
	}
	for i, d := range w.Definitions {
		if d == nil {
			return Errorf(EEXTRACTION, "word %q definition %d missing", w.Word, i+1)
		}
	}
	return nil
}

// CrawlState accumulates the output of each crawl stage.
type CrawlState struct {
	RangeURIs []string
	WordURIs  []string
	Words     []*WordRecord
}
