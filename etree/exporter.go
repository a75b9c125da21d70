// Package etree exports word lists as XDXF dictionaries using beevik/etree.
package etree

import (
	"io"

	"github.com/beevik/etree"
	"github.com/fwojciec/mkdict"
)

// Ensure Exporter implements mkdict.Exporter at compile time.
var _ mkdict.Exporter = (*Exporter)(nil)

// Default dictionary metadata.
const (
	DefaultTitle    = "Macedonian-English"
	DefaultLangFrom = "MKD"
	DefaultLangTo   = "ENG"
)

// Exporter writes word records as an XDXF document in logical format.
type Exporter struct {
	Title    string
	Source   string
	LangFrom string
	LangTo   string
	// Indent is the number of spaces per nesting level. Zero writes
	// compact XML.
	Indent int
}

// NewExporter creates an Exporter with default metadata.
func NewExporter(source string) *Exporter {
	return &Exporter{
		Title:    DefaultTitle,
		Source:   source,
		LangFrom: DefaultLangFrom,
		LangTo:   DefaultLangTo,
		Indent:   2,
	}
}

// Export writes words to w in input order.
func (e *Exporter) Export(w io.Writer, words []*mkdict.WordRecord) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("xdxf")
	root.CreateAttr("lang_from", e.LangFrom)
	root.CreateAttr("lang_to", e.LangTo)
	root.CreateAttr("format", "logical")
	root.CreateAttr("revision", "033")

	meta := root.CreateElement("meta_info")
	meta.CreateElement("title").SetText(e.Title)
	meta.CreateElement("full_title").SetText(e.Title)
	if e.Source != "" {
		meta.CreateElement("dict_src_url").SetText(e.Source)
	}

	lexicon := root.CreateElement("lexicon")
	for _, word := range words {
		if err := word.Validate(); err != nil {
			return err
		}
		writeArticle(lexicon.CreateElement("ar"), word)
	}

	if e.Indent > 0 {
		doc.Indent(e.Indent)
	}
	if _, err := doc.WriteTo(w); err != nil {
		return mkdict.WrapError(mkdict.EINTERNAL, err, "write XDXF")
	}
	return nil
}

// writeArticle fills ar with one dictionary entry.
func writeArticle(ar *etree.Element, word *mkdict.WordRecord) {
	ar.CreateElement("k").SetText(word.Word)
	if word.Flexion != "" {
		ar.CreateElement("opt").SetText(word.Flexion)
	}
	ar.CreateElement("gr").SetText(word.Grammar)

	for _, d := range word.Definitions {
		def := ar.CreateElement("def")
		def.CreateElement("deftext").SetText(d.Meaning)
		if d.English != "" {
			def.CreateElement("dtrn").SetText(d.English)
		}
		if d.Example != "" {
			def.CreateElement("ex").SetText(d.Example)
		}
		if len(d.Synonyms) > 0 {
			sr := def.CreateElement("sr")
			for _, syn := range d.Synonyms {
				kref := sr.CreateElement("kref")
				kref.CreateAttr("type", "syn")
				kref.SetText(syn)
			}
		}
	}
}
