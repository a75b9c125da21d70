package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/mkdict"
)

// parseHTML builds a document from a rendered DOM snapshot.
func parseHTML(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, mkdict.WrapError(mkdict.EEXTRACTION, err, "failed to parse HTML")
	}
	return doc, nil
}

// optionValues returns the value of every option matched by selector, in
// document order. Like HTMLOptionElement.value, an option without a value
// attribute falls back to its whitespace-collapsed text.
func optionValues(doc *goquery.Document, selector string) []string {
	values := []string{}
	doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
		if v, ok := sel.Attr("value"); ok {
			values = append(values, v)
			return
		}
		values = append(values, collapseSpace(sel.Text()))
	})
	return values
}

// firstText returns the trimmed text of the first element matching selector
// within sel. The bool result is false if nothing matches.
func firstText(sel *goquery.Selection, selector string) (string, bool) {
	match := sel.Find(selector).First()
	if match.Length() == 0 {
		return "", false
	}
	return strings.TrimSpace(match.Text()), true
}

// allText returns the trimmed text of every element matching selector within sel.
func allText(sel *goquery.Selection, selector string) []string {
	var texts []string
	sel.Find(selector).Each(func(_ int, s *goquery.Selection) {
		texts = append(texts, strings.TrimSpace(s.Text()))
	})
	return texts
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
