package binding

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/cv-online/internal/types"
)

// DedupeContacts collapses contact rows whose text is the same phrase
// written twice, e.g. "Berlin Germany Berlin Germany". It returns the
// number of rows changed. Rows of two words or fewer are never touched.
func DedupeContacts(doc *goquery.Document) int {
	changed := 0
	doc.Find(".cv-contact-item").Each(func(_ int, item *goquery.Selection) {
		target := item.Find("span, a").First()
		if target.Length() == 0 {
			return
		}
		words := strings.Fields(target.Text())
		if len(words) <= 2 {
			return
		}
		mid := len(words) / 2
		first := strings.Join(words[:mid], " ")
		if first == strings.Join(words[mid:], " ") {
			target.SetText(first)
			changed++
		}
	})
	return changed
}

// MarkActiveLanguage flags the switcher button for lang as active, when the page has one.
func MarkActiveLanguage(doc *goquery.Document, lang types.Language) {
	buttons := doc.Find(".lang-btn[data-lang]")
	if buttons.Length() == 0 {
		return
	}
	buttons.RemoveClass("active")
	buttons.Filter(`[data-lang="` + lang.String() + `"]`).AddClass("active")
}
