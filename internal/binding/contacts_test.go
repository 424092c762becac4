package binding

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/cv-online/internal/types"
)

func TestDedupeContacts(t *testing.T) {
	doc := parseHTML(t, `<div>
		<div class="cv-contact-item"><i class="fa-map-marker-alt"></i><span>Paris France Paris France</span></div>
		<div class="cv-contact-item"><i class="fa-phone"></i><span>+33 1 00 00 00 00</span></div>
		<div class="cv-contact-item"><i class="fa-globe"></i><a>site site</a></div>
		<div class="cv-contact-item"><i class="fa-envelope"></i></div>
	</div>`)

	changed := DedupeContacts(doc)

	assert.Equal(t, 1, changed)
	assert.Equal(t, "Paris France", textOf(doc, ".cv-contact-item span", 0))
	assert.Equal(t, "+33 1 00 00 00 00", textOf(doc, ".cv-contact-item span", 1))
	assert.Equal(t, "site site", textOf(doc, ".cv-contact-item a", 0))
}

func TestDedupeContacts_Idempotent(t *testing.T) {
	doc := loadSkeleton(t)

	assert.Equal(t, 1, DedupeContacts(doc))
	assert.Equal(t, 0, DedupeContacts(doc))
}

func TestMarkActiveLanguage(t *testing.T) {
	doc := loadSkeleton(t)

	MarkActiveLanguage(doc, types.German)

	active := doc.Find(".lang-btn.active")
	assert.Equal(t, 1, active.Length())
	lang, _ := active.Attr("data-lang")
	assert.Equal(t, "de", lang)
}

func TestMarkActiveLanguage_NoSwitcher(t *testing.T) {
	doc := parseHTML(t, `<div class="cv-name">x</div>`)
	assert.NotPanics(t, func() { MarkActiveLanguage(doc, types.French) })
}
