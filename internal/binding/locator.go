package binding

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	mainSectionSelector     = ".cv-section"
	mainTitleSelector       = ".cv-section-title"
	sidebarTitleSelector    = ".cv-sidebar-section-title"
	skillGroupTitleSelector = ".cv-skill-group-title"
)

// mainKeys and sidebarKeys are tried in order; a heading belongs to the first title match.
var (
	mainKeys    = []SectionKey{Profile, Experience}
	sidebarKeys = []SectionKey{Education, Project, Reference}
)

// Heading is a located section heading
type Heading struct {
	Key SectionKey
	// Title is the heading element.
	Title *goquery.Selection
	// Section is the enclosing .cv-section for main-column headings, empty for sidebar ones.
	Section *goquery.Selection
	// Text is the trimmed heading text at locate time.
	Text      string
	Continued bool
}

// SectionIndex maps each logical group to its headings in document order
type SectionIndex struct {
	headings map[SectionKey][]Heading
}

// Locate scans the document headings once and resolves them to logical groups.
func Locate(doc *goquery.Document) *SectionIndex {
	idx := &SectionIndex{headings: make(map[SectionKey][]Heading)}

	doc.Find(mainSectionSelector).Each(func(_ int, section *goquery.Selection) {
		title := section.Find(mainTitleSelector).First()
		if title.Length() == 0 {
			return
		}
		idx.add(title, section, mainKeys)
	})

	doc.Find(sidebarTitleSelector).Each(func(_ int, title *goquery.Selection) {
		idx.add(title, nil, sidebarKeys)
	})

	if skill := doc.Find(skillGroupTitleSelector).First(); skill.Length() > 0 {
		idx.headings[Skill] = []Heading{{
			Key:   Skill,
			Title: skill,
			Text:  strings.TrimSpace(skill.Text()),
		}}
	}

	return idx
}

// add assigns a heading to the first group whose known titles it contains.
// A continued marker alone only decides when no group's title matches.
func (idx *SectionIndex) add(title, section *goquery.Selection, keys []SectionKey) {
	text := strings.TrimSpace(title.Text())
	key, ok := resolveKey(keys, text)
	if !ok {
		return
	}
	idx.headings[key] = append(idx.headings[key], Heading{
		Key:       key,
		Title:     title,
		Section:   section,
		Text:      text,
		Continued: continuable[key] && IsContinued(text),
	})
}

func resolveKey(keys []SectionKey, text string) (SectionKey, bool) {
	for _, key := range keys {
		if matchesTitle(key, text) {
			return key, true
		}
	}
	if !IsContinued(text) {
		return 0, false
	}
	for _, key := range keys {
		if continuable[key] {
			return key, true
		}
	}
	return 0, false
}

// Headings returns the headings located for key, in document order.
func (idx *SectionIndex) Headings(key SectionKey) []Heading {
	return idx.headings[key]
}

// MatchesSection reports whether heading text equals or contains a known title of key in any language.
// Groups that can overflow also match on a continued marker alone.
func MatchesSection(key SectionKey, text string) bool {
	return matchesTitle(key, text) || (continuable[key] && IsContinued(text))
}

func matchesTitle(key SectionKey, text string) bool {
	for _, titles := range TitleTable[key] {
		for _, title := range titles {
			if strings.Contains(text, title) {
				return true
			}
		}
	}
	return false
}

// IsContinued reports whether heading text carries any language's continued marker.
func IsContinued(text string) bool {
	for _, marker := range ContinuedMarkers {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}
