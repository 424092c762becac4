package binding

import "github.com/jonathan/cv-online/internal/types"

// SectionKey identifies a logical content group in the document
type SectionKey int

// Logical content groups, in binding order of their headings
const (
	Profile SectionKey = iota
	Experience
	Education
	Skill
	Project
	Reference
)

var sectionNames = map[SectionKey]string{
	Profile:    "profile",
	Experience: "experience",
	Education:  "education",
	Skill:      "skill",
	Project:    "project",
	Reference:  "reference",
}

func (k SectionKey) String() string {
	if name, ok := sectionNames[k]; ok {
		return name
	}
	return "unknown"
}

// TitleTable lists the known heading titles of every text-located group per language.
// Skill is located by class and has no entry. Adding a language only touches this table
// and ContinuedMarkers.
var TitleTable = map[SectionKey]map[types.Language][]string{
	Profile: {
		types.English: {"Professional Profile"},
		types.German:  {"Berufliches Profil"},
		types.French:  {"Profil professionnel"},
	},
	Experience: {
		types.English: {"Career Summary"},
		types.German:  {"Beruflicher Werdegang"},
		types.French:  {"Résumé de carrière"},
	},
	Education: {
		types.English: {"Education", "Professional Development"},
		types.German:  {"Bildung", "Berufliche Entwicklung"},
		types.French:  {"Formation", "développement professionnel"},
	},
	Project: {
		types.English: {"Side Projects"},
		types.German:  {"Nebenprojekte"},
		types.French:  {"Projets annexes"},
	},
	Reference: {
		types.English: {"References"},
		types.German:  {"Referenzen"},
		types.French:  {"Références"},
	},
}

// ContinuedMarkers holds the word each language uses in overflow section headings
var ContinuedMarkers = map[types.Language]string{
	types.English: "continued",
	types.German:  "Fortsetzung",
	types.French:  "suite",
}

// continuable groups may be split over several sections
var continuable = map[SectionKey]bool{
	Experience: true,
	Education:  true,
}
