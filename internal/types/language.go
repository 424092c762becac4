package types

import (
	"fmt"
	"strings"
)

// Language is a content language tag
type Language string

// Supported content languages
const (
	English Language = "en"
	German  Language = "de"
	French  Language = "fr"
)

// DefaultLanguage is applied when a page is first loaded
const DefaultLanguage = German

// SupportedLanguages lists every language with a content record, in switcher order.
var SupportedLanguages = []Language{English, French, German}

// continuedSuffixes maps a language to its "(continued)" heading suffix
var continuedSuffixes = map[Language]string{
	English: "(continued)",
	German:  "(Fortsetzung)",
	French:  "(suite)",
}

// UnsupportedLanguageError is returned when a tag has no content record
type UnsupportedLanguageError struct {
	Tag string
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("unsupported language: %q", e.Tag)
}

// ParseLanguage normalizes a tag like "DE" or " fr " and checks it is supported.
func ParseLanguage(tag string) (Language, error) {
	lang := Language(strings.ToLower(strings.TrimSpace(tag)))
	for _, supported := range SupportedLanguages {
		if lang == supported {
			return lang, nil
		}
	}
	return "", &UnsupportedLanguageError{Tag: tag}
}

// ContinuedSuffix returns the translated "(continued)" suffix, falling back to English.
func (l Language) ContinuedSuffix() string {
	if suffix, ok := continuedSuffixes[l]; ok {
		return suffix
	}
	return continuedSuffixes[English]
}

// DataPath returns the static resource path of the content record for this language.
func (l Language) DataPath() string {
	return "/data_" + string(l) + ".json"
}

func (l Language) String() string {
	return string(l)
}
