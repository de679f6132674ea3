package model

import (
	"sort"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Language is an ISO 639-1 language code from the supported-language table.
type Language string

// DefaultLanguage is the implicit language of notes generated before
// multi-language support existed. Its notes live in the canonical
// (unsuffixed) artifact as well as its own suffixed one.
const DefaultLanguage = Language("en")

// LanguageTable maps supported language codes to display names. The display
// name is what the notes extractor is instructed to write in.
type LanguageTable map[Language]string

// DefaultLanguages returns the built-in supported-language table.
func DefaultLanguages() LanguageTable {
	return LanguageTable{
		"en": "English",
		"es": "Spanish",
		"fr": "French",
		"de": "German",
		"it": "Italian",
		"pt": "Portuguese",
		"ja": "Japanese",
		"ko": "Korean",
		"zh": "Chinese",
		"ru": "Russian",
		"ar": "Arabic",
		"hi": "Hindi",
	}
}

// Validate checks that lang is a member of the table.
func (t LanguageTable) Validate(lang Language) error {
	if _, ok := t[lang]; !ok {
		return goerr.New("unsupported language",
			goerr.T(TagInvalidInput),
			goerr.V("language", lang))
	}
	return nil
}

// DisplayName returns the display name for lang, or the code itself when
// the table has no entry.
func (t LanguageTable) DisplayName(lang Language) string {
	if name, ok := t[lang]; ok {
		return name
	}
	return string(lang)
}

// Codes returns the table's language codes in sorted order.
func (t LanguageTable) Codes() []Language {
	codes := make([]Language, 0, len(t))
	for code := range t {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

// Artifact keys within a meeting directory.
const (
	TranscriptionKey = "transcription.json"

	// CanonicalNotesKey holds default-language notes. Clients that predate
	// language suffixes read only this key, so "en" regeneration writes both
	// this and its suffixed key.
	CanonicalNotesKey = "notes.json"

	MetadataKey = "metadata.json"

	notesKeyPrefix = "notes-"
	notesKeySuffix = ".json"
)

// NotesKey returns the language-suffixed artifact key for lang.
func NotesKey(lang Language) string {
	return notesKeyPrefix + string(lang) + notesKeySuffix
}

// LanguageFromNotesKey extracts the language code from a suffixed notes
// artifact key. It reports false for the canonical key and for keys that are
// not notes artifacts at all.
func LanguageFromNotesKey(key string) (Language, bool) {
	if !strings.HasPrefix(key, notesKeyPrefix) || !strings.HasSuffix(key, notesKeySuffix) {
		return "", false
	}
	code := strings.TrimSuffix(strings.TrimPrefix(key, notesKeyPrefix), notesKeySuffix)
	if code == "" {
		return "", false
	}
	return Language(code), true
}
