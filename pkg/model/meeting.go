package model

import "time"

// MeetingID identifies a meeting. IDs are created by the recording pipeline,
// not by this service; they are treated as opaque strings.
type MeetingID string

// Transcription is the transcript artifact of a meeting. It is immutable
// once written and is the sole input to notes generation.
type Transcription struct {
	Text string `json:"text"`
}

// Notes is the structured derivative of a transcript, one instance per
// language. Regeneration overwrites the whole object, never merges.
type Notes struct {
	Summary     string   `json:"summary"`
	KeyTopics   []string `json:"keyTopics"`
	ActionItems []string `json:"actionItems"`
	Decisions   []string `json:"decisions"`
	Assumptions []string `json:"assumptions"`
	QA          []QA     `json:"qa"`
}

// QA is a question raised in the meeting paired with the answer given.
type QA struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// NotesMetadata records which notes languages exist for a meeting and which
// one is the default. AvailableLanguages keeps insertion order, which is
// generation order.
type NotesMetadata struct {
	AvailableLanguages []Language `json:"availableLanguages"`
	DefaultLanguage    Language   `json:"defaultLanguage"`
	CreatedAt          *time.Time `json:"createdAt"`
}

// NewNotesMetadata returns the fallback metadata used when no metadata
// artifact exists yet.
func NewNotesMetadata(now time.Time) *NotesMetadata {
	return &NotesMetadata{
		AvailableLanguages: []Language{},
		DefaultLanguage:    DefaultLanguage,
		CreatedAt:          &now,
	}
}

// Has reports whether lang is already registered.
func (m *NotesMetadata) Has(lang Language) bool {
	for _, l := range m.AvailableLanguages {
		if l == lang {
			return true
		}
	}
	return false
}

// Append registers lang if absent and reports whether the metadata changed.
func (m *NotesMetadata) Append(lang Language) bool {
	if m.Has(lang) {
		return false
	}
	m.AvailableLanguages = append(m.AvailableLanguages, lang)
	if m.DefaultLanguage == "" {
		m.DefaultLanguage = lang
	}
	return true
}
