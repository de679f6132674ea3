package model_test

import (
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/minuta/pkg/model"
)

func TestLanguageTableValidate(t *testing.T) {
	table := model.DefaultLanguages()

	gt.NoError(t, table.Validate("en"))
	gt.NoError(t, table.Validate("ja"))

	err := table.Validate("xx")
	gt.Error(t, err)
	gt.True(t, goerr.HasTag(err, model.TagInvalidInput))
}

func TestLanguageTableCodes(t *testing.T) {
	table := model.LanguageTable{"fr": "French", "en": "English", "ja": "Japanese"}
	gt.Equal(t, table.Codes(), []model.Language{"en", "fr", "ja"})
}

func TestNotesKey(t *testing.T) {
	gt.Equal(t, model.NotesKey("fr"), "notes-fr.json")
	gt.Equal(t, model.NotesKey("en"), "notes-en.json")
}

func TestLanguageFromNotesKey(t *testing.T) {
	testCases := []struct {
		key    string
		lang   model.Language
		expect bool
	}{
		{"notes-fr.json", "fr", true},
		{"notes-en.json", "en", true},
		{"notes.json", "", false},
		{"notes-.json", "", false},
		{"transcription.json", "", false},
		{"metadata.json", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.key, func(t *testing.T) {
			lang, ok := model.LanguageFromNotesKey(tc.key)
			gt.Equal(t, ok, tc.expect)
			gt.Equal(t, lang, tc.lang)
		})
	}
}

func TestNotesMetadataAppend(t *testing.T) {
	meta := &model.NotesMetadata{
		AvailableLanguages: []model.Language{"en"},
		DefaultLanguage:    "en",
	}

	gt.True(t, meta.Append("fr"))
	gt.False(t, meta.Append("fr"))
	gt.Equal(t, meta.AvailableLanguages, []model.Language{"en", "fr"})
	gt.Equal(t, meta.DefaultLanguage, model.Language("en"))
}
