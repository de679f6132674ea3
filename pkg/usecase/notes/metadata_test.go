package notes_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/minuta/pkg/adapter"
	"github.com/m-mizutani/minuta/pkg/model"
	"github.com/m-mizutani/minuta/pkg/repository"
	"github.com/m-mizutani/minuta/pkg/usecase/notes"
)

func TestReconstructMetadata(t *testing.T) {
	testCases := []struct {
		name        string
		keys        []string
		expectLangs []model.Language
	}{
		{
			name:        "no notes artifacts at all",
			keys:        []string{"transcription.json"},
			expectLangs: []model.Language{"en"},
		},
		{
			name:        "only canonical notes",
			keys:        []string{"transcription.json", "notes.json"},
			expectLangs: []model.Language{"en"},
		},
		{
			name:        "canonical plus french",
			keys:        []string{"notes.json", "notes-fr.json"},
			expectLangs: []model.Language{"en", "fr"},
		},
		{
			name:        "canonical plus suffixed english",
			keys:        []string{"notes.json", "notes-en.json"},
			expectLangs: []model.Language{"en"},
		},
		{
			name:        "suffixed only",
			keys:        []string{"notes-ja.json", "notes-de.json"},
			expectLangs: []model.Language{"de", "ja"},
		},
		{
			name:        "unrelated files ignored",
			keys:        []string{"metadata.json", "transcription.json", "notes-es.json"},
			expectLangs: []model.Language{"es"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			meta := notes.ReconstructMetadata(tc.keys)
			gt.Equal(t, meta.AvailableLanguages, tc.expectLangs)
			gt.Equal(t, meta.DefaultLanguage, tc.expectLangs[0])
			gt.Nil(t, meta.CreatedAt)
		})
	}
}

func TestReconstructMetadataEnPresentOnce(t *testing.T) {
	meta := notes.ReconstructMetadata([]string{"notes.json", "notes-fr.json", "notes-en.json"})

	count := 0
	for _, lang := range meta.AvailableLanguages {
		if lang == model.Language("en") {
			count++
		}
	}
	gt.Equal(t, count, 1)
}

func TestMetadataExplicitRecordWins(t *testing.T) {
	ctx := context.Background()
	repo := repository.New(adapter.NewMemoryStorage())

	now := time.Now().UTC().Truncate(time.Second)
	stored := &model.NotesMetadata{
		AvailableLanguages: []model.Language{"ja", "en"},
		DefaultLanguage:    "ja",
		CreatedAt:          &now,
	}
	gt.NoError(t, repo.PutMetadata(ctx, "m1", stored))
	// Artifacts that would reconstruct differently.
	gt.NoError(t, repo.PutNotes(ctx, "m1", model.NotesKey("fr"), &model.Notes{Summary: "fr"}))

	uc := notes.New(repo, &mockGemini{})
	meta := gt.R1(uc.Metadata(ctx, "m1")).NoError(t)
	gt.Equal(t, meta.AvailableLanguages, []model.Language{"ja", "en"})
	gt.Equal(t, meta.DefaultLanguage, model.Language("ja"))
}

func TestMetadataReconstructionIsPureRead(t *testing.T) {
	ctx := context.Background()
	storage := adapter.NewMemoryStorage()
	repo := repository.New(storage)

	gt.NoError(t, repo.PutNotes(ctx, "m1", model.CanonicalNotesKey, &model.Notes{Summary: "s"}))

	uc := notes.New(repo, &mockGemini{})
	meta := gt.R1(uc.Metadata(ctx, "m1")).NoError(t)
	gt.Equal(t, meta.AvailableLanguages, []model.Language{"en"})

	// No metadata artifact is written back by the reconstruction.
	exists := gt.R1(storage.Exists(ctx, "m1/"+model.MetadataKey)).NoError(t)
	gt.False(t, exists)
}

func TestMetadataMeetingNotFound(t *testing.T) {
	ctx := context.Background()
	uc := notes.New(repository.New(adapter.NewMemoryStorage()), &mockGemini{})

	_, err := uc.Metadata(ctx, "missing")
	gt.Error(t, err)
	gt.True(t, goerr.HasTag(err, model.TagNotFound))
}
