package notes

import (
	"context"
	"sort"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/minuta/pkg/model"
)

// Metadata returns the language index of a meeting. An explicit
// metadata.json is authoritative; otherwise the index is reconstructed from
// the artifact listing. Reconstruction is a pure read: nothing is written
// back, so meetings created before metadata tracking keep working without
// migration.
func (u *UseCase) Metadata(ctx context.Context, id model.MeetingID) (*model.NotesMetadata, error) {
	meta, err := u.repo.GetMetadata(ctx, id)
	if err == nil {
		return meta, nil
	}
	if !goerr.HasTag(err, model.TagNotFound) {
		return nil, err
	}

	keys, err := u.repo.ListArtifacts(ctx, id)
	if err != nil {
		return nil, err
	}

	return ReconstructMetadata(keys), nil
}

// ReconstructMetadata derives a language index from a listing of artifact
// keys. Suffixed notes artifacts contribute their language code; a canonical
// notes.json implies "en" as the first language when no suffixed "en"
// exists. A meeting with no notes artifacts at all is assumed to be
// English-only, even though no notes content is guaranteed to exist.
func ReconstructMetadata(keys []string) *model.NotesMetadata {
	var langs []model.Language
	seen := map[model.Language]bool{}
	hasCanonical := false

	for _, key := range keys {
		if key == model.CanonicalNotesKey {
			hasCanonical = true
			continue
		}
		if lang, ok := model.LanguageFromNotesKey(key); ok && !seen[lang] {
			seen[lang] = true
			langs = append(langs, lang)
		}
	}

	sort.Slice(langs, func(i, j int) bool { return langs[i] < langs[j] })

	if hasCanonical && !seen[model.DefaultLanguage] {
		langs = append([]model.Language{model.DefaultLanguage}, langs...)
	}
	if len(langs) == 0 {
		langs = []model.Language{model.DefaultLanguage}
	}

	return &model.NotesMetadata{
		AvailableLanguages: langs,
		DefaultLanguage:    langs[0],
		CreatedAt:          nil,
	}
}
