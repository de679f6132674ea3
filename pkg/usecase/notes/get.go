package notes

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/minuta/pkg/model"
)

// Result is the outcome of a notes read. A missing artifact is not an
// error: NeedsRegeneration tells the caller to trigger Regenerate.
type Result struct {
	Notes             *model.Notes `json:"notes"`
	NeedsRegeneration bool         `json:"needsRegeneration"`
}

// Get reads the notes of a meeting in the given language without any
// generation side effect. The language-suffixed artifact is preferred; for
// the default language the canonical artifact serves as fallback.
func (u *UseCase) Get(ctx context.Context, id model.MeetingID, lang model.Language) (*Result, error) {
	if err := u.languages.Validate(lang); err != nil {
		return nil, err
	}

	found, err := u.repo.GetNotes(ctx, id, model.NotesKey(lang))
	if err == nil {
		return &Result{Notes: found, NeedsRegeneration: false}, nil
	}
	if !goerr.HasTag(err, model.TagNotFound) {
		return nil, err
	}

	if lang == model.DefaultLanguage {
		found, err = u.repo.GetNotes(ctx, id, model.CanonicalNotesKey)
		if err == nil {
			return &Result{Notes: found, NeedsRegeneration: false}, nil
		}
		if !goerr.HasTag(err, model.TagNotFound) {
			return nil, err
		}
	}

	return &Result{Notes: nil, NeedsRegeneration: true}, nil
}
