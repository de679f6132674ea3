package notes

import (
	"context"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/minuta/pkg/model"
	"github.com/m-mizutani/minuta/pkg/utils/logging"
)

// Generate (re)generates the default-language notes of a meeting and writes
// them to the canonical artifact. It predates language metadata and does not
// touch the index; multi-language clients use Regenerate instead.
func (u *UseCase) Generate(ctx context.Context, id model.MeetingID) (*model.Notes, error) {
	transcript, err := u.transcriptText(ctx, id)
	if err != nil {
		return nil, err
	}

	result, err := u.extract(ctx, transcript, model.DefaultLanguage)
	if err != nil {
		return nil, err
	}

	if err := u.repo.PutNotes(ctx, id, model.CanonicalNotesKey, result); err != nil {
		return nil, err
	}

	logging.From(ctx).Info("generated notes", "meeting", id)
	return result, nil
}

// Regenerate generates notes for a meeting in the given language, persists
// them under the language-suffixed artifact and registers the language in
// the metadata index. Regenerating an already-listed language overwrites the
// notes but leaves the index unchanged.
func (u *UseCase) Regenerate(ctx context.Context, id model.MeetingID, lang model.Language) (*model.Notes, error) {
	if err := u.languages.Validate(lang); err != nil {
		return nil, err
	}

	transcript, err := u.transcriptText(ctx, id)
	if err != nil {
		return nil, err
	}

	result, err := u.extract(ctx, transcript, lang)
	if err != nil {
		return nil, err
	}

	// The metadata read-modify-write races with concurrent regenerations of
	// the same meeting, so persistence runs under the per-meeting lock. The
	// extraction call above stays outside it.
	unlock := u.locks.lock(id)
	defer unlock()

	if err := u.repo.PutNotes(ctx, id, model.NotesKey(lang), result); err != nil {
		return nil, err
	}
	if lang == model.DefaultLanguage {
		// Dual-write: clients that predate language suffixes read only the
		// canonical artifact.
		if err := u.repo.PutNotes(ctx, id, model.CanonicalNotesKey, result); err != nil {
			return nil, err
		}
	}

	meta, err := u.repo.GetMetadata(ctx, id)
	if err != nil {
		if !goerr.HasTag(err, model.TagNotFound) {
			return nil, err
		}
		meta = model.NewNotesMetadata(time.Now())
	}
	if meta.Append(lang) {
		if err := u.repo.PutMetadata(ctx, id, meta); err != nil {
			return nil, err
		}
	}

	logging.From(ctx).Info("regenerated notes", "meeting", id, "language", lang)
	return result, nil
}

// transcriptText loads the transcript of a meeting and validates that it
// carries extractable text.
func (u *UseCase) transcriptText(ctx context.Context, id model.MeetingID) (string, error) {
	transcription, err := u.repo.GetTranscription(ctx, id)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(transcription.Text) == "" {
		return "", goerr.New("transcription has no text",
			goerr.T(model.TagInvalidInput), goerr.V("meeting", id))
	}
	return transcription.Text, nil
}
