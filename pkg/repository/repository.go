package repository

import (
	"context"

	"github.com/m-mizutani/minuta/pkg/model"
)

// Repository defines access to per-meeting JSON artifacts. Transcriptions
// are read-only from this service's point of view; notes and metadata are
// written by the notes lifecycle.
type Repository interface {
	// GetTranscription reads the transcript artifact of a meeting.
	GetTranscription(ctx context.Context, id model.MeetingID) (*model.Transcription, error)

	// GetNotes reads a notes artifact by its storage key
	// (model.CanonicalNotesKey or model.NotesKey(lang)).
	GetNotes(ctx context.Context, id model.MeetingID, key string) (*model.Notes, error)

	// PutNotes writes a notes artifact, replacing any previous content.
	PutNotes(ctx context.Context, id model.MeetingID, key string, notes *model.Notes) error

	// GetMetadata reads the notes metadata artifact.
	GetMetadata(ctx context.Context, id model.MeetingID) (*model.NotesMetadata, error)

	// PutMetadata writes the notes metadata artifact.
	PutMetadata(ctx context.Context, id model.MeetingID, meta *model.NotesMetadata) error

	// ListArtifacts returns the artifact keys of a meeting, relative to its
	// directory. A meeting with no artifacts at all is treated as unknown.
	ListArtifacts(ctx context.Context, id model.MeetingID) ([]string, error)
}
