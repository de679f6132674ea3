package repository

import (
	"context"
	"encoding/json"
	"io"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/minuta/pkg/adapter"
	"github.com/m-mizutani/minuta/pkg/model"
)

// artifactRepo implements Repository on top of adapter.Storage. One storage
// prefix per meeting, one JSON object per artifact.
type artifactRepo struct {
	storage adapter.Storage
}

// New creates a Repository backed by the given storage.
func New(storage adapter.Storage) Repository {
	return &artifactRepo{storage: storage}
}

// validateMeetingID rejects ids that would escape the meeting keyspace.
// Meeting ids arrive URL-decoded from the HTTP layer and are used as a path
// segment of the storage key.
func validateMeetingID(id model.MeetingID) error {
	s := string(id)
	if s == "" {
		return goerr.New("meeting id is empty", goerr.T(model.TagInvalidInput))
	}
	if strings.ContainsAny(s, "/\\") || s == "." || s == ".." {
		return goerr.New("invalid meeting id",
			goerr.T(model.TagInvalidInput), goerr.V("id", s))
	}
	return nil
}

func artifactKey(id model.MeetingID, name string) string {
	return string(id) + "/" + name
}

// transcriptionDoc is the wire format of transcription.json. Fields other
// than the text are produced by the recording pipeline and ignored here.
type transcriptionDoc struct {
	Transcription struct {
		Text string `json:"text"`
	} `json:"transcription"`
}

func (r *artifactRepo) readJSON(ctx context.Context, id model.MeetingID, name string, v any) error {
	rc, err := r.storage.Get(ctx, artifactKey(id, name))
	if err != nil {
		return err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return goerr.Wrap(err, "failed to read artifact",
			goerr.V("meeting", id), goerr.V("artifact", name))
	}
	if err := json.Unmarshal(data, v); err != nil {
		return goerr.Wrap(err, "failed to parse artifact",
			goerr.V("meeting", id), goerr.V("artifact", name))
	}
	return nil
}

func (r *artifactRepo) writeJSON(ctx context.Context, id model.MeetingID, name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return goerr.Wrap(err, "failed to encode artifact",
			goerr.V("meeting", id), goerr.V("artifact", name))
	}
	if err := r.storage.Put(ctx, artifactKey(id, name), data); err != nil {
		return err
	}
	return nil
}

func (r *artifactRepo) GetTranscription(ctx context.Context, id model.MeetingID) (*model.Transcription, error) {
	if err := validateMeetingID(id); err != nil {
		return nil, err
	}

	var doc transcriptionDoc
	if err := r.readJSON(ctx, id, model.TranscriptionKey, &doc); err != nil {
		return nil, err
	}
	return &model.Transcription{Text: doc.Transcription.Text}, nil
}

func (r *artifactRepo) GetNotes(ctx context.Context, id model.MeetingID, key string) (*model.Notes, error) {
	if err := validateMeetingID(id); err != nil {
		return nil, err
	}

	var notes model.Notes
	if err := r.readJSON(ctx, id, key, &notes); err != nil {
		return nil, err
	}
	return &notes, nil
}

func (r *artifactRepo) PutNotes(ctx context.Context, id model.MeetingID, key string, notes *model.Notes) error {
	if err := validateMeetingID(id); err != nil {
		return err
	}
	return r.writeJSON(ctx, id, key, notes)
}

func (r *artifactRepo) GetMetadata(ctx context.Context, id model.MeetingID) (*model.NotesMetadata, error) {
	if err := validateMeetingID(id); err != nil {
		return nil, err
	}

	var meta model.NotesMetadata
	if err := r.readJSON(ctx, id, model.MetadataKey, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (r *artifactRepo) PutMetadata(ctx context.Context, id model.MeetingID, meta *model.NotesMetadata) error {
	if err := validateMeetingID(id); err != nil {
		return err
	}
	return r.writeJSON(ctx, id, model.MetadataKey, meta)
}

func (r *artifactRepo) ListArtifacts(ctx context.Context, id model.MeetingID) ([]string, error) {
	if err := validateMeetingID(id); err != nil {
		return nil, err
	}

	prefix := string(id) + "/"
	keys, err := r.storage.List(ctx, prefix)
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return nil, goerr.New("meeting not found",
			goerr.T(model.TagNotFound), goerr.V("meeting", id))
	}

	names := make([]string, 0, len(keys))
	for _, key := range keys {
		names = append(names, strings.TrimPrefix(key, prefix))
	}
	return names, nil
}
