package adapter

import (
	"context"
	"io"
)

// Storage is the interface for meeting artifact storage. Keys are
// slash-separated paths relative to the meetings root
// (e.g. "meeting-123/notes-fr.json").
type Storage interface {
	// Get opens the artifact at key for reading. A missing artifact yields an
	// error tagged model.TagNotFound.
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	// Put writes data to key, replacing any previous content.
	Put(ctx context.Context, key string, data []byte) error
	// Exists reports whether an artifact is present at key.
	Exists(ctx context.Context, key string) (bool, error)
	// List returns the keys under prefix, relative to the root, in
	// lexicographic order. An unknown prefix yields an empty slice.
	List(ctx context.Context, prefix string) ([]string, error)
}
