package adapter_test

import (
	"context"
	"io"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/minuta/pkg/adapter"
	"github.com/m-mizutani/minuta/pkg/model"
)

func TestLocalStorageRoundtrip(t *testing.T) {
	ctx := context.Background()
	storage := gt.R1(adapter.NewLocalStorage(t.TempDir())).NoError(t)

	gt.NoError(t, storage.Put(ctx, "meeting-1/notes.json", []byte(`{"summary":"s"}`)))

	rc := gt.R1(storage.Get(ctx, "meeting-1/notes.json")).NoError(t)
	defer rc.Close()
	data := gt.R1(io.ReadAll(rc)).NoError(t)
	gt.Equal(t, string(data), `{"summary":"s"}`)

	exists := gt.R1(storage.Exists(ctx, "meeting-1/notes.json")).NoError(t)
	gt.True(t, exists)
	exists = gt.R1(storage.Exists(ctx, "meeting-1/other.json")).NoError(t)
	gt.False(t, exists)
}

func TestLocalStorageGetNotFound(t *testing.T) {
	ctx := context.Background()
	storage := gt.R1(adapter.NewLocalStorage(t.TempDir())).NoError(t)

	_, err := storage.Get(ctx, "missing/notes.json")
	gt.Error(t, err)
	gt.True(t, goerr.HasTag(err, model.TagNotFound))
}

func TestLocalStoragePutOverwrites(t *testing.T) {
	ctx := context.Background()
	storage := gt.R1(adapter.NewLocalStorage(t.TempDir())).NoError(t)

	gt.NoError(t, storage.Put(ctx, "m/notes.json", []byte("v1")))
	gt.NoError(t, storage.Put(ctx, "m/notes.json", []byte("v2")))

	rc := gt.R1(storage.Get(ctx, "m/notes.json")).NoError(t)
	defer rc.Close()
	data := gt.R1(io.ReadAll(rc)).NoError(t)
	gt.Equal(t, string(data), "v2")
}

func TestLocalStorageList(t *testing.T) {
	ctx := context.Background()
	storage := gt.R1(adapter.NewLocalStorage(t.TempDir())).NoError(t)

	for _, key := range []string{
		"meeting-1/transcription.json",
		"meeting-1/notes.json",
		"meeting-2/transcription.json",
	} {
		gt.NoError(t, storage.Put(ctx, key, []byte("{}")))
	}

	keys := gt.R1(storage.List(ctx, "meeting-1/")).NoError(t)
	gt.Equal(t, keys, []string{
		"meeting-1/notes.json",
		"meeting-1/transcription.json",
	})

	keys = gt.R1(storage.List(ctx, "meeting-3/")).NoError(t)
	gt.Equal(t, len(keys), 0)
}

func TestMemoryStorage(t *testing.T) {
	ctx := context.Background()
	storage := adapter.NewMemoryStorage()

	_, err := storage.Get(ctx, "missing")
	gt.Error(t, err)
	gt.True(t, goerr.HasTag(err, model.TagNotFound))

	gt.NoError(t, storage.Put(ctx, "a/x.json", []byte("1")))
	gt.NoError(t, storage.Put(ctx, "a/y.json", []byte("2")))
	gt.NoError(t, storage.Put(ctx, "b/z.json", []byte("3")))

	keys := gt.R1(storage.List(ctx, "a/")).NoError(t)
	gt.Equal(t, keys, []string{"a/x.json", "a/y.json"})
}
