package adapter

import (
	"context"
	"errors"
	"io"
	"sort"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/minuta/pkg/model"
	"google.golang.org/api/iterator"
)

// gcsStorage implements Storage on a Cloud Storage bucket, using the same
// key layout as the local backend.
type gcsStorage struct {
	bucketName string
	client     *storage.Client
}

// NewGCSStorage creates a Cloud Storage backed Storage.
func NewGCSStorage(ctx context.Context, bucketName string) (Storage, error) {
	if bucketName == "" {
		return nil, goerr.New("bucket name is required")
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create storage client", goerr.T(model.TagUpstream))
	}

	return &gcsStorage{
		bucketName: bucketName,
		client:     client,
	}, nil
}

func (s *gcsStorage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	reader, err := s.client.Bucket(s.bucketName).Object(key).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, goerr.Wrap(err, "artifact not found",
				goerr.T(model.TagNotFound), goerr.V("key", key))
		}
		return nil, goerr.Wrap(err, "failed to read artifact",
			goerr.T(model.TagUpstream), goerr.V("key", key))
	}
	return reader, nil
}

func (s *gcsStorage) Put(ctx context.Context, key string, data []byte) error {
	w := s.client.Bucket(s.bucketName).Object(key).NewWriter(ctx)
	if _, err := w.Write(data); err != nil {
		w.Close()
		return goerr.Wrap(err, "failed to write artifact",
			goerr.T(model.TagUpstream), goerr.V("key", key))
	}
	if err := w.Close(); err != nil {
		return goerr.Wrap(err, "failed to finalize artifact",
			goerr.T(model.TagUpstream), goerr.V("key", key))
	}
	return nil
}

func (s *gcsStorage) Exists(ctx context.Context, key string) (bool, error) {
	_, err := s.client.Bucket(s.bucketName).Object(key).Attrs(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return false, nil
		}
		return false, goerr.Wrap(err, "failed to stat artifact",
			goerr.T(model.TagUpstream), goerr.V("key", key))
	}
	return true, nil
}

func (s *gcsStorage) List(ctx context.Context, prefix string) ([]string, error) {
	it := s.client.Bucket(s.bucketName).Objects(ctx, &storage.Query{Prefix: prefix})

	var keys []string
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list artifacts",
				goerr.T(model.TagUpstream), goerr.V("prefix", prefix))
		}
		keys = append(keys, attrs.Name)
	}
	sort.Strings(keys)
	return keys, nil
}
