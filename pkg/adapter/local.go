package adapter

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/minuta/pkg/model"
)

// localStorage implements Storage on a local directory. The on-disk layout
// matches the storage keys one-to-one: <baseDir>/<meetingID>/<artifact>.
type localStorage struct {
	baseDir string
}

// NewLocalStorage creates a Storage rooted at baseDir, creating it if needed.
func NewLocalStorage(baseDir string) (Storage, error) {
	if baseDir == "" {
		return nil, goerr.New("base directory is required")
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, goerr.Wrap(err, "failed to create base directory", goerr.V("dir", baseDir))
	}
	return &localStorage{baseDir: baseDir}, nil
}

func (s *localStorage) path(key string) string {
	return filepath.Join(s.baseDir, filepath.FromSlash(key))
}

func (s *localStorage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	f, err := os.Open(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "artifact not found",
				goerr.T(model.TagNotFound), goerr.V("key", key))
		}
		return nil, goerr.Wrap(err, "failed to open artifact", goerr.V("key", key))
	}
	return f, nil
}

func (s *localStorage) Put(ctx context.Context, key string, data []byte) error {
	path := s.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return goerr.Wrap(err, "failed to create artifact directory", goerr.V("key", key))
	}

	// Write-then-rename so concurrent readers never observe a torn file.
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return goerr.Wrap(err, "failed to create temp file", goerr.V("key", key))
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return goerr.Wrap(err, "failed to write artifact", goerr.V("key", key))
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return goerr.Wrap(err, "failed to close artifact", goerr.V("key", key))
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return goerr.Wrap(err, "failed to replace artifact", goerr.V("key", key))
	}
	return nil
}

func (s *localStorage) Exists(ctx context.Context, key string) (bool, error) {
	if _, err := os.Stat(s.path(key)); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, goerr.Wrap(err, "failed to stat artifact", goerr.V("key", key))
	}
	return true, nil
}

func (s *localStorage) List(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	err := filepath.WalkDir(s.baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || strings.HasPrefix(d.Name(), ".tmp-") {
			return nil
		}
		rel, err := filepath.Rel(s.baseDir, path)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(rel)
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
		return nil
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list artifacts", goerr.V("prefix", prefix))
	}
	sort.Strings(keys)
	return keys, nil
}
