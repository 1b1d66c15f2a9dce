package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vango-dev/pager/internal/errors"
)

// DiskStore stores fragments on the local filesystem.
type DiskStore struct {
	dir string
}

// NewDiskStore creates a DiskStore rooted at dir, creating it if needed.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.New("E120").Wrap(err)
	}
	return &DiskStore{dir: dir}, nil
}

// Dir returns the root directory.
func (s *DiskStore) Dir() string {
	return s.dir
}

// Put writes body to dir/key. The file is written to a temporary name and
// renamed, so readers never see a partial fragment.
func (s *DiskStore) Put(ctx context.Context, key, contentType string, body []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !filepath.IsLocal(key) {
		return "", errors.New("E120").WithField(key).
			Wrap(fmt.Errorf("key escapes the export directory"))
	}

	path := filepath.Join(s.dir, key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", errors.New("E120").Wrap(err)
	}

	f, err := os.CreateTemp(filepath.Dir(path), ".fragment-*")
	if err != nil {
		return "", errors.New("E120").Wrap(err)
	}
	tmp := f.Name()

	if _, err := f.Write(body); err != nil {
		f.Close()
		os.Remove(tmp)
		return "", errors.New("E120").Wrap(err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return "", errors.New("E120").Wrap(err)
	}
	if err := os.Chmod(tmp, 0644); err != nil {
		os.Remove(tmp)
		return "", errors.New("E120").Wrap(err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return "", errors.New("E120").Wrap(err)
	}
	return path, nil
}
