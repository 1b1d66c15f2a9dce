package store

import (
	"context"

	"github.com/vango-dev/pager/internal/config"
	"github.com/vango-dev/pager/internal/errors"
)

// ContentTypeHTML is the content type of rendered fragments.
const ContentTypeHTML = "text/html; charset=utf-8"

// Store is the interface for fragment storage backends.
type Store interface {
	// Put stores body under key and returns where it was written
	// (a file path or an s3:// URL).
	Put(ctx context.Context, key, contentType string, body []byte) (location string, err error)
}

// Open returns the backend selected by cfg.Backend.
func Open(cfg config.ExportConfig) (Store, error) {
	switch cfg.Backend {
	case config.BackendDisk, "":
		return NewDiskStore(cfg.Dir)
	case config.BackendS3:
		client, err := NewS3Client(cfg)
		if err != nil {
			return nil, err
		}
		return NewS3Store(client, cfg.Bucket, cfg.Prefix), nil
	default:
		return nil, errors.New("E121").WithField(cfg.Backend)
	}
}
