// Package export pre-renders a pagination control for every page of a
// listing and writes each fragment to a store, so static sites can include
// the right control without rendering at request time.
package export

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vango-dev/pager/internal/config"
	"github.com/vango-dev/pager/pkg/paginate"
	"github.com/vango-dev/pager/pkg/store"
)

// Options configures an export run.
type Options struct {
	// KeyFormat names each fragment; its single %d is the one-based page.
	// Default: config.DefaultKeyFormat.
	KeyFormat string

	// Logger receives one debug record per fragment. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// Fragment describes one written fragment.
type Fragment struct {
	Page     int
	Key      string
	Location string
	Size     int
}

// Run renders cfg once per page, with each page in turn as the current one,
// and writes the result to st. It stops at the first error or when ctx is
// done, returning the fragments written so far.
func Run(ctx context.Context, st store.Store, cfg paginate.Config, opts Options) ([]Fragment, error) {
	if opts.KeyFormat == "" {
		opts.KeyFormat = config.DefaultKeyFormat
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	np := cfg.NumPages()
	var written []Fragment
	for page := 0; page < np; page++ {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		pc := cfg
		pc.CurrentPage = page
		body := pc.Render()
		key := fmt.Sprintf(opts.KeyFormat, page+1)

		loc, err := st.Put(ctx, key, store.ContentTypeHTML, []byte(body))
		if err != nil {
			return written, err
		}
		logger.Debug("fragment written", "page", page, "key", key, "location", loc, "bytes", len(body))
		written = append(written, Fragment{Page: page, Key: key, Location: loc, Size: len(body)})
	}
	return written, nil
}
