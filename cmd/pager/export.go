package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/pager/pkg/export"
	"github.com/vango-dev/pager/pkg/store"
)

func exportCmd(g *globalFlags) *cobra.Command {
	var (
		flags     paginationFlags
		backend   string
		dir       string
		bucket    string
		prefix    string
		region    string
		endpoint  string
		pathStyle bool
		keyFormat string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a fragment for every page",
		Long: `Render the control once per page, with that page as current,
and write each fragment to disk or S3.

S3 credentials are read from AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY
and AWS_SESSION_TOKEN.

Examples:
  pager export --total=240 --link="/blog/__id__/" --dir=public/nav
  pager export --backend=s3 --bucket=site-assets --prefix=nav/ -t 240`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(g)
			if err != nil {
				return err
			}
			flags.apply(cmd.Flags(), &cfg.Pagination)

			// Apply command-line overrides
			e := &cfg.Export
			for name, v := range map[string]struct {
				dst *string
				src string
			}{
				"backend":    {&e.Backend, backend},
				"dir":        {&e.Dir, dir},
				"bucket":     {&e.Bucket, bucket},
				"prefix":     {&e.Prefix, prefix},
				"region":     {&e.Region, region},
				"endpoint":   {&e.Endpoint, endpoint},
				"key-format": {&e.KeyFormat, keyFormat},
			} {
				if cmd.Flags().Changed(name) {
					*v.dst = v.src
				}
			}
			if cmd.Flags().Changed("path-style") {
				e.PathStyle = pathStyle
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger := newLogger(cfg, g)

			st, err := store.Open(cfg.Export)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			frags, err := export.Run(ctx, st, cfg.Pagination, export.Options{
				KeyFormat: cfg.Export.KeyFormat,
				Logger:    logger,
			})
			if err != nil {
				if len(frags) > 0 {
					warn("Wrote %d of %d fragments before failing", len(frags), cfg.Pagination.NumPages())
				}
				return err
			}

			success("Exported %d fragments", len(frags))
			if len(frags) > 0 {
				info("%s", frags[0].Location)
				if len(frags) > 1 {
					info("...")
					info("%s", frags[len(frags)-1].Location)
				}
			}
			return nil
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().StringVar(&backend, "backend", "", "Store backend: disk or s3 (default from pager.json)")
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Output directory for the disk backend")
	cmd.Flags().StringVar(&bucket, "bucket", "", "S3 bucket")
	cmd.Flags().StringVar(&prefix, "prefix", "", "S3 key prefix")
	cmd.Flags().StringVar(&region, "region", "", "S3 region (default us-east-1)")
	cmd.Flags().StringVar(&endpoint, "endpoint", "", "Endpoint of an S3-compatible service")
	cmd.Flags().BoolVar(&pathStyle, "path-style", false, "Use path-style S3 addressing")
	cmd.Flags().StringVarP(&keyFormat, "key-format", "k", "", "Fragment name pattern with one %d for the page number")

	return cmd
}
