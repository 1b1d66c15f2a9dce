package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/pager/internal/errors"
	"github.com/vango-dev/pager/pkg/server"
)

func renderCmd(g *globalFlags) *cobra.Command {
	var (
		flags  paginationFlags
		format string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print a pagination control",
		Long: `Print the pagination control for one page.

Values come from pager.json when present; flags override them.

Examples:
  pager render --total=1000 --per-page=5 --page=10 --window=5 --edges=1
  pager render -t 95 -l "/posts?page=__id__" --format=json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(g)
			if err != nil {
				return err
			}
			flags.apply(cmd.Flags(), &cfg.Pagination)
			if err := cfg.Validate(); err != nil {
				return err
			}
			p := cfg.Pagination

			out := cmd.OutOrStdout()
			switch format {
			case "html":
				_, err = fmt.Fprintln(out, p.Render())
				return err
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(server.Response{
					NumPages: p.NumPages(),
					Window:   p.Interval(),
					Items:    p.Items(),
					HTML:     p.Render(),
				})
			default:
				return errors.New("E140").
					WithField("--format").
					WithDetail(fmt.Sprintf("Unknown format %q.", format)).
					WithSuggestion("Use --format=html or --format=json")
			}
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().StringVarP(&format, "format", "f", "html", "Output format: html or json")

	return cmd
}
