package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/pager/pkg/server"
)

func serveCmd(g *globalFlags) *cobra.Command {
	var (
		port        int
		host        string
		metricsPath string
		tracing     bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve pagination controls over HTTP",
		Long: `Start an HTTP server rendering pagination controls.

Endpoints:
  GET /pagination        HTML fragment
  GET /pagination.json   items, window and page count
  GET /healthz           liveness probe
  GET /metrics           Prometheus metrics

Query parameters total, per_page, page, window, edges and link
override the pagination defaults from pager.json.

Examples:
  pager serve
  pager serve --port=9000 --host=0.0.0.0
  pager serve --metrics-path=- --tracing`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(g)
			if err != nil {
				return err
			}

			// Apply command-line overrides
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}
			if host != "" {
				cfg.Server.Host = host
			}
			if metricsPath != "" {
				cfg.Server.MetricsPath = metricsPath
			}
			if tracing {
				cfg.Server.Tracing = true
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger := newLogger(cfg, g)

			printBanner()
			fmt.Println("  serve")
			fmt.Println()
			info("Listening on http://%s", cfg.Server.Addr())
			if cfg.Server.MetricsPath == "-" {
				warn("Metrics endpoint disabled")
			}
			fmt.Println()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.New(cfg, server.WithLogger(logger)).Run(ctx)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from pager.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from pager.json)")
	cmd.Flags().StringVar(&metricsPath, "metrics-path", "", `Metrics endpoint path, "-" to disable`)
	cmd.Flags().BoolVar(&tracing, "tracing", false, "Trace requests with the global OpenTelemetry provider")

	return cmd
}
