package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/ironsheep/tokenorder/internal/server"
	"github.com/ironsheep/tokenorder/internal/telemetry"
)

// ServeOptions holds flags for the serve command.
type ServeOptions struct {
	MetricsListen string
}

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ServeOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server over stdin and stdout",
		Long: `Run the MCP (Model Context Protocol) server. Requests are read from stdin
and responses written to stdout, one JSON-RPC message per line. Logs go
to stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, rootOpts, opts)
		},
	}

	cmd.Flags().StringVar(&opts.MetricsListen, "metrics-listen", "", "serve Prometheus metrics on this address (host:port)")

	return cmd
}

func runServe(cmd *cobra.Command, rootOpts *RootOptions, opts *ServeOptions) error {
	rt, err := loadApp(rootOpts, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	listen := rt.cfg.Metrics.Listen
	if opts.MetricsListen != "" {
		listen = opts.MetricsListen
	}
	if listen != "" && rt.metrics == nil {
		rt.metrics = telemetry.NewMetrics(rt.cfg.Metrics.Namespace)
	}

	if listen != "" {
		stop := serveMetrics(rt, listen)
		defer stop()
	}

	rt.logger.Info("MCP server starting",
		"version", rootOpts.Build.Version,
		"commit", rootOpts.Build.GitCommit)

	srv := server.New(rt.catalog, rt.detector,
		server.WithLogger(rt.logger),
		server.WithMetrics(rt.metrics),
		server.WithAnnotateOptions(rt.annotate),
		server.WithVersion(rootOpts.Build.Version))
	return srv.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
}

// serveMetrics exposes /metrics in the background and returns a function
// that shuts the listener down.
func serveMetrics(rt *app, addr string) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", rt.metrics.Handler())

	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		rt.logger.Info("metrics endpoint listening", "addr", addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			rt.logger.Error("metrics endpoint failed", "error", err)
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(ctx)
	}
}
