package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ironsheep/tokenorder/internal/config"
	"github.com/ironsheep/tokenorder/internal/detection"
	"github.com/ironsheep/tokenorder/internal/imaging"
	"github.com/ironsheep/tokenorder/internal/menu"
	"github.com/ironsheep/tokenorder/internal/order"
	"github.com/ironsheep/tokenorder/internal/telemetry"
)

// BuildInfo is stamped into the binary by ldflags.
type BuildInfo struct {
	Version   string
	BuildTime string
	GitCommit string
}

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	LogLevel   string
	Build      BuildInfo
}

// NewRootCommand creates the root command for the tokenorder CLI.
func NewRootCommand(info BuildInfo) *cobra.Command {
	opts := &RootOptions{Build: info}

	cmd := &cobra.Command{
		Use:   "tokenorder",
		Short: "Read restaurant orders from photos of colored tokens",
		Long: `tokenorder reads a photo of colored, shaped tokens as a restaurant order.

A token's color picks the menu category (green starter, yellow snack,
orange main course, blue dessert) and its shape picks the dish (triangle,
rectangle, pentagon). The order is validated, priced and confirmed.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to a YAML config file")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level (debug|info|warn|error); overrides the config")

	// Add subcommands
	cmd.AddCommand(NewOrderCommand(opts))
	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewMenuCommand(opts))
	cmd.AddCommand(NewVersionCommand(opts))

	return cmd
}

// Execute runs the CLI with args and returns the process exit code. Errors
// not already shown to the user are printed to stderr.
func Execute(ctx context.Context, info BuildInfo, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := NewRootCommand(info)
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

// errReported marks failures whose message the command already printed.
var errReported = errors.New("error already reported")

// app is everything a command needs once config is loaded.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	catalog  *menu.Catalog
	detector *detection.Detector
	annotate imaging.AnnotateOptions
	metrics  *telemetry.Metrics
}

func loadApp(opts *RootOptions, logOut io.Writer) (*app, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}

	logger, err := telemetry.NewLogger(cfg.Log, logOut)
	if err != nil {
		return nil, err
	}

	catalog, err := cfg.Catalog()
	if err != nil {
		return nil, fmt.Errorf("failed to build menu: %w", err)
	}
	detOpts, err := cfg.DetectorOptions()
	if err != nil {
		return nil, fmt.Errorf("failed to build detector options: %w", err)
	}
	detector, err := detection.NewDetector(detOpts, logger)
	if err != nil {
		return nil, err
	}
	annotate, err := cfg.AnnotateOptions()
	if err != nil {
		return nil, err
	}

	rt := &app{
		cfg:      cfg,
		logger:   logger,
		catalog:  catalog,
		detector: detector,
		annotate: annotate,
	}
	if cfg.Metrics.Enabled {
		rt.metrics = telemetry.NewMetrics(cfg.Metrics.Namespace)
	}
	return rt, nil
}

func (rt *app) regionDetector() order.RegionDetector {
	if rt.metrics != nil {
		return rt.metrics.InstrumentDetector(rt.detector)
	}
	return rt.detector
}

func (rt *app) flowOptions() []order.FlowOption {
	opts := []order.FlowOption{order.WithLogger(rt.logger)}
	if rt.metrics != nil {
		opts = append(opts, order.WithRecorder(rt.metrics))
	}
	return opts
}
