package commands

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/himanshoe/chartytools/internal/config"
	ferrors "github.com/himanshoe/chartytools/internal/foundation/errors"
	"github.com/himanshoe/chartytools/internal/metrics"
	"github.com/himanshoe/chartytools/internal/version"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// Global carries state shared by every command.
type Global struct {
	Logger *slog.Logger
	// Out receives progress lines and reports written to stdout.
	Out io.Writer
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path (default .chartytools.yaml, optional)" type:"path"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Docs      DocsCmd      `cmd:"" help:"Create documentation stubs for every chart in the catalog"`
	Stability StabilityCmd `cmd:"" help:"Summarize Compose compiler stability reports"`
	Init      InitCmd      `cmd:"" help:"Write a configuration file populated with the defaults"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(NewLogger(os.Stderr, level))
	return nil
}

// NewLogger returns a tint logger writing to f, coloured only on terminals.
func NewLogger(f *os.File, level slog.Level) *slog.Logger {
	return slog.New(tint.NewHandler(f, &tint.Options{
		NoColor:    !isatty.IsTerminal(f.Fd()),
		TimeFormat: time.Kitchen,
		Level:      level,
	}))
}

// NewParser builds the kong parser for cli. ctx is bound for commands that
// run cancellable work.
func NewParser(ctx context.Context, cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	base := []kong.Option{
		kong.Name("chartytools"),
		kong.Description("Maintenance tooling for the Charty chart library"),
		kong.Vars{"version": version.String()},
		kong.BindTo(ctx, (*context.Context)(nil)),
	}
	return kong.New(cli, append(base, options...)...)
}

// LoadConfig loads the configuration named by --config. Without the flag the
// default file is optional.
func (c *CLI) LoadConfig() (*config.Config, error) {
	path, required := c.Config, true
	if path == "" {
		path, required = config.DefaultPath, false
	}

	cfg, err := config.Load(path, required)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to load configuration").
			WithContext("path", path).
			Build()
	}
	return cfg, nil
}

func (g *Global) out() io.Writer {
	if g == nil || g.Out == nil {
		return os.Stdout
	}
	return g.Out
}

// newRecorder returns a Prometheus recorder when a metrics file is requested.
func newRecorder(metricsFile string) (metrics.Recorder, *metrics.PrometheusRecorder) {
	if metricsFile == "" {
		return metrics.NoopRecorder{}, nil
	}
	prom := metrics.NewPrometheusRecorder(nil)
	return prom, prom
}

func writeMetrics(prom *metrics.PrometheusRecorder, path string) error {
	if prom == nil {
		return nil
	}
	if err := prom.WriteTextfile(path); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "write metrics file").
			Fatal().
			WithContext("path", path).
			Build()
	}
	slog.Debug("Wrote metrics", "path", path)
	return nil
}

// isColorSupported checks if w is a terminal that accepts colour output.
func isColorSupported(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}

	// Check NO_COLOR environment variable (https://no-color.org/)
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	term := os.Getenv("TERM")
	return term != "dumb" && term != ""
}
