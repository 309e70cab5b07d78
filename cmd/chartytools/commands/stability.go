package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	ferrors "github.com/himanshoe/chartytools/internal/foundation/errors"
	"github.com/himanshoe/chartytools/internal/stability"
)

// StabilityCmd implements the 'stability' command.
type StabilityCmd struct {
	ProjectRoot string `arg:"" name:"project_root" help:"Root of the Gradle project whose build directories hold the reports"`
	OutputFile  string `arg:"" name:"output_file" optional:"" help:"Write the report to this file instead of stdout"`

	Format      string `short:"f" default:"markdown" enum:"markdown,json,html" help:"Report format (markdown, json or html)"`
	MetricsFile string `name:"metrics-file" help:"Write Prometheus metrics in text format to this file" type:"path"`
	Quiet       bool   `short:"q" help:"Only print the report, no progress lines"`
}

// Run analyzes the reports and fails with a gate error when any issue is found,
// which the error adapter turns into exit status 1.
func (s *StabilityCmd) Run(ctx context.Context, g *Global, root *CLI) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}

	formatter, err := stability.NewFormatter(s.Format, stability.RenderOptionsFrom(cfg.Stability))
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryValidation, "invalid --format").Build()
	}

	out := g.out()
	s.progress(out, "Analyzing Compose stability reports in %s...\n", s.ProjectRoot)

	recorder, prom := newRecorder(s.MetricsFile)
	analysis, err := stability.NewAnalyzer(cfg.Stability, stability.WithRecorder(recorder)).Analyze(ctx, s.ProjectRoot)
	if err != nil {
		return err
	}
	if err := writeMetrics(prom, s.MetricsFile); err != nil {
		return err
	}

	s.progress(out, "Found %d stability issues\n", len(analysis.Issues))

	if s.OutputFile != "" {
		if err := writeReportFile(s.OutputFile, formatter, analysis); err != nil {
			return err
		}
		s.progress(out, "Report written to %s\n", s.OutputFile)
	} else {
		_, _ = fmt.Fprintln(out)
		if err := formatter.Format(out, analysis); err != nil {
			return ferrors.WrapError(err, ferrors.CategoryRender, "render report").Fatal().Build()
		}
		_, _ = fmt.Fprintln(out)
	}

	if !analysis.Clean() {
		return ferrors.GateError(fmt.Sprintf("%d stability issues found", len(analysis.Issues))).
			WithContext("path", s.ProjectRoot).
			Build()
	}
	return nil
}

func (s *StabilityCmd) progress(w io.Writer, format string, args ...any) {
	if s.Quiet {
		return
	}
	_, _ = fmt.Fprintf(w, format, args...)
}

func writeReportFile(path string, formatter stability.Formatter, analysis *stability.Analysis) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return ferrors.WrapError(err, ferrors.CategoryFileSystem, "create report directory").
				Fatal().
				WithContext("path", dir).
				Build()
		}
	}

	// #nosec G304 -- output path is supplied by the operator.
	f, err := os.Create(path)
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "create report file").
			Fatal().
			WithContext("path", path).
			Build()
	}

	if err := formatter.Format(f, analysis); err != nil {
		_ = f.Close()
		return ferrors.WrapError(err, ferrors.CategoryRender, "write report").
			Fatal().
			WithContext("path", path).
			Build()
	}
	if err := f.Close(); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "close report file").
			Fatal().
			WithContext("path", path).
			Build()
	}
	return nil
}
