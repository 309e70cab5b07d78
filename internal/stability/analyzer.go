package stability

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/himanshoe/chartytools/internal/config"
	ferrors "github.com/himanshoe/chartytools/internal/foundation/errors"
	"github.com/himanshoe/chartytools/internal/logfields"
	"github.com/himanshoe/chartytools/internal/metrics"
)

// Analysis is the outcome of scanning one project.
type Analysis struct {
	ProjectRoot    string
	Issues         []Issue
	ReportsScanned []string
	ReportsFailed  []string
	Duration       time.Duration
}

// Classes returns the class, interface and object issues in discovery order.
func (a *Analysis) Classes() []Issue {
	return a.filter(func(k Kind) bool { return k.IsClassLike() })
}

// Composables returns the composable issues in discovery order.
func (a *Analysis) Composables() []Issue {
	return a.filter(func(k Kind) bool { return k == KindComposable })
}

// Clean reports whether no issues were found.
func (a *Analysis) Clean() bool {
	return len(a.Issues) == 0
}

func (a *Analysis) filter(keep func(Kind) bool) []Issue {
	var out []Issue
	for _, issue := range a.Issues {
		if keep(issue.Kind) {
			out = append(out, issue)
		}
	}
	return out
}

// Analyzer finds and parses every report of a project.
type Analyzer struct {
	cfg      config.StabilityConfig
	parse    func(r io.Reader, module string, typ ReportType) ([]Issue, error)
	recorder metrics.Recorder
	logger   *slog.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithRecorder sets the metrics recorder (default metrics.NoopRecorder).
func WithRecorder(r metrics.Recorder) Option {
	return func(a *Analyzer) { a.recorder = r }
}

// WithLogger sets the logger (default slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(a *Analyzer) { a.logger = l }
}

// NewAnalyzer creates an analyzer for the given configuration.
func NewAnalyzer(cfg config.StabilityConfig, opts ...Option) *Analyzer {
	a := &Analyzer{
		cfg:      cfg,
		parse:    NewParser(cfg.ClassLookahead, cfg.ComposableLookahead).Parse,
		recorder: metrics.NoopRecorder{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze scans the configured build directories below projectRoot.
//
// A report that cannot be read or parsed is logged with a stack trace and
// contributes no issues; the remaining reports are still processed. Only a
// missing project root, an unusable build directory tree or cancellation fail
// the whole analysis.
func (a *Analyzer) Analyze(ctx context.Context, projectRoot string) (*Analysis, error) {
	start := time.Now()

	info, err := os.Stat(projectRoot)
	if err != nil || !info.IsDir() {
		return nil, ferrors.NotFoundError(fmt.Sprintf("Project root '%s' does not exist", projectRoot)).
			WithContext("path", projectRoot).
			Build()
	}

	analysis := &Analysis{ProjectRoot: projectRoot}

	for _, rel := range a.cfg.BuildDirs {
		buildDir := filepath.Join(projectRoot, filepath.FromSlash(rel))
		if _, err := os.Stat(buildDir); errors.Is(err, fs.ErrNotExist) {
			a.logger.Debug("Build directory not present", logfields.BuildDir(buildDir))
			continue
		}

		reports, err := FindReports(buildDir, a.cfg.Markers, a.cfg.ReportExtension)
		if err != nil {
			return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "scan build directory").
				Fatal().
				WithContext("path", buildDir).
				Build()
		}
		a.logger.Debug("Discovered reports", logfields.BuildDir(buildDir), logfields.Reports(len(reports)))

		for _, report := range reports {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			a.analyzeReport(analysis, report)
		}
	}

	analysis.Duration = time.Since(start)
	a.recorder.ObserveAnalysisDuration(analysis.Duration)
	a.logger.Info("Stability analysis finished",
		logfields.Path(projectRoot),
		logfields.Reports(len(analysis.ReportsScanned)),
		logfields.Issues(len(analysis.Issues)),
		logfields.DurationMS(float64(analysis.Duration.Microseconds())/1000))
	return analysis, nil
}

func (a *Analyzer) analyzeReport(analysis *Analysis, report string) {
	typ := ReportTypeFor(report)
	issues, stack, err := a.parseFile(report, typ)
	if err != nil {
		analysis.ReportsFailed = append(analysis.ReportsFailed, report)
		a.recorder.IncReportParsed(string(typ), metrics.ResultFailed)
		a.logger.Error("Error parsing report",
			logfields.Report(report),
			logfields.Error(err),
			logfields.Stack(stack))
		return
	}

	analysis.ReportsScanned = append(analysis.ReportsScanned, report)
	analysis.Issues = append(analysis.Issues, issues...)
	a.recorder.IncReportParsed(string(typ), metrics.ResultSuccess)
	for _, issue := range issues {
		a.recorder.AddIssues(string(issue.Kind), string(issue.Verdict), 1)
	}
	a.logger.Debug("Parsed report",
		logfields.Report(report),
		logfields.ReportType(string(typ)),
		logfields.Issues(len(issues)))
}

// parseFile parses one report, converting a panic in the parser into an error.
func (a *Analyzer) parseFile(path string, typ ReportType) (issues []Issue, stack []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			issues = nil
			stack = debug.Stack()
			err = ferrors.InternalError(fmt.Sprintf("panic while parsing report: %v", r)).
				WithContext("path", path).
				Build()
		}
	}()

	// #nosec G304 -- report paths come from walking the project's build directory.
	f, err := os.Open(path)
	if err != nil {
		return nil, debug.Stack(), ferrors.WrapError(err, ferrors.CategoryFileSystem, "open report").
			WithContext("path", path).
			Build()
	}
	defer func() { _ = f.Close() }()

	issues, err = a.parse(f, ModuleName(path), typ)
	if err != nil {
		return nil, debug.Stack(), ferrors.WrapError(err, ferrors.CategoryParse, "parse report").
			WithContext("path", path).
			Build()
	}
	return issues, nil, nil
}
