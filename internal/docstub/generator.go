// Package docstub writes placeholder documentation pages for every chart in the catalog.
//
// Generation is idempotent: a page that already exists is reported and left
// untouched, so maintainers can edit stubs in place and re-run the generator
// after new charts are added to the catalog.
package docstub

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/himanshoe/chartytools/internal/catalog"
	ferrors "github.com/himanshoe/chartytools/internal/foundation/errors"
	"github.com/himanshoe/chartytools/internal/frontmatter"
	"github.com/himanshoe/chartytools/internal/logfields"
	"github.com/himanshoe/chartytools/internal/metrics"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Result lists the pages created and skipped by one run.
type Result struct {
	Created []string
	Skipped []string
}

// Generator renders and writes chart pages below a base directory.
type Generator struct {
	baseDir     string
	out         io.Writer
	frontmatter bool
	dryRun      bool
	colorize    bool
	recorder    metrics.Recorder
}

// Option configures a Generator.
type Option func(*Generator)

// WithOutput sets the writer progress lines are printed to (default os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(g *Generator) { g.out = w }
}

// WithFrontmatter prepends a YAML front matter block to newly created pages.
func WithFrontmatter(enabled bool) Option {
	return func(g *Generator) { g.frontmatter = enabled }
}

// WithDryRun reports what would be created without touching the filesystem.
func WithDryRun(enabled bool) Option {
	return func(g *Generator) { g.dryRun = enabled }
}

// WithColor colours progress lines.
func WithColor(enabled bool) Option {
	return func(g *Generator) { g.colorize = enabled }
}

// WithRecorder sets the metrics recorder (default metrics.NoopRecorder).
func WithRecorder(r metrics.Recorder) Option {
	return func(g *Generator) { g.recorder = r }
}

// NewGenerator creates a generator writing below baseDir.
func NewGenerator(baseDir string, opts ...Option) *Generator {
	g := &Generator{baseDir: baseDir, out: os.Stdout, recorder: metrics.NoopRecorder{}}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate ensures a page exists for every entry.
//
// Filesystem failures abort the run; pages written before the failure stay in place.
func (g *Generator) Generate(entries []catalog.Entry) (*Result, error) {
	result := &Result{}

	for _, entry := range entries {
		categoryDir := filepath.Join(g.baseDir, entry.Category)
		if !g.dryRun {
			if err := os.MkdirAll(categoryDir, dirPerm); err != nil {
				return result, ferrors.WrapError(err, ferrors.CategoryFileSystem, "create category directory").
					Fatal().
					WithContext("path", categoryDir).
					Build()
			}
		}

		target := filepath.Join(categoryDir, entry.FileName)
		exists, err := fileExists(target)
		if err != nil {
			return result, ferrors.WrapError(err, ferrors.CategoryFileSystem, "inspect doc page").
				Fatal().
				WithContext("path", target).
				Build()
		}
		if exists {
			g.skip(result, target)
			continue
		}

		content, err := g.render(entry)
		if err != nil {
			return result, err
		}

		if g.dryRun {
			result.Created = append(result.Created, target)
			g.printf(color.FgCyan, "Would create %s\n", target)
			continue
		}

		created, err := writeExclusive(target, content)
		if err != nil {
			return result, ferrors.WrapError(err, ferrors.CategoryFileSystem, "write doc page").
				Fatal().
				WithContext("path", target).
				Build()
		}
		if !created {
			// Another writer got there between the existence check and the create.
			g.skip(result, target)
			continue
		}

		result.Created = append(result.Created, target)
		g.recorder.IncDocPage(metrics.PageCreated)
		slog.Debug("Created doc page", logfields.Path(target), logfields.Category(entry.Category))
		g.printf(color.FgGreen, "Created %s\n", target)
	}

	g.printf(color.Reset, "Done!\n")
	slog.Info("Doc stub generation finished",
		logfields.Path(g.baseDir),
		logfields.Created(len(result.Created)),
		logfields.Skipped(len(result.Skipped)))
	return result, nil
}

func (g *Generator) render(entry catalog.Entry) ([]byte, error) {
	body, err := RenderPage(entry)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryRender, "render doc page").
			Fatal().
			WithContext("page", entry.RelativePath()).
			Build()
	}
	if !g.frontmatter {
		return []byte(body), nil
	}

	fields := map[string]any{
		"title":       entry.Title,
		"description": entry.Description,
		"category":    entry.Category,
	}
	doc, err := frontmatter.Stamp(fields, []byte(body))
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryRender, "build page front matter").
			Fatal().
			WithContext("page", entry.RelativePath()).
			Build()
	}
	return doc, nil
}

func (g *Generator) skip(result *Result, target string) {
	result.Skipped = append(result.Skipped, target)
	g.recorder.IncDocPage(metrics.PageSkipped)
	g.printf(color.FgYellow, "Skipping %s (already exists)\n", target)
}

func (g *Generator) printf(attr color.Attribute, format string, args ...any) {
	if g.colorize && attr != color.Reset {
		c := color.New(attr)
		c.EnableColor()
		_, _ = c.Fprintf(g.out, format, args...)
		return
	}
	_, _ = fmt.Fprintf(g.out, format, args...)
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}

// writeExclusive creates path with content, never replacing an existing file.
// It reports created=false when the file appeared concurrently.
func writeExclusive(path string, content []byte) (bool, error) {
	// #nosec G304 -- path is built from the static catalog below the configured docs dir.
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return false, nil
		}
		return false, err
	}

	if _, err := file.Write(content); err != nil {
		_ = file.Close()
		return false, err
	}
	return true, file.Close()
}
