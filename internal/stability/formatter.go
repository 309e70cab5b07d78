package stability

import (
	"fmt"
	"io"
	"strings"
)

// Output formats accepted by NewFormatter.
const (
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
	FormatHTML     = "html"
)

// Formatter writes an analysis in one output format.
type Formatter interface {
	Format(w io.Writer, analysis *Analysis) error
}

// MarkdownFormatter writes the markdown report.
type MarkdownFormatter struct {
	opts RenderOptions
}

// Format implements Formatter.
func (f *MarkdownFormatter) Format(w io.Writer, analysis *Analysis) error {
	return RenderMarkdown(w, analysis.Issues, f.opts)
}

// JSONFormatter writes the JSON summary.
type JSONFormatter struct{}

// Format implements Formatter.
func (f *JSONFormatter) Format(w io.Writer, analysis *Analysis) error {
	return RenderJSON(w, analysis)
}

// HTMLFormatter writes the report as an HTML page.
type HTMLFormatter struct {
	opts RenderOptions
}

// Format implements Formatter.
func (f *HTMLFormatter) Format(w io.Writer, analysis *Analysis) error {
	return RenderHTML(w, analysis.Issues, f.opts)
}

// NewFormatter returns the formatter for format (case-insensitive).
func NewFormatter(format string, opts RenderOptions) (Formatter, error) {
	switch strings.ToLower(format) {
	case "", FormatMarkdown, "md":
		return &MarkdownFormatter{opts: opts}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	case FormatHTML:
		return &HTMLFormatter{opts: opts}, nil
	default:
		return nil, fmt.Errorf("unknown report format %q", format)
	}
}
