package stability

import (
	_ "embed"
	"fmt"
	"io"
	"strings"

	"github.com/himanshoe/chartytools/internal/config"
)

const successMessage = "✅ **All Compose components are stable!** No stability issues found.\n"

var (
	//go:embed guidance/learn_more.md
	learnMore string
	//go:embed guidance/classes.md
	classGuidance string
	//go:embed guidance/composables.md
	composableGuidance string
)

// RenderOptions controls how table cells are shortened.
type RenderOptions struct {
	// ReasonWidth is the maximum number of characters kept from a reason.
	ReasonWidth int
	// SourcePrefix is replaced by ".../" in source paths.
	// Empty disables shortening.
	SourcePrefix string
}

// DefaultRenderOptions returns the options used when no configuration is loaded.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{ReasonWidth: config.DefaultReasonWidth, SourcePrefix: config.DefaultSourcePrefix}
}

// RenderOptionsFrom builds render options from the stability configuration.
func RenderOptionsFrom(cfg config.StabilityConfig) RenderOptions {
	return RenderOptions{ReasonWidth: cfg.ReasonWidth, SourcePrefix: cfg.SourcePrefix}
}

type table struct {
	heading   string
	nameLabel string
	rule      string
	guidance  string
}

var (
	classTable = table{
		heading:   "### 📦 Unstable Classes",
		nameLabel: "Class Name",
		rule:      "|--------|------------|---------------------|-------------|-------|",
		guidance:  classGuidance,
	}
	composableTable = table{
		heading:   "### 🎨 Unstable/Non-Skippable Composables",
		nameLabel: "Function Name",
		rule:      "|--------|---------------|---------------------|-------------|-------|",
		guidance:  composableGuidance,
	}
)

// MarkdownReport renders issues as the markdown stability report.
func MarkdownReport(issues []Issue, opts RenderOptions) string {
	if len(issues) == 0 {
		return successMessage
	}

	var classes, composables []Issue
	for _, issue := range issues {
		if issue.Kind == KindComposable {
			composables = append(composables, issue)
		} else {
			classes = append(classes, issue)
		}
	}

	var b strings.Builder
	b.WriteString("## 🔍 Compose Stability Report\n\n")
	fmt.Fprintf(&b, "Found **%d** stability issues that may affect Compose recomposition performance.\n\n", len(issues))

	if len(classes) > 0 {
		writeTable(&b, classTable, classes, opts)
	}
	if len(composables) > 0 {
		writeTable(&b, composableTable, composables, opts)
	}

	b.WriteString(learnMore)
	if len(classes) > 0 {
		b.WriteString(classTable.guidance)
	}
	if len(composables) > 0 {
		b.WriteString(composableTable.guidance)
	}
	return b.String()
}

// RenderMarkdown writes the markdown stability report to w.
func RenderMarkdown(w io.Writer, issues []Issue, opts RenderOptions) error {
	_, err := io.WriteString(w, MarkdownReport(issues, opts))
	return err
}

func writeTable(b *strings.Builder, t table, issues []Issue, opts RenderOptions) {
	b.WriteString(t.heading + "\n\n")
	fmt.Fprintf(b, "| Module | %s | Full Qualified Name | Source File | Issue |\n", t.nameLabel)
	b.WriteString(t.rule + "\n")
	for _, issue := range issues {
		fmt.Fprintf(b, "| `%s` | **`%s`** | `%s` | `%s` | %s |\n",
			issue.Module,
			issue.Name,
			issue.QualifiedName,
			shortenSource(issue.SourceFile, opts.SourcePrefix),
			reasonCell(issue.Reason, opts.ReasonWidth))
	}
	b.WriteString("\n")
}

// reasonCell escapes table delimiters and cuts the reason to width characters.
func reasonCell(reason string, width int) string {
	if width < 1 {
		width = config.DefaultReasonWidth
	}
	cell := strings.TrimSpace(strings.ReplaceAll(reason, "|", `\|`))
	runes := []rune(cell)
	if len(runes) > width {
		return string(runes[:width]) + "..."
	}
	return cell
}

func shortenSource(source, prefix string) string {
	if prefix == "" {
		return source
	}
	return strings.ReplaceAll(source, prefix, ".../")
}
