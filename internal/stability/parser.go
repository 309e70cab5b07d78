package stability

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/himanshoe/chartytools/internal/config"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	notSkippableReason = "Not skippable - will recompose on every parent recomposition"
	noClassReason      = "Check class definition"
	reasonSeparator    = " | "

	namedProperties = 3
	namedParams     = 2

	maxLineBytes = 1 << 20
)

var (
	classHeaderRe      = regexp.MustCompile(`^(stable|unstable|runtime)\s+(class|interface|object)\s+([\w.]+)`)
	unstablePropertyRe = regexp.MustCompile(`unstable\s+(?:va[lr]\s+)?(\w+):`)
	composableNameRe   = regexp.MustCompile(`fun\s+([\w.]+)\s*\(`)
	unstableParamRe    = regexp.MustCompile(`unstable\s+(\w+):\s*([^=\n]+)`)
)

// Parser extracts issues from a single report.
type Parser struct {
	classLookahead      int
	composableLookahead int
}

// NewParser returns a parser scanning at most classLookahead lines after a
// class header and composableLookahead lines after a composable header.
func NewParser(classLookahead, composableLookahead int) *Parser {
	if classLookahead < 1 {
		classLookahead = config.DefaultClassLookahead
	}
	if composableLookahead < 1 {
		composableLookahead = config.DefaultComposableLookahead
	}
	return &Parser{classLookahead: classLookahead, composableLookahead: composableLookahead}
}

// Parse reads a report and returns its issues in line order.
func (p *Parser) Parse(r io.Reader, module string, typ ReportType) ([]Issue, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}

	if typ == ReportClasses {
		return p.parseClasses(lines, module), nil
	}
	return p.parseComposables(lines, module), nil
}

func readLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

// lookahead returns the lines following index i, at most n of them.
func lookahead(lines []string, i, n int) []string {
	end := min(i+1+n, len(lines))
	return lines[i+1 : end]
}

func (p *Parser) parseClasses(lines []string, module string) []Issue {
	title := cases.Title(language.English)

	var issues []Issue
	for i, line := range lines {
		m := classHeaderRe.FindStringSubmatch(line)
		if m == nil || m[1] == "stable" {
			continue
		}
		stability, kind, qualified := m[1], m[2], m[3]

		var properties []string
		var runtimeLine string
		for _, raw := range lookahead(lines, i, p.classLookahead) {
			l := strings.TrimSpace(raw)
			if strings.HasPrefix(l, "}") || strings.HasPrefix(l, "class ") || strings.HasPrefix(l, "fun ") {
				break
			}
			if strings.HasPrefix(l, "unstable ") {
				if pm := unstablePropertyRe.FindStringSubmatch(l); pm != nil {
					properties = append(properties, pm[1])
				}
			}
			if strings.Contains(l, "<runtime stability>") {
				runtimeLine = l
				break
			}
		}

		var parts []string
		if len(properties) > 0 {
			parts = append(parts, "Unstable properties: "+summarize(properties, namedProperties))
		}
		if runtimeLine != "" {
			parts = append(parts, runtimeLine)
		}
		reason := noClassReason
		if len(parts) > 0 {
			reason = strings.Join(parts, reasonSeparator)
		}

		verdict := VerdictUnstable
		if stability == "runtime" {
			verdict = VerdictRuntime
		}

		issues = append(issues, Issue{
			Module:        module,
			Kind:          Kind(title.String(kind)),
			Name:          simpleName(qualified),
			QualifiedName: qualified,
			Verdict:       verdict,
			Reason:        reason,
			SourceFile:    strings.ReplaceAll(qualified, ".", "/") + ".kt",
		})
	}
	return issues
}

func (p *Parser) parseComposables(lines []string, module string) []Issue {
	var issues []Issue
	for i, line := range lines {
		if !isComposableHeader(line) {
			continue
		}
		m := composableNameRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		qualified := m[1]
		restartable := strings.Contains(line, "restartable")
		skippable := strings.Contains(line, "skippable")

		var params []string
		for _, raw := range lookahead(lines, i, p.composableLookahead) {
			l := strings.TrimSpace(raw)
			if strings.HasPrefix(l, ")") || (strings.Contains(l, "fun ") && strings.Contains(l, "restartable")) {
				break
			}
			if !strings.Contains(l, "unstable") {
				continue
			}
			if pm := unstableParamRe.FindStringSubmatch(l); pm != nil {
				params = append(params, pm[1]+": "+strings.TrimSpace(pm[2]))
			}
		}

		if len(params) == 0 && (!restartable || skippable) {
			continue
		}

		var parts []string
		if !skippable {
			parts = append(parts, notSkippableReason)
		}
		verdict := VerdictNotSkippable
		if len(params) > 0 {
			parts = append(parts, "Unstable params: "+summarize(params, namedParams))
			verdict = VerdictUnstable
		}

		issues = append(issues, Issue{
			Module:        module,
			Kind:          KindComposable,
			Name:          simpleName(qualified),
			QualifiedName: qualified,
			Verdict:       verdict,
			Reason:        strings.Join(parts, reasonSeparator),
			SourceFile:    packagePath(qualified) + ".kt",
		})
	}
	return issues
}

func isComposableHeader(line string) bool {
	return strings.Contains(line, "fun ") &&
		(strings.Contains(line, "restartable") || strings.Contains(line, "scheme"))
}

// summarize names the first n items and counts the rest.
func summarize(items []string, n int) string {
	if len(items) <= n {
		return strings.Join(items, ", ")
	}
	return fmt.Sprintf("%s (+%d more)", strings.Join(items[:n], ", "), len(items)-n)
}

func simpleName(qualified string) string {
	if i := strings.LastIndex(qualified, "."); i >= 0 {
		return qualified[i+1:]
	}
	return qualified
}

// packagePath turns com.example.Screen into com/example.
func packagePath(qualified string) string {
	if i := strings.LastIndex(qualified, "."); i >= 0 {
		qualified = qualified[:i]
	}
	return strings.ReplaceAll(qualified, ".", "/")
}

// ParseReport parses a report with the default lookahead windows.
func ParseReport(r io.Reader, module string, typ ReportType) ([]Issue, error) {
	return NewParser(config.DefaultClassLookahead, config.DefaultComposableLookahead).Parse(r, module, typ)
}
