package stability

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleIssues() []Issue {
	return []Issue{
		{
			Module:        "charty-classes",
			Kind:          KindClass,
			Name:          "BarData",
			QualifiedName: "com.himanshoe.charty.bar.BarData",
			Verdict:       VerdictUnstable,
			Reason:        "Unstable properties: values",
			SourceFile:    "com/himanshoe/charty/bar/BarData.kt",
		},
		{
			Module:        "charty-composables",
			Kind:          KindComposable,
			Name:          "BarChart",
			QualifiedName: "com.himanshoe.charty.bar.BarChart",
			Verdict:       VerdictNotSkippable,
			Reason:        notSkippableReason,
			SourceFile:    "com/himanshoe/charty/bar.kt",
		},
	}
}

func TestMarkdownReport_Clean(t *testing.T) {
	assert.Equal(t,
		"✅ **All Compose components are stable!** No stability issues found.\n",
		MarkdownReport(nil, DefaultRenderOptions()))
}

func TestMarkdownReport_Tables(t *testing.T) {
	report := MarkdownReport(sampleIssues(), DefaultRenderOptions())

	assert.True(t, strings.HasPrefix(report,
		"## 🔍 Compose Stability Report\n\n"+
			"Found **2** stability issues that may affect Compose recomposition performance.\n\n"))

	assert.Contains(t, report,
		"### 📦 Unstable Classes\n\n"+
			"| Module | Class Name | Full Qualified Name | Source File | Issue |\n"+
			"|--------|------------|---------------------|-------------|-------|\n"+
			"| `charty-classes` | **`BarData`** | `com.himanshoe.charty.bar.BarData` | `.../charty/bar/BarData.kt` | Unstable properties: values |\n\n")

	assert.Contains(t, report,
		"### 🎨 Unstable/Non-Skippable Composables\n\n"+
			"| Module | Function Name | Full Qualified Name | Source File | Issue |\n"+
			"|--------|---------------|---------------------|-------------|-------|\n"+
			"| `charty-composables` | **`BarChart`** | `com.himanshoe.charty.bar.BarChart` | `.../charty/bar.kt` | Not skippable - will recompose on every parent recomposition |\n\n")

	assert.Contains(t, report, "### 📚 Learn More")
	assert.Contains(t, report, "(https://developer.android.com/jetpack/compose/performance)")
	assert.Contains(t, report, "#### For Unstable Classes:")
	assert.Contains(t, report, "#### For Unstable Composables:")
	assert.Less(t, strings.Index(report, "Unstable Classes"), strings.Index(report, "Non-Skippable Composables"))
	assert.Less(t, strings.Index(report, "Learn More"), strings.Index(report, "How to Fix"))
}

func TestMarkdownReport_OmitsEmptyPartition(t *testing.T) {
	report := MarkdownReport(sampleIssues()[1:], DefaultRenderOptions())

	assert.NotContains(t, report, "### 📦 Unstable Classes")
	assert.NotContains(t, report, "#### For Unstable Classes:")
	assert.Contains(t, report, "#### For Unstable Composables:")
	assert.True(t, strings.HasSuffix(report, "- Consider state hoisting\n\n"))
}

func TestMarkdownReport_SourcePrefixDisabled(t *testing.T) {
	report := MarkdownReport(sampleIssues()[:1], RenderOptions{ReasonWidth: 150})
	assert.Contains(t, report, "`com/himanshoe/charty/bar/BarData.kt`")
}

func TestReasonCell(t *testing.T) {
	long := strings.Repeat("é", 200)

	tests := []struct {
		name   string
		reason string
		width  int
		want   string
	}{
		{name: "short", reason: "Check class definition", width: 150, want: "Check class definition"},
		{name: "escapes pipes", reason: "a | b", width: 150, want: `a \| b`},
		{name: "trims", reason: "  padded  ", width: 150, want: "padded"},
		{name: "truncates runes", reason: long, width: 150, want: strings.Repeat("é", 150) + "..."},
		{name: "exact width kept", reason: "abcd", width: 4, want: "abcd"},
		{name: "zero width uses default", reason: strings.Repeat("x", 151), width: 0, want: strings.Repeat("x", 150) + "..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reasonCell(tt.reason, tt.width))
		})
	}
}

func TestRenderHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderHTML(&buf, sampleIssues(), DefaultRenderOptions()))

	html := buf.String()
	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "<table>")
	assert.Contains(t, html, "<th>Class Name</th>")
	assert.Contains(t, html, `<a href="https://developer.android.com/jetpack/compose/performance">`)
	assert.True(t, strings.HasSuffix(html, "</html>\n"))
}

func TestRenderJSON(t *testing.T) {
	analysis := &Analysis{
		ProjectRoot:    "/work/charty",
		Issues:         sampleIssues(),
		ReportsScanned: []string{"a-classes.txt", "a-composables.txt"},
		ReportsFailed:  []string{"broken-classes.txt"},
		Duration:       1500 * time.Millisecond,
	}

	var buf bytes.Buffer
	require.NoError(t, RenderJSON(&buf, analysis))

	var got JSONReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.False(t, got.Clean)
	assert.Equal(t, 2, got.IssueCount)
	assert.Equal(t, 1, got.ClassCount)
	assert.Equal(t, 1, got.ComposableCount)
	assert.Equal(t, 2, got.ReportsScanned)
	assert.Equal(t, 1, got.ReportsFailed)
	assert.Equal(t, int64(1500), got.DurationMillis)
	assert.Equal(t, []string{"broken-classes.txt"}, got.FailedReportList)
	assert.Equal(t, "Not Skippable", string(got.Issues[1].Verdict))
}

func TestRenderJSON_CleanHasEmptyIssueList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderJSON(&buf, &Analysis{ProjectRoot: "."}))
	assert.Contains(t, buf.String(), `"issues": []`)
	assert.Contains(t, buf.String(), `"clean": true`)
}

func TestNewFormatter(t *testing.T) {
	analysis := &Analysis{Issues: sampleIssues()}

	tests := []struct {
		format string
		prefix string
	}{
		{format: "", prefix: "## 🔍"},
		{format: "markdown", prefix: "## 🔍"},
		{format: "MD", prefix: "## 🔍"},
		{format: "json", prefix: "{"},
		{format: "html", prefix: "<!DOCTYPE html>"},
	}
	for _, tt := range tests {
		t.Run("format "+tt.format, func(t *testing.T) {
			f, err := NewFormatter(tt.format, DefaultRenderOptions())
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, f.Format(&buf, analysis))
			assert.True(t, strings.HasPrefix(buf.String(), tt.prefix))
		})
	}

	_, err := NewFormatter("xml", DefaultRenderOptions())
	require.Error(t, err)
}
