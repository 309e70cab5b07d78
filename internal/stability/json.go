package stability

import (
	"encoding/json"
	"io"
)

// JSONReport is the machine readable form of an Analysis.
type JSONReport struct {
	ProjectRoot      string   `json:"project_root"`
	Clean            bool     `json:"clean"`
	IssueCount       int      `json:"issue_count"`
	ClassCount       int      `json:"class_count"`
	ComposableCount  int      `json:"composable_count"`
	ReportsScanned   int      `json:"reports_scanned"`
	ReportsFailed    int      `json:"reports_failed"`
	DurationMillis   int64    `json:"duration_ms"`
	Issues           []Issue  `json:"issues"`
	FailedReportList []string `json:"failed_reports,omitempty"`
}

// RenderJSON writes a JSON summary of the analysis to w.
func RenderJSON(w io.Writer, analysis *Analysis) error {
	out := JSONReport{
		ProjectRoot:      analysis.ProjectRoot,
		Clean:            analysis.Clean(),
		IssueCount:       len(analysis.Issues),
		ClassCount:       len(analysis.Classes()),
		ComposableCount:  len(analysis.Composables()),
		ReportsScanned:   len(analysis.ReportsScanned),
		ReportsFailed:    len(analysis.ReportsFailed),
		DurationMillis:   analysis.Duration.Milliseconds(),
		Issues:           analysis.Issues,
		FailedReportList: analysis.ReportsFailed,
	}
	if out.Issues == nil {
		out.Issues = []Issue{}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
