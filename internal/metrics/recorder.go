package metrics

import "time"

// ResultLabel enumerates per-report parse outcomes.
type ResultLabel string

const (
	ResultSuccess ResultLabel = "success"
	ResultFailed  ResultLabel = "failed"
)

// PageOutcome enumerates doc-stub generator outcomes per page.
type PageOutcome string

const (
	PageCreated PageOutcome = "created"
	PageSkipped PageOutcome = "skipped"
)

// Recorder defines observability hooks for both commands.
type Recorder interface {
	IncReportParsed(reportType string, result ResultLabel)
	AddIssues(kind, verdict string, n int)
	ObserveAnalysisDuration(d time.Duration)
	IncDocPage(outcome PageOutcome)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) IncReportParsed(string, ResultLabel)  {}
func (NoopRecorder) AddIssues(string, string, int)        {}
func (NoopRecorder) ObserveAnalysisDuration(time.Duration) {}
func (NoopRecorder) IncDocPage(PageOutcome)               {}
