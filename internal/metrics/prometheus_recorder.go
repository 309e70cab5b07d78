package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "chartytools"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	reg              *prom.Registry
	reportsParsed    *prom.CounterVec
	issues           *prom.CounterVec
	analysisDuration prom.Histogram
	docPages         *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers the metrics on reg (a fresh registry when nil).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		reg: reg,
		reportsParsed: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "stability_reports_total",
			Help:      "Compose compiler reports parsed, by report type and result",
		}, []string{"report_type", "result"}),
		issues: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "stability_issues_total",
			Help:      "Stability issues found, by component kind and verdict",
		}, []string{"kind", "verdict"}),
		analysisDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "stability_analysis_duration_seconds",
			Help:      "Duration of a full stability analysis",
			Buckets:   prom.DefBuckets,
		}),
		docPages: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "doc_pages_total",
			Help:      "Doc stub pages handled, by outcome",
		}, []string{"outcome"}),
	}
	reg.MustRegister(pr.reportsParsed, pr.issues, pr.analysisDuration, pr.docPages)
	return pr
}

// Registry returns the registry the metrics are registered on.
func (p *PrometheusRecorder) Registry() *prom.Registry {
	return p.reg
}

func (p *PrometheusRecorder) IncReportParsed(reportType string, result ResultLabel) {
	if p == nil {
		return
	}
	p.reportsParsed.WithLabelValues(reportType, string(result)).Inc()
}

func (p *PrometheusRecorder) AddIssues(kind, verdict string, n int) {
	if p == nil || n <= 0 {
		return
	}
	p.issues.WithLabelValues(kind, verdict).Add(float64(n))
}

func (p *PrometheusRecorder) ObserveAnalysisDuration(d time.Duration) {
	if p == nil {
		return
	}
	p.analysisDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncDocPage(outcome PageOutcome) {
	if p == nil {
		return
	}
	p.docPages.WithLabelValues(string(outcome)).Inc()
}

// WriteTextfile writes the current metric values to path in the text exposition format.
func (p *PrometheusRecorder) WriteTextfile(path string) error {
	return prom.WriteToTextfile(path, p.reg)
}
