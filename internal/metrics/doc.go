// Package metrics provides run metrics for the chartytools commands.
//
// Components receive a Recorder and default to NoopRecorder, so metrics cost
// nothing unless requested:
//
//	analyzer := stability.NewAnalyzer(cfg.Stability) // NoopRecorder
//	reg := prom.NewRegistry()
//	analyzer = stability.NewAnalyzer(cfg.Stability, stability.WithRecorder(metrics.NewPrometheusRecorder(reg)))
//
// The CLI has no long-running process to scrape, so metrics are exported with
// WriteTextfile in the node_exporter textfile collector format, which CI jobs
// can pick up as an artifact.
package metrics
