package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPath       = "path"
	KeyReport     = "report"
	KeyModule     = "module"
	KeyReportType = "report_type"
	KeyBuildDir   = "build_dir"
	KeyCategory   = "category"
	KeyIssues     = "issues"
	KeyReports    = "reports"
	KeyCreated    = "created"
	KeySkipped    = "skipped"
	KeyDurationMS = "duration_ms"
	KeyStack      = "stack"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Path(p string) slog.Attr          { return slog.String(KeyPath, p) }
func Report(r string) slog.Attr        { return slog.String(KeyReport, r) }
func Module(m string) slog.Attr        { return slog.String(KeyModule, m) }
func ReportType(t string) slog.Attr    { return slog.String(KeyReportType, t) }
func BuildDir(d string) slog.Attr      { return slog.String(KeyBuildDir, d) }
func Category(c string) slog.Attr      { return slog.String(KeyCategory, c) }
func Issues(n int) slog.Attr           { return slog.Int(KeyIssues, n) }
func Reports(n int) slog.Attr          { return slog.Int(KeyReports, n) }
func Created(n int) slog.Attr          { return slog.Int(KeyCreated, n) }
func Skipped(n int) slog.Attr          { return slog.Int(KeySkipped, n) }
func DurationMS(ms float64) slog.Attr  { return slog.Float64(KeyDurationMS, ms) }
func Stack(trace []byte) slog.Attr     { return slog.String(KeyStack, string(trace)) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
