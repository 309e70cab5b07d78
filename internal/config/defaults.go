package config

// Default values. They reproduce the layout the Charty build produces.
const (
	DefaultDocsDir             = "docs/charts"
	DefaultReportExtension     = ".txt"
	DefaultClassLookahead      = 50
	DefaultComposableLookahead = 30
	DefaultReasonWidth         = 150
	DefaultSourcePrefix        = "com/himanshoe/"
)

// DefaultBuildDirs are the Gradle module build directories scanned for reports.
func DefaultBuildDirs() []string {
	return []string{"charty/build", "composeApp/build"}
}

// DefaultMarkers are the directory name fragments that identify compiler report output.
func DefaultMarkers() []string {
	return []string{"compose_reports", "compose_metrics"}
}

// Default returns a configuration populated with every default.
func Default() *Config {
	return &Config{
		Docs: DocsConfig{
			BaseDir: DefaultDocsDir,
		},
		Stability: StabilityConfig{
			BuildDirs:           DefaultBuildDirs(),
			Markers:             DefaultMarkers(),
			ReportExtension:     DefaultReportExtension,
			ClassLookahead:      DefaultClassLookahead,
			ComposableLookahead: DefaultComposableLookahead,
			ReasonWidth:         DefaultReasonWidth,
			SourcePrefix:        DefaultSourcePrefix,
		},
	}
}

// applyDefaults fills zero values left by a partial configuration file.
func applyDefaults(cfg *Config) {
	if cfg.Docs.BaseDir == "" {
		cfg.Docs.BaseDir = DefaultDocsDir
	}

	s := &cfg.Stability
	if len(s.BuildDirs) == 0 {
		s.BuildDirs = DefaultBuildDirs()
	}
	if len(s.Markers) == 0 {
		s.Markers = DefaultMarkers()
	}
	if s.ReportExtension == "" {
		s.ReportExtension = DefaultReportExtension
	}
	if s.ClassLookahead == 0 {
		s.ClassLookahead = DefaultClassLookahead
	}
	if s.ComposableLookahead == 0 {
		s.ComposableLookahead = DefaultComposableLookahead
	}
	if s.ReasonWidth == 0 {
		s.ReasonWidth = DefaultReasonWidth
	}
}
