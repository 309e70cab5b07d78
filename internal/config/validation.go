package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks a fully defaulted configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("configuration is nil")
	}
	if strings.TrimSpace(cfg.Docs.BaseDir) == "" {
		return errors.New("docs.base_dir must not be empty")
	}

	s := cfg.Stability
	for _, dir := range s.BuildDirs {
		if strings.TrimSpace(dir) == "" {
			return errors.New("stability.build_dirs must not contain empty entries")
		}
	}
	for _, m := range s.Markers {
		if strings.TrimSpace(m) == "" {
			return errors.New("stability.markers must not contain empty entries")
		}
	}
	if !strings.HasPrefix(s.ReportExtension, ".") {
		return fmt.Errorf("stability.report_extension must start with a dot, got %q", s.ReportExtension)
	}
	if s.ClassLookahead < 1 {
		return fmt.Errorf("stability.class_lookahead must be positive, got %d", s.ClassLookahead)
	}
	if s.ComposableLookahead < 1 {
		return fmt.Errorf("stability.composable_lookahead must be positive, got %d", s.ComposableLookahead)
	}
	if s.ReasonWidth < 4 {
		return fmt.Errorf("stability.reason_width must be at least 4, got %d", s.ReasonWidth)
	}
	return nil
}
