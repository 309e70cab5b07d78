// Package config loads the optional chartytools configuration file.
//
// Every setting has a default matching the layout of the Charty repository, so
// running without a configuration file is the normal case.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file looked up when --config is not given.
const DefaultPath = ".chartytools.yaml"

// Config represents the application configuration.
type Config struct {
	Docs      DocsConfig      `yaml:"docs"`
	Stability StabilityConfig `yaml:"stability"`
}

// DocsConfig configures the doc-stub generator.
type DocsConfig struct {
	// BaseDir is the directory chart pages are written under, one sub-directory per category.
	BaseDir string `yaml:"base_dir"`
	// Frontmatter prepends YAML front matter (title, description, uid, fingerprint) to new pages.
	Frontmatter bool `yaml:"frontmatter"`
}

// StabilityConfig configures the Compose stability report analyzer.
type StabilityConfig struct {
	BuildDirs           []string `yaml:"build_dirs"`           // relative to the project root
	Markers             []string `yaml:"markers"`              // directory substrings identifying report output
	ReportExtension     string   `yaml:"report_extension"`     // e.g. ".txt"
	ClassLookahead      int      `yaml:"class_lookahead"`      // lines scanned after a class header
	ComposableLookahead int      `yaml:"composable_lookahead"` // lines scanned after a composable header
	ReasonWidth         int      `yaml:"reason_width"`         // rendered reason cells are cut at this many characters
	SourcePrefix        string   `yaml:"source_prefix"`        // package path shortened to ".../" in the report
}

// Load reads configuration from configPath.
//
// A missing file yields the defaults unless required is set. Environment
// variables referenced as ${VAR} in the file are expanded after .env files
// have been loaded, and CHARTYTOOLS_* overrides are applied last.
func Load(configPath string, required bool) (*Config, error) {
	if loaded, err := loadEnvFile(); err == nil {
		slog.Debug("Loaded environment variables", "path", loaded)
	}

	cfg := Default()

	data, err := os.ReadFile(configPath) // #nosec G304 -- path is supplied by the operator
	switch {
	case errors.Is(err, fs.ErrNotExist) && !required:
		slog.Debug("No configuration file, using defaults", "path", configPath)
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	applyEnvOverrides(cfg)
	applyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Init creates a new configuration file populated with the defaults.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	data, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
