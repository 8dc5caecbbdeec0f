package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a configuration file.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault loads the config file when a path is given, otherwise
// returns validated defaults with environment overrides applied.
func LoadOrDefault(ctx context.Context, path string) (*Config, error) {
	if path != "" {
		return Load(ctx, path)
	}

	cfg := DefaultConfig()
	cfg.applyEnvironmentOverrides()
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating default config: %w", err)
	}
	return cfg, nil
}

// Validate checks a configuration for errors and compiles the stamp
// pattern. An empty export format is valid; the analyze command falls
// back to auto-detection.
func Validate(cfg *Config) error {
	if err := validateExportFormat(&cfg.ExportFormat); err != nil {
		return fmt.Errorf("export_format: %w", err)
	}

	if cfg.MediaPlaceholder == "" {
		cfg.MediaPlaceholder = DefaultMediaPlaceholder
	}

	if cfg.Analysis.TopWords < 0 {
		return errors.New("analysis.top_words: must not be negative")
	}
	if cfg.Analysis.TopUsers < 0 {
		return errors.New("analysis.top_users: must not be negative")
	}
	if cfg.Analysis.TopWords == 0 {
		cfg.Analysis.TopWords = DefaultTopWords
	}
	if cfg.Analysis.TopUsers == 0 {
		cfg.Analysis.TopUsers = DefaultTopUsers
	}

	if cfg.StopwordsFile != "" {
		if _, err := os.Stat(cfg.StopwordsFile); err != nil {
			return fmt.Errorf("stopwords_file: %w", err)
		}
	}

	return nil
}

func validateExportFormat(f *FormatConfig) error {
	if f.Pattern == "" {
		// Layout without a pattern is valid: it overrides the layout of
		// whatever format auto-detection picks (the day-first fix for
		// ambiguous exports).
		return nil
	}

	re, err := regexp.Compile(f.Pattern)
	if err != nil {
		return fmt.Errorf("invalid pattern: %w", err)
	}

	if re.NumSubexp() < 1 {
		return errors.New("pattern must have at least one capture group for the stamp")
	}

	f.compiledPattern = re

	if f.Layout == "" {
		return errors.New("layout is required when pattern is set")
	}

	return nil
}
