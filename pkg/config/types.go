// Package config provides configuration loading and validation for ChatScope.
package config

import "regexp"

// Config is the root configuration structure loaded from YAML.
type Config struct {
	Transcripts      []string        `yaml:"transcripts"`
	ExportFormat     FormatConfig    `yaml:"export_format,omitempty"`
	MediaPlaceholder string          `yaml:"media_placeholder,omitempty"`
	StopwordsFile    string          `yaml:"stopwords_file,omitempty"`
	Analysis         AnalysisConfig  `yaml:"analysis,omitempty"`
	Sentiment        SentimentConfig `yaml:"sentiment,omitempty"`
}

// FormatConfig defines how entry stamps are matched and parsed.
// When Pattern is empty, the analyze command auto-detects the export
// format from the transcript itself.
type FormatConfig struct {
	// Pattern is a regex matching a full entry stamp, including the
	// trailing separator. Must contain at least one capture group for
	// the date-time portion.
	Pattern string `yaml:"pattern,omitempty"`

	// Layout is the Go time layout string for parsing the captured
	// stamp. See https://pkg.go.dev/time#pkg-constants for format.
	Layout string `yaml:"layout,omitempty"`

	// compiledPattern is the pre-compiled regex (populated during validation).
	compiledPattern *regexp.Regexp
}

// CompiledPattern returns the pre-compiled regex pattern.
func (f *FormatConfig) CompiledPattern() *regexp.Regexp {
	return f.compiledPattern
}

// IsZero reports whether no explicit format was configured.
func (f *FormatConfig) IsZero() bool {
	return f.Pattern == ""
}

// AnalysisConfig caps the ranked result tables.
type AnalysisConfig struct {
	// TopWords is the common-words result cap.
	TopWords int `yaml:"top_words,omitempty"`

	// TopUsers is the per-class contribution/top-author cap.
	TopUsers int `yaml:"top_users,omitempty"`
}

// SentimentConfig controls the sentiment scoring pass.
type SentimentConfig struct {
	// Enabled toggles VADER scoring. Disabled leaves every row neutral
	// with zero scores.
	Enabled bool `yaml:"enabled"`
}
