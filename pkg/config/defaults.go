package config

import "os"

// Default values for configuration.
const (
	DefaultStampPattern     = `(?m)^(\d{1,2}/\d{1,2}/\d{2}, \d{1,2}:\d{2} [ap]m) - `
	DefaultStampLayout      = "1/2/06, 3:04 pm"
	DefaultMediaPlaceholder = "<Media omitted>"
	DefaultTopWords         = 20
	DefaultTopUsers         = 10
)

// Environment variable names.
const (
	EnvStampLayout   = "CHATSCOPE_STAMP_LAYOUT"
	EnvStopwordsFile = "CHATSCOPE_STOPWORDS_FILE"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Transcripts:      []string{},
		MediaPlaceholder: DefaultMediaPlaceholder,
		Analysis: AnalysisConfig{
			TopWords: DefaultTopWords,
			TopUsers: DefaultTopUsers,
		},
		Sentiment: SentimentConfig{Enabled: true},
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if layout := os.Getenv(EnvStampLayout); layout != "" {
		c.ExportFormat.Layout = layout
	}
	if path := os.Getenv(EnvStopwordsFile); path != "" {
		c.StopwordsFile = path
	}
}
