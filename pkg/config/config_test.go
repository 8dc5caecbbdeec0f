package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.MediaPlaceholder != DefaultMediaPlaceholder {
		t.Errorf("MediaPlaceholder = %q", cfg.MediaPlaceholder)
	}
	if cfg.Analysis.TopWords != DefaultTopWords || cfg.Analysis.TopUsers != DefaultTopUsers {
		t.Errorf("Analysis = %+v", cfg.Analysis)
	}
	if !cfg.Sentiment.Enabled {
		t.Error("Sentiment.Enabled = false, want true by default")
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("Validate(DefaultConfig()) error = %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
transcripts:
  - chat.txt
export_format:
  pattern: '(?m)^(\d{1,2}/\d{1,2}/\d{2}, \d{1,2}:\d{2} [ap]m) - '
  layout: "1/2/06, 3:04 pm"
media_placeholder: "<attachment>"
analysis:
  top_words: 30
  top_users: 5
sentiment:
  enabled: false
`)

	cfg, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(cfg.Transcripts) != 1 || cfg.Transcripts[0] != "chat.txt" {
		t.Errorf("Transcripts = %v", cfg.Transcripts)
	}
	if cfg.ExportFormat.CompiledPattern() == nil {
		t.Error("CompiledPattern() = nil after Load")
	}
	if cfg.MediaPlaceholder != "<attachment>" {
		t.Errorf("MediaPlaceholder = %q", cfg.MediaPlaceholder)
	}
	if cfg.Analysis.TopWords != 30 || cfg.Analysis.TopUsers != 5 {
		t.Errorf("Analysis = %+v", cfg.Analysis)
	}
	if cfg.Sentiment.Enabled {
		t.Error("Sentiment.Enabled = true, want false")
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(context.Background(), "/nonexistent/config.yaml"); err == nil {
		t.Error("Load() expected error for missing file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "transcripts: [unclosed\n")
	if _, err := Load(context.Background(), path); err == nil {
		t.Error("Load() expected error for invalid YAML")
	}
}

func TestLoadOrDefault_NoPath(t *testing.T) {
	cfg, err := LoadOrDefault(context.Background(), "")
	if err != nil {
		t.Fatalf("LoadOrDefault() error = %v", err)
	}
	if cfg.MediaPlaceholder != DefaultMediaPlaceholder {
		t.Errorf("MediaPlaceholder = %q", cfg.MediaPlaceholder)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults valid", func(c *Config) {}, false},
		{"empty format valid", func(c *Config) { c.ExportFormat = FormatConfig{} }, false},
		{"layout-only valid", func(c *Config) {
			c.ExportFormat = FormatConfig{Layout: "2/1/06, 3:04 pm"}
		}, false},
		{"pattern without layout", func(c *Config) {
			c.ExportFormat = FormatConfig{Pattern: `^(\d+) - `}
		}, true},
		{"pattern without capture group", func(c *Config) {
			c.ExportFormat = FormatConfig{Pattern: `^\d+ - `, Layout: "1/2/06"}
		}, true},
		{"invalid pattern", func(c *Config) {
			c.ExportFormat = FormatConfig{Pattern: `([`, Layout: "1/2/06"}
		}, true},
		{"negative top_words", func(c *Config) { c.Analysis.TopWords = -1 }, true},
		{"negative top_users", func(c *Config) { c.Analysis.TopUsers = -1 }, true},
		{"missing stopwords file", func(c *Config) { c.StopwordsFile = "/nonexistent/stop.txt" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := Validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_AppliesDefaults(t *testing.T) {
	cfg := &Config{}
	if err := Validate(cfg); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if cfg.MediaPlaceholder != DefaultMediaPlaceholder {
		t.Errorf("MediaPlaceholder = %q", cfg.MediaPlaceholder)
	}
	if cfg.Analysis.TopWords != DefaultTopWords || cfg.Analysis.TopUsers != DefaultTopUsers {
		t.Errorf("Analysis = %+v", cfg.Analysis)
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv(EnvStampLayout, "2/1/06, 15:04")

	stopwords := filepath.Join(t.TempDir(), "stop.txt")
	if err := os.WriteFile(stopwords, []byte("the\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvStopwordsFile, stopwords)

	cfg, err := LoadOrDefault(context.Background(), "")
	if err != nil {
		t.Fatalf("LoadOrDefault() error = %v", err)
	}
	if cfg.ExportFormat.Layout != "2/1/06, 15:04" {
		t.Errorf("Layout = %q", cfg.ExportFormat.Layout)
	}
	if cfg.StopwordsFile != stopwords {
		t.Errorf("StopwordsFile = %q", cfg.StopwordsFile)
	}
}
