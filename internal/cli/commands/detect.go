package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/chatscope/pkg/detector"
)

// DetectOptions holds command-line options for the detect command.
type DetectOptions struct {
	Output      string
	SampleSize  int
	ShowAll     bool
	WriteConfig string
}

// NewDetectCommand creates the detect command.
func NewDetectCommand() *cobra.Command {
	opts := &DetectOptions{}

	cmd := &cobra.Command{
		Use:   "detect <transcript-file>",
		Short: "Detect the export format of a transcript",
		Long: `Analyze a transcript to automatically detect its export format.

Samples lines from the file and tests against known chat-export stamp
variants. Reports the detected format with confidence score and
provides a ready-to-use YAML configuration snippet.

Optionally generates a starter config file with --write-config.

Supports:
  - WhatsApp Android exports (12-hour and 24-hour clocks)
  - Two- and four-digit year variants
  - Dot-separated date locales
  - WhatsApp iOS bracketed exports (with seconds)

Example:
  chatscope detect chat.txt
  chatscope detect --sample 500 big-group-chat.txt
  chatscope detect --write-config chatscope.yaml chat.txt
  chatscope detect -w chatscope.yaml chat.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDetect(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().IntVarP(&opts.SampleSize, "sample", "n", 100, "Number of lines to sample")
	cmd.Flags().BoolVar(&opts.ShowAll, "all", false, "Show all detected formats, not just the best match")
	cmd.Flags().StringVarP(&opts.WriteConfig, "write-config", "w", "", "Write starter config to file (will not overwrite)")

	return cmd
}

func runDetect(cmd *cobra.Command, args []string, opts *DetectOptions) error {
	transcript := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Check file exists
	if _, err := os.Stat(transcript); os.IsNotExist(err) {
		return fmt.Errorf("transcript not found: %s", transcript)
	}

	// Create detector
	d := detector.New(detector.WithSampleSize(opts.SampleSize))

	// Run detection
	result, err := d.DetectFromFile(ctx, transcript)
	if err != nil {
		return fmt.Errorf("detection failed: %w", err)
	}

	// Write config file if requested
	if opts.WriteConfig != "" {
		if err := writeStarterConfig(result, transcript, opts.WriteConfig); err != nil {
			return err
		}
	}

	// Output results
	switch opts.Output {
	case "json":
		return outputDetectJSON(result, transcript, opts)
	default:
		return outputDetectText(result, transcript, opts)
	}
}

func outputDetectText(result *detector.DetectionResult, transcript string, opts *DetectOptions) error {
	fmt.Println("=== Export Format Detection ===")
	fmt.Println()
	fmt.Printf("File: %s\n", transcript)
	fmt.Printf("Lines sampled: %d\n", result.SampledLines)
	fmt.Printf("Lines with stamps: %d\n", result.MatchedLines)
	fmt.Println()

	if !result.HasMatch() {
		fmt.Println("No export format detected.")
		fmt.Println()
		fmt.Println("Tip: The file may not be a chat export, or uses an uncommon locale.")
		fmt.Println("Check the first few lines manually to identify the stamp pattern.")
		return nil
	}

	// Show best match
	best := result.BestMatch()
	fmt.Printf("Detected Format: %s\n", best.Format.Name)
	fmt.Printf("Confidence: %.1f%% (%d/%d lines matched)\n",
		best.Confidence*100, best.MatchCount, result.SampledLines)
	fmt.Println()
	fmt.Printf("Sample match:\n  %s\n", best.SampleLine)
	fmt.Printf("Parsed as: %s\n", best.ParsedTime.Format("2006-01-02 15:04"))
	fmt.Println()

	// Ambiguity warning
	if best.Format.Ambiguous {
		fmt.Println("WARNING: This format has date ordering ambiguity (MM/DD vs DD/MM).")
		fmt.Println("Please verify the layout matches your export's locale.")
		fmt.Println()
	}
	if result.AmbiguityNote != "" {
		fmt.Printf("Note: %s\n", result.AmbiguityNote)
		fmt.Println()
	}

	// YAML snippet
	fmt.Println("--- Configuration snippet (copy to your config file) ---")
	fmt.Println()
	fmt.Println("export_format:")
	fmt.Printf("  pattern: '%s'\n", best.Format.PatternStr)
	fmt.Printf("  layout: \"%s\"\n", best.Format.Layout)
	fmt.Println()

	// Show alternatives if requested
	if opts.ShowAll && len(result.Matches) > 1 {
		fmt.Println("--- Alternative formats detected ---")
		for i, m := range result.Matches[1:] {
			fmt.Printf("%d. %s (%.1f%% confidence)\n", i+2, m.Format.Name, m.Confidence*100)
			fmt.Printf("   pattern: '%s'\n", m.Format.PatternStr)
			fmt.Printf("   layout: \"%s\"\n", m.Format.Layout)
		}
		fmt.Println()
	}

	return nil
}

// JSONMatch represents a format match in JSON output.
type JSONMatch struct {
	Name       string  `json:"name"`
	Pattern    string  `json:"pattern"`
	Layout     string  `json:"layout"`
	Confidence float64 `json:"confidence"`
	MatchCount int     `json:"match_count"`
	SampleLine string  `json:"sample_line"`
	Ambiguous  bool    `json:"ambiguous,omitempty"`
}

// JSONOutput represents the full JSON output.
type JSONOutput struct {
	File          string      `json:"file"`
	Matches       []JSONMatch `json:"matches"`
	SampledLines  int         `json:"sampled_lines"`
	MatchedLines  int         `json:"matched_lines"`
	AmbiguityNote string      `json:"ambiguity_note,omitempty"`
}

func outputDetectJSON(result *detector.DetectionResult, transcript string, opts *DetectOptions) error {
	out := JSONOutput{
		File:          transcript,
		SampledLines:  result.SampledLines,
		MatchedLines:  result.MatchedLines,
		AmbiguityNote: result.AmbiguityNote,
		Matches:       make([]JSONMatch, 0),
	}

	matches := result.Matches
	if !opts.ShowAll && len(matches) > 1 {
		matches = matches[:1] // Only show best match
	}

	for _, m := range matches {
		out.Matches = append(out.Matches, JSONMatch{
			Name:       m.Format.Name,
			Pattern:    m.Format.PatternStr,
			Layout:     m.Format.Layout,
			Confidence: m.Confidence,
			MatchCount: m.MatchCount,
			SampleLine: m.SampleLine,
			Ambiguous:  m.Format.Ambiguous,
		})
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

// writeStarterConfig generates a starter config file with the detected format.
func writeStarterConfig(result *detector.DetectionResult, transcript, configPath string) error {
	// Check if file already exists
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("config file already exists: %s (will not overwrite)", configPath)
	}

	// Need a detected format to generate config
	if !result.HasMatch() {
		return fmt.Errorf("cannot generate config: no export format detected")
	}

	best := result.BestMatch()

	// Generate the config content
	cfg := generateStarterConfig(transcript, best)

	// Write the file
	// #nosec G306 - config file doesn't need restrictive permissions
	if err := os.WriteFile(configPath, []byte(cfg), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Wrote starter config to: %s\n\n", configPath)
	return nil
}

// generateStarterConfig creates a YAML config template.
func generateStarterConfig(transcript string, match *detector.FormatMatch) string {
	// Get absolute path for transcript if possible
	absTranscript := transcript
	if abs, err := filepath.Abs(transcript); err == nil {
		absTranscript = abs
	}

	return fmt.Sprintf(`# ChatScope Configuration
# Generated by: chatscope detect
# Detected format: %s (%.0f%% confidence)

transcripts:
  - %s
  # Add more exports or use globs:
  # - exports/*.txt

export_format:
  pattern: '%s'
  layout: "%s"

# The string the export substitutes for attachments.
media_placeholder: "<Media omitted>"

# Optional: override the embedded stop-word list.
# stopwords_file: stopwords.txt

analysis:
  top_words: 20
  top_users: 10

sentiment:
  enabled: true
`, match.Format.Name, match.Confidence*100,
		absTranscript,
		match.Format.PatternStr,
		match.Format.Layout)
}
