package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/chatscope/pkg/config"
	"github.com/ccollicutt/chatscope/pkg/parser"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate a ChatScope configuration file without running analysis.

Checks:
  - YAML syntax
  - Stamp pattern validity (regex and capture group)
  - Layout presence when a pattern is set
  - Stop-word file existence
  - Transcript file existence (warning only)`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	fmt.Printf("Validating %s...\n", configPath)

	// Load and validate config
	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	// Report what we found
	fmt.Printf("\nConfiguration valid!\n")
	fmt.Printf("  Transcripts: %d pattern(s)\n", len(cfg.Transcripts))
	if cfg.ExportFormat.IsZero() {
		fmt.Printf("  Export format: auto-detect\n")
	} else {
		fmt.Printf("  Export format: pattern %q, layout %q\n",
			cfg.ExportFormat.Pattern, cfg.ExportFormat.Layout)
	}
	fmt.Printf("  Media placeholder: %q\n", cfg.MediaPlaceholder)
	fmt.Printf("  Sentiment: enabled=%v\n", cfg.Sentiment.Enabled)

	// Check if transcripts exist (warnings only)
	files, err := parser.ExpandGlobs(cfg.Transcripts)
	if err != nil {
		fmt.Printf("\nWarning: Error expanding transcript patterns: %v\n", err)
	} else if len(files) == 0 {
		fmt.Printf("\nWarning: No files match transcript patterns\n")
	} else {
		fmt.Printf("\nTranscript files matched: %d\n", len(files))
		for _, f := range files {
			fmt.Printf("  - %s\n", f)
		}
	}

	return nil
}
