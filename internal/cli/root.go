// Package cli provides the command-line interface for ChatScope.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/chatscope/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Configuration or runtime error
	}
	return commands.ExitCode
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "chatscope",
		Short: "Analyze exported chat transcripts",
		Long: `ChatScope is a batch analytics tool for exported chat transcripts.

It parses a WhatsApp-style export into a message table, scores each
message with the VADER sentiment lexicon, and computes:
  - Message, word, media, and link statistics
  - Monthly and weekly activity maps
  - Weekday-by-hour activity heatmaps
  - Daily and monthly timelines
  - Per-author contribution shares per sentiment class
  - Most common words and emoji frequency tables

Point it at an exported chat and explore the numbers, or emit JSON for
a dashboard to render.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	rootCmd.AddCommand(commands.NewAnalyzeCommand())
	rootCmd.AddCommand(commands.NewDetectCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
