package commands

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/chatscope/pkg/config"
	"github.com/ccollicutt/chatscope/pkg/detector"
	"github.com/ccollicutt/chatscope/pkg/metrics"
	"github.com/ccollicutt/chatscope/pkg/output"
	"github.com/ccollicutt/chatscope/pkg/parser"
	"github.com/ccollicutt/chatscope/pkg/sentiment"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// AnalyzeOptions holds command-line options for the analyze command.
type AnalyzeOptions struct {
	Config      string
	User        string
	Sentiment   string
	Output      string
	NoSentiment bool
	Verbose     bool
	Quiet       bool
}

// NewAnalyzeCommand creates the analyze command.
func NewAnalyzeCommand() *cobra.Command {
	opts := &AnalyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze [transcript-file...]",
		Short: "Analyze a chat transcript",
		Long: `Run the full analysis pipeline over one or more exported transcripts.

The pipeline parses entries, normalizes them into a message table,
scores each message with the VADER sentiment lexicon, and computes the
complete metric set: statistics, activity maps, heatmap, timelines,
per-author contributions, common words, and emoji frequencies.

Transcript files may be given as arguments or via the config file. The
export format is auto-detected unless the config pins one.

Exit codes:
  0 - Analysis produced a message table
  1 - No entries could be parsed (unrecognized or empty transcript)
  2 - Configuration or runtime error`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args, opts)
		},
	}

	// Flags
	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "Config file (optional)")
	cmd.Flags().StringVarP(&opts.User, "user", "u", metrics.OverallUser, "Restrict analysis to one author")
	cmd.Flags().StringVarP(&opts.Sentiment, "sentiment", "s", "", "Restrict to one sentiment class (positive|neutral|negative)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().BoolVar(&opts.NoSentiment, "no-sentiment", false, "Skip VADER scoring (classes default to neutral scores)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show run metadata in the report")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only, no details")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string, opts *AnalyzeOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Load configuration
	cfg, err := config.LoadOrDefault(ctx, opts.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Expand transcript globs; CLI arguments take precedence
	patterns := args
	if len(patterns) == 0 {
		patterns = cfg.Transcripts
	}
	if len(patterns) == 0 {
		return fmt.Errorf("no transcripts given (pass files as arguments or set transcripts in the config)")
	}

	files, err := parser.ExpandGlobs(patterns)
	if err != nil {
		return fmt.Errorf("expanding transcripts: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no transcript files matched patterns: %v", patterns)
	}

	// Resolve the export format: config first, then auto-detection
	pattern, layout, formatName, err := resolveFormat(ctx, cfg, files[0])
	if err != nil {
		return err
	}

	// Parse and normalize
	source := parser.NewFileSource(files, pattern)
	defer source.Close()

	start := time.Now()
	table, err := parser.BuildTable(ctx, source, parser.NewNormalizer(layout))
	if err != nil {
		return fmt.Errorf("building message table: %w", err)
	}

	// Sentiment pass (one-time, explicit initialization of the lexicon)
	if cfg.Sentiment.Enabled && !opts.NoSentiment {
		if err := table.ApplySentiment(sentiment.Default()); err != nil {
			return fmt.Errorf("scoring sentiment: %w", err)
		}
	}

	// Build the metrics engine
	engineOpts := []metrics.Option{
		metrics.WithMediaPlaceholder(cfg.MediaPlaceholder),
		metrics.WithTopWords(cfg.Analysis.TopWords),
		metrics.WithTopUsers(cfg.Analysis.TopUsers),
	}
	if cfg.StopwordsFile != "" {
		stopwords, err := metrics.LoadStopwords(cfg.StopwordsFile)
		if err != nil {
			return fmt.Errorf("loading stopwords: %w", err)
		}
		engineOpts = append(engineOpts, metrics.WithStopwords(stopwords))
	}
	engine := metrics.NewEngine(table, engineOpts...)

	// Compute the dashboard for the selected view
	filter, err := buildFilter(opts)
	if err != nil {
		return err
	}
	dash := engine.BuildDashboard(filter)

	// Assemble the report
	report := output.NewReport(table, dash, engine.Users())
	report.Metadata.ConfigFile = opts.Config
	report.Metadata.Format = formatName
	report.Metadata.AnalyzedAt = time.Now()
	report.Metadata.Duration = time.Since(start)

	// Output report
	formatter, err := createFormatter(opts)
	if err != nil {
		return err
	}
	if err := formatter.Format(ctx, report, os.Stdout); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	// A transcript that yields zero entries is a malformed upload;
	// report it through the exit code, not an error.
	if table.Len() == 0 {
		ExitCode = 1
	}

	return nil
}

// resolveFormat picks the stamp pattern and layout: the config wins
// when set, otherwise the first transcript is sampled for detection.
// A layout-only config overrides the detected layout (the day-first
// fix for ambiguous exports). When detection fails the default format
// is used so the pipeline still runs (and yields an empty table rather
// than an error).
func resolveFormat(ctx context.Context, cfg *config.Config, sampleFile string) (*regexp.Regexp, string, string, error) {
	if !cfg.ExportFormat.IsZero() {
		return cfg.ExportFormat.CompiledPattern(), cfg.ExportFormat.Layout, "configured", nil
	}

	d := detector.New()
	result, err := d.DetectFromFile(ctx, sampleFile)
	if err != nil {
		return nil, "", "", fmt.Errorf("detecting export format: %w", err)
	}

	layoutOverride := cfg.ExportFormat.Layout

	if !result.HasMatch() {
		fmt.Fprintf(os.Stderr, "Warning: no export format detected in %s, using default (%s)\n",
			sampleFile, "WhatsApp Android 12-hour")
		pattern := regexp.MustCompile(config.DefaultStampPattern)
		layout := config.DefaultStampLayout
		if layoutOverride != "" {
			layout = layoutOverride
		}
		return pattern, layout, "default", nil
	}

	best := result.BestMatch()
	if result.AmbiguityNote != "" && layoutOverride == "" {
		fmt.Fprintf(os.Stderr, "Note: %s\n", result.AmbiguityNote)
	}

	layout := best.Format.Layout
	if layoutOverride != "" {
		layout = layoutOverride
	}
	return best.Format.Pattern, layout, best.Format.Name, nil
}

// buildFilter converts CLI flags into a metrics filter.
func buildFilter(opts *AnalyzeOptions) (metrics.Filter, error) {
	filter := metrics.Filter{User: opts.User}
	if filter.User == "" {
		filter.User = metrics.OverallUser
	}

	switch opts.Sentiment {
	case "", "all":
		// No sentiment restriction
	default:
		class, err := sentiment.ParseClass(opts.Sentiment)
		if err != nil {
			return metrics.Filter{}, fmt.Errorf("invalid --sentiment: %w", err)
		}
		filter.Class = metrics.ClassFilter(class)
	}

	return filter, nil
}

func createFormatter(opts *AnalyzeOptions) (output.Formatter, error) {
	formatOpts := output.FormatOptions{
		Verbose: opts.Verbose,
		Quiet:   opts.Quiet,
	}

	switch opts.Output {
	case "text":
		return output.NewTextFormatter(formatOpts), nil
	case "json":
		return output.NewJSONFormatter(formatOpts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use text or json)", opts.Output)
	}
}
