// Package cmd provides the CLI commands for minisearch.
package cmd

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/Aman-CERP/minisearch/internal/config"
	"github.com/Aman-CERP/minisearch/internal/loader"
	"github.com/Aman-CERP/minisearch/internal/logging"
	"github.com/Aman-CERP/minisearch/internal/output"
	"github.com/Aman-CERP/minisearch/internal/search"
	"github.com/Aman-CERP/minisearch/internal/ui"
	"github.com/Aman-CERP/minisearch/pkg/version"
)

// Persistent flags shared by all commands.
var (
	configPath     string
	debugMode      bool
	noColor        bool
	loggingCleanup func()
)

// NewRootCmd creates the root command for the minisearch CLI.
func NewRootCmd() *cobra.Command {
	var dataFile string

	cmd := &cobra.Command{
		Use:   "minisearch",
		Short: "In-memory TF-IDF full-text search engine",
		Long: `Minisearch indexes short documents in memory and answers free-text
queries with TF-IDF ranked, snippeted results.

Run without arguments to load a corpus (built-in samples, or a
pipe-delimited batch file via --file) and query it interactively.
Type 'quit' or 'exit' to leave the loop.`,
		Version: version.Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return cmd.Help()
			}
			return runInteractive(cmd, dataFile)
		},
	}

	cmd.SetVersionTemplate("minisearch version {{.Version}}\n")

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: .minisearch.yaml)")
	cmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging to ~/.minisearch/logs/")
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	cmd.Flags().StringVarP(&dataFile, "file", "f", "", "Load corpus from a pipe-delimited batch file instead of the samples")

	cmd.PersistentPreRunE = startLogging
	cmd.PersistentPostRunE = stopLogging

	cmd.AddCommand(newSearchCmd())
	cmd.AddCommand(newStatsCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// startLogging enables debug logging when --debug is set.
func startLogging(_ *cobra.Command, _ []string) error {
	if !debugMode {
		return nil
	}
	logger, cleanup, err := logging.Setup(logging.DebugConfig())
	if err != nil {
		return fmt.Errorf("failed to setup debug logging: %w", err)
	}
	loggingCleanup = cleanup
	slog.SetDefault(logger)
	slog.Info("debug_logging_enabled",
		slog.String("log_file", logging.DefaultLogPath()),
		slog.String("version", version.Short()))
	return nil
}

// stopLogging closes the debug log file if logging was enabled.
func stopLogging(_ *cobra.Command, _ []string) error {
	if loggingCleanup != nil {
		loggingCleanup()
		loggingCleanup = nil
	}
	return nil
}

// buildEngine loads configuration, creates an engine and fills it with the
// requested corpus (batch file, or built-in samples when dataFile is empty).
func buildEngine(out *output.Writer, dataFile string) (*search.Engine, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	eng := search.New(search.Config{
		DefaultLimit: cfg.Search.MaxResults,
		CacheSize:    cfg.Search.CacheSize,
	})

	if dataFile != "" {
		added, skipped, err := loader.LoadFile(eng, dataFile)
		if err != nil {
			return nil, err
		}
		slog.Info("corpus_loaded",
			slog.String("file", dataFile),
			slog.Int("added", added),
			slog.Int("skipped", skipped))
		if skipped > 0 {
			out.Warning(fmt.Sprintf("%d malformed line(s) skipped in %s", skipped, dataFile))
		}
	} else {
		count := loader.LoadSamples(eng)
		slog.Info("corpus_loaded", slog.String("file", "builtin samples"), slog.Int("added", count))
	}

	return eng, nil
}

// runInteractive loads the corpus, prints stats and reads query lines until
// a sentinel ("quit"/"exit") or end of input.
func runInteractive(cmd *cobra.Command, dataFile string) error {
	out := output.New(cmd.OutOrStdout())
	styles := ui.GetStyles(noColor || !isTerminal(cmd.OutOrStdout()))

	eng, err := buildEngine(out, dataFile)
	if err != nil {
		return err
	}

	printStats(out, styles, eng)

	// Prompt only when a human is typing.
	interactive := isTerminal(cmd.InOrStdin())

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		if interactive {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\n%s ", styles.Prompt.Render("search>"))
		}
		if !scanner.Scan() {
			break
		}
		query := strings.TrimSpace(scanner.Text())
		if query == "" {
			continue
		}
		if query == "quit" || query == "exit" {
			break
		}

		results := eng.Search(query, eng.DefaultLimit())
		printResults(out, styles, query, results)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed reading queries: %w", err)
	}

	out.Plain("Thank you for using minisearch!")
	return nil
}

// isTerminal reports whether v is a terminal file descriptor.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
