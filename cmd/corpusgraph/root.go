package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/corpusgraph/corpusgraph/internal/version"
)

var (
	cfgFile  string
	logLevel string
)

// parseLogLevel converts a string log level to slog.Level.
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: must be debug, info, warn, or error", level)
	}
}

// newLogger builds the process-wide logger from --log-level or
// CORPUSGRAPH_LOG_LEVEL, falling back to info on an unparseable value.
func newLogger() *slog.Logger {
	level := logLevel
	if level == "" {
		level = os.Getenv("CORPUSGRAPH_LOG_LEVEL")
	}
	parsed, err := parseLogLevel(level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v, using info\n", err)
		parsed = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parsed}))
}

var rootCmd = &cobra.Command{
	Use:   "corpusgraph",
	Short: "Turn scholarly PDFs into a typed knowledge graph",
	Long: `corpusgraph parses long-form scholarly documents into a nested
structure tree (chapters, subsections, paragraphs, atoms) and then
classifies every atom through an LLM, pruning the proposed relationships
against a declarative ontology to produce a validated graph.`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.corpusgraph/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (default: info, env: CORPUSGRAPH_LOG_LEVEL)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(buildCmd)
}
