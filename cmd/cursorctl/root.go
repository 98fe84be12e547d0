package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/bytecursor/internal/logger"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
	logFile string

	closeLog = func() error { return nil }
)

var rootCmd = &cobra.Command{
	Use:   "cursorctl",
	Short: "Inspect and patch binary files field by field",
	Long: `cursorctl maps a file into memory and reads or writes typed fields
(fixed-width integers, byte runs, UTF-8 and NUL-terminated strings) at byte
offsets, using the same bounds-checked cursor a codec would.`,
	Version:           "0.1.0",
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeLog()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write debug logs to this file")
}

func setupLogging(cmd *cobra.Command, args []string) error {
	opts := logger.Options{
		Enabled: verbose || logFile != "",
		File:    logFile,
		Writer:  os.Stderr,
		Level:   slog.LevelInfo,
	}
	if verbose || logFile != "" {
		opts.Level = slog.LevelDebug
	}
	fn, err := logger.Init(opts)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	closeLog = fn
	return nil
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
