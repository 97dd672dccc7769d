package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/listkit/internal/config"
	"github.com/joshuapare/listkit/internal/logger"
)

var (
	// Global flags
	cfgFile string
	debug   bool
	verbose bool
	jsonOut bool

	// cfg is loaded before any subcommand runs.
	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "listctl",
	Short: "Build, filter and select over hierarchical lists",
	Long: `listctl loads a list data source from a YAML or JSON document and drives
the listkit collection and selection engine over it, either one operation at a
time from the command line or interactively in the terminal.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default $XDG_CONFIG_HOME/listctl/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Write debug logs to stderr")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
}

// setup loads configuration and initialises logging.
func setup(stderr io.Writer) error {
	c, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	cfg = c

	opts := logger.Options{
		Enabled: cfg.Log.Enabled,
		LogDir:  cfg.Log.Dir,
		Level:   logger.ParseLevel(cfg.Log.Level),
	}
	if debug {
		opts.Enabled = true
		opts.Level = slog.LevelDebug
		opts.Writer = stderr
	}
	if err := logger.Init(opts); err != nil {
		fmt.Fprintf(stderr, "Warning: failed to init logging: %v\n", err)
	}
	return nil
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(w io.Writer, format string, args ...any) {
	if verbose {
		fmt.Fprintf(w, format, args...)
	}
}

// printJSON outputs data as indented JSON
func printJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
