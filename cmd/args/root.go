package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/args"
	"github.com/aretw0/args/internal/config"
	"github.com/aretw0/args/internal/logging"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// app holds what the root command resolved before a subcommand runs.
var app = struct {
	cfg    config.Config
	logger *slog.Logger
}{
	cfg:    config.Default(),
	logger: logging.NewNop(),
}

var rootCmd = &cobra.Command{
	Use:   "args",
	Short: "args validates command-line tokens against a compact flag schema",
	Long: `args parses argument tokens with a schema such as "l,p#,d*":
a bare letter is a boolean flag, "*" a string, "#" an integer and "##" a double.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		path, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}

		level := cfg.LogLevel
		if cmd.Flags().Changed("log-level") {
			level, _ = cmd.Flags().GetString("log-level")
		}
		lvl, err := logging.ResolveLevel(level)
		if err != nil {
			return err
		}

		app.cfg = cfg
		app.logger = logging.New(lvl)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitSchemaError)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Configuration file (default "+config.DefaultPath+" if present)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
}

// parseOptions returns the library options implied by the configuration.
func parseOptions() []args.Option {
	opts := []args.Option{args.WithLogger(app.logger)}
	if app.cfg.StrictDuplicates {
		opts = append(opts, args.WithStrictDuplicates())
	}
	return opts
}

// resolveSchema picks the schema text from --schema or --profile.
func resolveSchema(cmd *cobra.Command) (string, error) {
	text, _ := cmd.Flags().GetString("schema")
	profile, _ := cmd.Flags().GetString("profile")
	switch {
	case profile != "" && cmd.Flags().Changed("schema"):
		return "", fmt.Errorf("--schema and --profile are mutually exclusive")
	case profile != "":
		return app.cfg.Profile(profile)
	default:
		return text, nil
	}
}

// profileFor returns a color profile for w, plain ASCII unless w is a terminal.
func profileFor(w io.Writer) termenv.Profile {
	if isTerminal(w) {
		return termenv.ColorProfile()
	}
	return termenv.Ascii
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
