package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/args"
	"github.com/aretw0/args/internal/config"
	"github.com/aretw0/args/internal/presentation/tui"
	"github.com/aretw0/args/pkg/domain"
	"github.com/aretw0/args/pkg/schema"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Exit codes of the parse command.
const (
	exitValid       = 0
	exitInvalid     = 1
	exitSchemaError = 2

	// exitUsage shares the schema-error code: both mean no parse result was produced.
	exitUsage = 2
)

var parseCmd = &cobra.Command{
	Use:   "parse [--schema S | --profile P] -- TOKENS...",
	Short: "Validate tokens against a schema",
	Long: `Parses the tokens after "--" against the schema and prints the typed values.
Exits 1 when the tokens are invalid. Exits 2 when no result could be produced:
a malformed schema, an unknown --output format, or both --schema and --profile.`,
	Example: `  args parse --schema "l,p#,d*" -- -l -p 8080 -d /var/log
  args parse --profile serve --output json -- -p 80`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, tokens []string) {
		text, err := resolveSchema(cmd)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
			os.Exit(exitUsage)
		}
		output := app.cfg.Output
		if cmd.Flags().Changed("output") {
			output, _ = cmd.Flags().GetString("output")
		}

		code, err := runParse(cmd.OutOrStdout(), text, tokens, output, parseOptions()...)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
		}
		if code != exitValid {
			os.Exit(code)
		}
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringP("schema", "s", "", "Schema, e.g. \"l,p#,d*\"")
	parseCmd.Flags().StringP("profile", "P", "", "Named schema from the configuration file")
	parseCmd.Flags().StringP("output", "o", config.OutputText, "Output format: text, json or yaml")
}

// runParse parses tokens and writes the result in the requested format.
// It returns the process exit code.
func runParse(w io.Writer, text string, tokens []string, output string, opts ...args.Option) (int, error) {
	if err := config.CheckOutput(output); err != nil {
		return exitUsage, err
	}

	a, err := args.New(text, tokens, opts...)
	if err != nil {
		var se *schema.SchemaError
		if errors.As(err, &se) {
			return exitSchemaError, fmt.Errorf("malformed schema: %w", err)
		}
		return exitSchemaError, err
	}

	res := a.Result()
	if err := writeResult(w, res, output); err != nil {
		return exitUsage, err
	}
	if !res.Valid {
		return exitInvalid, nil
	}
	return exitValid, nil
}

func writeResult(w io.Writer, res domain.Result, output string) error {
	switch strings.ToLower(output) {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(res)
	case config.OutputText:
		return writeText(w, res)
	default:
		return fmt.Errorf("unknown output format %q", output)
	}
}

func writeText(w io.Writer, res domain.Result) error {
	p := profileFor(w)
	if !res.Valid {
		fmt.Fprintln(w, tui.Status(p, false, ": "+res.Error))
		if res.Usage != "" {
			fmt.Fprintf(w, "usage: %s\n", res.Usage)
		}
		return nil
	}

	fmt.Fprintln(w, tui.Status(p, true, fmt.Sprintf(" (%d flags)", res.Cardinality)))
	for _, id := range sortedKeys(res.Values) {
		fmt.Fprintf(w, "  -%s %v\n", id, formatValue(res.Values[id]))
	}
	return nil
}

func formatValue(v any) string {
	if s, ok := v.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprint(v)
}
