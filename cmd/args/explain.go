package main

import (
	"fmt"
	"os"

	"github.com/aretw0/args/internal/presentation/tui"
	"github.com/aretw0/args/pkg/schema"
	"github.com/spf13/cobra"
)

var explainCmd = &cobra.Command{
	Use:   "explain [--schema S | --profile P]",
	Short: "Describe the flags a schema declares",
	Run: func(cmd *cobra.Command, _ []string) {
		text, err := resolveSchema(cmd)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
			os.Exit(exitSchemaError)
		}
		compiled, err := schema.Compile(text)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "malformed schema: %v\n", err)
			os.Exit(exitSchemaError)
		}

		md := tui.SchemaMarkdown(compiled)
		if isTerminal(cmd.OutOrStdout()) {
			render := tui.NewRenderer()
			if out, err := render(md); err == nil {
				md = out
			}
		}
		fmt.Fprint(cmd.OutOrStdout(), md)
	},
}

func init() {
	rootCmd.AddCommand(explainCmd)
	explainCmd.Flags().StringP("schema", "s", "", "Schema, e.g. \"l,p#,d*\"")
	explainCmd.Flags().StringP("profile", "P", "", "Named schema from the configuration file")
}
