package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/args"
	"github.com/aretw0/args/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of args",
	Run: func(cmd *cobra.Command, _ []string) {
		if isTerminal(cmd.OutOrStdout()) {
			tui.PrintBanner(cmd.OutOrStdout())
		}
		fmt.Fprintf(cmd.OutOrStdout(), "args version %s\n", strings.TrimSpace(args.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
