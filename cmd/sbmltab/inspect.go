package main

import (
	"os"

	"github.com/aretw0/sbmltab/internal/cli"
	"github.com/aretw0/sbmltab/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [<config.xml>]",
	Short: "List the map entries that would be generated",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := baseOptions(cmd, args)
		format, _ := cmd.Flags().GetString("format")
		if jsonMode, _ := cmd.Flags().GetBool("json"); jsonMode {
			format = cli.FormatJSON
		}
		opts.Rich = tui.IsTerminal(os.Stdout) && format == cli.FormatTable

		sigCtx := cli.NewSignalContext(cmd.Context())
		defer sigCtx.Cancel()
		return cli.Inspect(sigCtx, opts, format)
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringP("format", "f", cli.FormatTable, "Output format: table, json or mermaid")
	inspectCmd.Flags().Bool("json", false, "Shorthand for --format json")
}
