package main

import (
	"os"

	"github.com/aretw0/sbmltab/internal/cli"
	"github.com/aretw0/sbmltab/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate [<config.xml> [<gui.py>] [<colorname1> <colorname2>]]",
	Short: "Generate sbml_def.py (default command)",
	Long: `Generates the SBMLDefTab module from the configuration.

  0 args: config.xml, colors lightgreen/tan
  1 arg:  <config.xml>
  2 args: <config.xml> <gui.py>
  3 args: <config.xml> <colorname1> <colorname2>
  4 args: <config.xml> <gui.py> <colorname1> <colorname2>`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := baseOptions(cmd, args)
		opts.Rich = tui.IsTerminal(os.Stdout) && !opts.Quiet

		if cmd.Flags().Changed("output") {
			opts.Overrides["output"], _ = cmd.Flags().GetString("output")
		}
		if cmd.Flags().Changed("metrics-file") {
			opts.Overrides["metrics_file"], _ = cmd.Flags().GetString("metrics-file")
		}
		return cli.Generate(opts)
	},
}

func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "", "Output file (default sbml_def.py)")
	cmd.Flags().String("metrics-file", "", "Write Prometheus metrics in textfile format to this path")
}

func init() {
	rootCmd.AddCommand(generateCmd)
	addGenerateFlags(generateCmd)

	// Positional arguments on the bare command run generate.
	addGenerateFlags(rootCmd)
	rootCmd.Args = cobra.ArbitraryArgs
	rootCmd.RunE = generateCmd.RunE
}
