package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/aretw0/sbmltab/internal/cli"
	"github.com/aretw0/sbmltab/internal/settings"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sbmltab [flags] [<config.xml> [<gui.py>] [<colorname1> <colorname2>]]",
	Short: "sbmltab generates the SBML species/substrate tab of a PhysiCell Jupyter GUI",
	Long: `sbmltab reads a PhysiCell XML configuration and writes sbml_def.py, a Python
module defining the SBMLDefTab widget class for the <map> entries of the first
<intracellular> element. Given a GUI module, its main_xml_filename line is
pointed at the configuration.

Arguments that start with "-" or share a name with a subcommand must follow "--".`,
	Example: `  sbmltab config/PhysiCell_settings.xml
  sbmltab config.xml mygui.py lightgreen tan
  sbmltab -- inspect
  sbmltab config.xml -- -dark- navy`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("settings", settings.DefaultFile, "Settings file (YAML, JSON or HCL)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging to stderr")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Print nothing on success")
	rootCmd.PersistentFlags().Bool("fold-case", false, "Match the map tag case-insensitively")
}

// baseOptions collects the persistent flags shared by every command.
func baseOptions(cmd *cobra.Command, args []string) cli.RunOptions {
	settingsPath, _ := cmd.Flags().GetString("settings")
	debug, _ := cmd.Flags().GetBool("debug")
	quiet, _ := cmd.Flags().GetBool("quiet")

	opts := cli.RunOptions{
		Prog:             rootCmd.Name(),
		Args:             args,
		SettingsPath:     settingsPath,
		SettingsExplicit: cmd.Flags().Changed("settings"),
		Overrides:        map[string]any{},
		Debug:            debug,
		Quiet:            quiet,
		Stdout:           os.Stdout,
		Stderr:           os.Stderr,
	}
	if cmd.Flags().Changed("fold-case") {
		fold, _ := cmd.Flags().GetBool("fold-case")
		opts.Overrides["fold_tag_case"] = fold
	}
	return opts
}
