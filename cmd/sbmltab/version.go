package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/sbmltab"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of sbmltab",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("sbmltab version %s\n", strings.TrimSpace(sbmltab.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
