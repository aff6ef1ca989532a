package main

import (
	"github.com/aretw0/sbmltab/internal/cli"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts sbmltab as an MCP server over stdio, exposing the tools
generate_sbml_tab and list_maps to AI agents.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.ServeMCP(baseOptions(cmd, nil))
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
