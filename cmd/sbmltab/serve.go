package main

import (
	"github.com/aretw0/sbmltab/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the stateless HTTP server",
	Long: `Starts an HTTP API around the generator:

  POST /generate   XML body -> sbml_def.py (query: color1, color2)
  POST /inspect    XML body -> JSON map entries
  GET  /healthz
  GET  /metrics    Prometheus exposition`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetString("port")
		host, _ := cmd.Flags().GetString("host")

		sigCtx := cli.NewSignalContext(cmd.Context())
		defer sigCtx.Cancel()
		return cli.Serve(sigCtx, baseOptions(cmd, nil), host+":"+port)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().String("host", "", "Interface to bind (default all)")
}
