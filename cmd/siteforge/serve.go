package main

import (
	"github.com/raysh454/siteforge/internal/server"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve [scaffold-dir]",
	Short: "Preview a generated scaffold's frontend build locally",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		srvCfg := server.DefaultConfig()
		srvCfg.Addr = serveAddr
		if len(args) == 1 {
			srvCfg.ScaffoldDir = args[0]
		}

		return server.NewServer(srvCfg, logger).ListenAndServe()
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":5000", "listen address")

	rootCmd.AddCommand(serveCmd)
}
