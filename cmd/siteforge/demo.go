package main

import (
	"github.com/raysh454/siteforge/internal/demosite"
	"github.com/spf13/cobra"
)

var demoPort int

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Serve a small sample site to try the pipeline against",
	Long: `Demo starts a local multi-page sample site with the component kinds the
classifier recognizes: navigation, forms, a login page, a search box, tables,
lists and images. Point the pipeline at it:

  siteforge demo &
  siteforge run http://localhost:9999/ --renderer nethttp`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		siteCfg := demosite.DefaultConfig()
		if demoPort > 0 {
			siteCfg.Port = demoPort
		}
		return demosite.NewDemoSite(siteCfg).Start()
	},
}

func init() {
	demoCmd.Flags().IntVar(&demoPort, "port", 0, "listen port (default 9999)")

	rootCmd.AddCommand(demoCmd)
}
