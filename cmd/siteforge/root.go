package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/raysh454/siteforge/internal/app"
	"github.com/raysh454/siteforge/internal/logging"
	"github.com/spf13/cobra"
)

var (
	Version = "dev"

	// global flags
	configFile string
	logLevel   string
	outputDir  string

	// resolved in PersistentPreRunE, shared by all subcommands
	cfg    *app.Config
	logger logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "siteforge",
	Short: "Rebuild a website's structure as a React + Flask scaffold",
	Long: `siteforge crawls a site, classifies the UI components of its pages
into a UX spec, asks a language model to generate a matching React + Flask
project, and packages the result as a runnable scaffold zip.

Each stage can run on its own (crawl, extract, generate), or end to end
with run. serve previews a generated scaffold locally.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// provider API keys
		_ = godotenv.Load()

		var err error
		cfg, err = app.LoadConfig(configFile)
		if err != nil {
			return err
		}
		if logLevel != "" {
			cfg.Logging.Level = logLevel
		}
		if outputDir != "" {
			cfg.OutputDir = outputDir
		}
		if cfg.Crawler.OutputDir == "" {
			cfg.Crawler.OutputDir = cfg.OutputDir
		}

		logger, err = logging.New(cfg.Logging)
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default: ./siteforge.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVarP(&outputDir, "output", "o", "", "output directory for captures, specs and artifacts")
}
