package main

import (
	"fmt"

	"github.com/raysh454/siteforge/internal/app"
	"github.com/raysh454/siteforge/internal/generator"
	"github.com/raysh454/siteforge/internal/model"
	"github.com/raysh454/siteforge/internal/policy"
	"github.com/raysh454/siteforge/internal/renderer"
	"github.com/raysh454/siteforge/internal/scaffold"
	"github.com/spf13/cobra"
)

var runOut string

var runCmd = &cobra.Command{
	Use:   "run <url>",
	Short: "Run the whole pipeline: crawl, classify, generate, package",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		applyCrawlFlags()
		applyGenerateFlags()
		if runOut != "" {
			cfg.ArtifactPath = runOut
		}

		r, err := renderer.NewRenderer(cfg.Renderer, logger)
		if err != nil {
			return err
		}
		defer r.Close()

		gen, err := generator.NewGenerator(cfg.Generator, logger)
		if err != nil {
			// no model is a degraded run, not a failed one
			logger.Warn("model backend unavailable, the run will use the default scaffold")
			gen = generator.NewNullGenerator()
		}

		gate := policy.NewGate(cfg.Policy, logger)
		orch := app.NewOrchestrator(cfg, gate, r, gen, scaffold.NewZipPackager(), logger)

		bar := newProgressBar(cfg.Crawler.MaxPages, "crawling")
		orch.OnPage = func(rec *model.PageRecord, visited, budget int) {
			_ = bar.Add(1)
		}

		result, err := orch.Run(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		_ = bar.Finish()
		fmt.Println()

		fmt.Printf("Run %s: %d pages crawled\n", result.RunID, result.PagesCrawled)
		if result.SpecPath != "" {
			fmt.Printf("UX spec: %s\n", result.SpecPath)
		}
		fmt.Printf("Artifact: %s\n", result.ArtifactPath)
		for _, f := range result.Failures {
			fmt.Printf("warning: %s stage failed: %s\n", f.Stage, f.Error)
		}
		return nil
	},
}

func init() {
	runCmd.Flags().IntVar(&crawlMaxPages, "max-pages", 0, "page budget for the crawl")
	runCmd.Flags().IntVar(&crawlMaxDepth, "max-depth", -1, "link depth bound from the start page")
	runCmd.Flags().StringVar(&crawlBackend, "renderer", "", "rendering backend: chromedp, nethttp")
	runCmd.Flags().BoolVar(&crawlNoScreenshots, "no-screenshots", false, "skip full-page screenshots")
	runCmd.Flags().BoolVar(&crawlNoRobots, "no-robots", false, "skip the robots.txt check")
	runCmd.Flags().StringVar(&generateAppName, "app-name", "", "name for the generated application")
	runCmd.Flags().StringVar(&generateBackend, "backend", "", "model backend: claude, openai, local, null")
	runCmd.Flags().StringVar(&generateModel, "model", "", "model identifier for the chosen backend")
	runCmd.Flags().StringVar(&runOut, "out", "", "output zip path (default: derived from app name)")

	rootCmd.AddCommand(runCmd)
}
