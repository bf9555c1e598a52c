package main

import (
	"fmt"

	"github.com/raysh454/siteforge/internal/crawler"
	"github.com/raysh454/siteforge/internal/model"
	"github.com/raysh454/siteforge/internal/policy"
	"github.com/raysh454/siteforge/internal/renderer"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var (
	crawlMaxPages      int
	crawlMaxDepth      int
	crawlBackend       string
	crawlNoScreenshots bool
	crawlNoRobots      bool
)

var crawlCmd = &cobra.Command{
	Use:   "crawl <url>",
	Short: "Crawl a site and save its pages to the output directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		applyCrawlFlags()

		startURL := args[0]
		gate := policy.NewGate(cfg.Policy, logger)
		if err := gate.CheckURL(cmd.Context(), startURL); err != nil {
			return err
		}

		r, err := renderer.NewRenderer(cfg.Renderer, logger)
		if err != nil {
			return err
		}
		defer r.Close()

		engine := crawler.NewEngine(cfg.Crawler, r, logger)
		bar := newProgressBar(cfg.Crawler.MaxPages, "crawling")
		engine.OnPage = func(rec *model.PageRecord, visited, budget int) {
			_ = bar.Add(1)
		}

		records, err := engine.Crawl(cmd.Context(), startURL)
		if err != nil {
			return err
		}
		_ = bar.Finish()
		fmt.Println()

		indexPath, err := crawler.WriteIndex(records, cfg.Crawler.OutputDir)
		if err != nil {
			return err
		}

		fmt.Printf("Crawled %d pages. Index: %s\n", len(records), indexPath)
		return nil
	},
}

func applyCrawlFlags() {
	if crawlMaxPages > 0 {
		cfg.Crawler.MaxPages = crawlMaxPages
	}
	if crawlMaxDepth >= 0 {
		cfg.Crawler.MaxDepth = crawlMaxDepth
	}
	if crawlBackend != "" {
		cfg.Renderer.Backend = crawlBackend
	}
	if crawlNoScreenshots {
		cfg.Renderer.CaptureScreenshots = false
	}
	if crawlNoRobots {
		cfg.Policy.CheckRobots = false
	}
}

func newProgressBar(max int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(max,
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
	)
}

func init() {
	crawlCmd.Flags().IntVar(&crawlMaxPages, "max-pages", 0, "page budget for the crawl")
	crawlCmd.Flags().IntVar(&crawlMaxDepth, "max-depth", -1, "link depth bound from the start page")
	crawlCmd.Flags().StringVar(&crawlBackend, "renderer", "", "rendering backend: chromedp, nethttp")
	crawlCmd.Flags().BoolVar(&crawlNoScreenshots, "no-screenshots", false, "skip full-page screenshots")
	crawlCmd.Flags().BoolVar(&crawlNoRobots, "no-robots", false, "skip the robots.txt check")

	rootCmd.AddCommand(crawlCmd)
}
