package main

import (
	"fmt"

	"github.com/raysh454/siteforge/internal/classifier"
	"github.com/raysh454/siteforge/internal/crawler"
	"github.com/spf13/cobra"
)

var extractOut string

var extractCmd = &cobra.Command{
	Use:   "extract <crawl_index.json>",
	Short: "Classify crawled pages into a UX spec",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := crawler.ReadIndex(args[0])
		if err != nil {
			return err
		}

		spec, err := classifier.Aggregate(records, logger)
		if err != nil {
			return err
		}

		if err := spec.Save(extractOut); err != nil {
			return fmt.Errorf("saving ux spec: %w", err)
		}

		fmt.Printf("UX spec for %s (%d pages) written to %s\n", spec.Domain, len(spec.Pages), extractOut)
		return nil
	},
}

func init() {
	extractCmd.Flags().StringVar(&extractOut, "out", "ux_spec.json", "output path for the ux spec")

	rootCmd.AddCommand(extractCmd)
}
