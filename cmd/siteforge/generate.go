package main

import (
	"fmt"
	"time"

	"github.com/raysh454/siteforge/internal/generator"
	"github.com/raysh454/siteforge/internal/interfaces"
	"github.com/raysh454/siteforge/internal/policy"
	"github.com/raysh454/siteforge/internal/scaffold"
	"github.com/raysh454/siteforge/internal/uxspec"
	"github.com/spf13/cobra"
)

var (
	generateAppName string
	generateBackend string
	generateModel   string
	generateOut     string
)

var generateCmd = &cobra.Command{
	Use:   "generate <ux_spec.json>",
	Short: "Generate and package a scaffold from a UX spec",
	Long: `Generate asks the configured model for a React + Flask project matching
the UX spec and packages it as a zip. When the model is unreachable or its
output cannot be used, the scaffold falls back to the built-in defaults, so
an artifact is always produced.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		applyGenerateFlags()

		spec, err := uxspec.Load(args[0])
		if err != nil {
			return err
		}

		gate := policy.NewGate(cfg.Policy, logger)
		if err := gate.CheckSpec(spec); err != nil {
			return err
		}

		files := generateFromSpec(cmd, spec)

		final := scaffold.Assemble(files)
		if err := scaffold.Verify(final); err != nil {
			return err
		}

		out := generateOut
		if out == "" {
			out = scaffold.ArchiveName(cfg.AppName, time.Now())
		}
		if err := scaffold.NewZipPackager().Package(final, out); err != nil {
			return err
		}

		fmt.Printf("Scaffold generated: %s\n", out)
		return nil
	},
}

// generateFromSpec runs the model path and answers nil on any failure, which
// Assemble turns into the default scaffold.
func generateFromSpec(cmd *cobra.Command, spec *uxspec.Spec) map[string]string {
	prompt, err := generator.BuildPrompt(spec)
	if err != nil {
		logger.Warn("building prompt failed", interfaces.Field{Key: "error", Value: err.Error()})
		return nil
	}

	gen, err := generator.NewGenerator(cfg.Generator, logger)
	if err != nil {
		logger.Warn("model backend unavailable, using default scaffold",
			interfaces.Field{Key: "error", Value: err.Error()})
		return nil
	}

	raw, err := gen.Generate(cmd.Context(), generator.SystemPrompt, prompt)
	if err != nil {
		logger.Warn("model generation failed, using default scaffold",
			interfaces.Field{Key: "error", Value: err.Error()})
		return nil
	}

	files, err := generator.ParseFiles(raw)
	if err != nil {
		logger.Warn("model output unusable, using default scaffold",
			interfaces.Field{Key: "error", Value: err.Error()})
		return nil
	}
	return files
}

func applyGenerateFlags() {
	if generateAppName != "" {
		cfg.AppName = generateAppName
	}
	if generateBackend != "" {
		cfg.Generator.Backend = generateBackend
	}
	if generateModel != "" {
		cfg.Generator.Model = generateModel
	}
}

func init() {
	generateCmd.Flags().StringVar(&generateAppName, "app-name", "", "name for the generated application")
	generateCmd.Flags().StringVar(&generateBackend, "backend", "", "model backend: claude, openai, local, null")
	generateCmd.Flags().StringVar(&generateModel, "model", "", "model identifier for the chosen backend")
	generateCmd.Flags().StringVar(&generateOut, "out", "", "output zip path (default: <app>_scaffold_<timestamp>.zip)")

	rootCmd.AddCommand(generateCmd)
}
