// Package app ties the pipeline stages together: policy gate, crawl,
// classification, generation, assembly and packaging, end to end for one
// target site.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/raysh454/siteforge/internal/classifier"
	"github.com/raysh454/siteforge/internal/crawler"
	"github.com/raysh454/siteforge/internal/generator"
	"github.com/raysh454/siteforge/internal/interfaces"
	"github.com/raysh454/siteforge/internal/model"
	"github.com/raysh454/siteforge/internal/policy"
	"github.com/raysh454/siteforge/internal/scaffold"
	"github.com/raysh454/siteforge/internal/uxspec"
)

// Pipeline stages as they appear in failure reports.
const (
	StagePrompt   = "prompt"
	StageGenerate = "generate"
	StageSanitize = "sanitize"
	StagePersist  = "persist"
)

// Failure is one recoverable error from the generation path of a run.
type Failure struct {
	Stage string `json:"stage"`
	Error string `json:"error"`
}

// FailureReport collects the run's recoverable errors. A run that fell back
// to the default scaffold says so here rather than in its exit status.
type FailureReport []Failure

// RunResult is the outcome of one pipeline run.
type RunResult struct {
	RunID        string        `json:"run_id"`
	StartURL     string        `json:"start_url"`
	PagesCrawled int           `json:"pages_crawled"`
	SpecPath     string        `json:"spec_path,omitempty"`
	ArtifactPath string        `json:"artifact_path"`
	Failures     FailureReport `json:"failures,omitempty"`

	Spec *uxspec.Spec `json:"-"`
}

// Orchestrator runs the whole pipeline. Policy and traversal errors abort
// the run; everything on the generation path degrades to the default
// scaffold and is recorded in the result's failure report.
type Orchestrator struct {
	cfg       *Config
	gate      *policy.Gate
	renderer  interfaces.Renderer
	generator interfaces.Generator
	packager  interfaces.Packager
	logger    interfaces.Logger

	// OnPage is forwarded to the crawl engine for progress display.
	OnPage func(rec *model.PageRecord, visited, budget int)
}

// NewOrchestrator ties together config, capabilities and logger.
func NewOrchestrator(cfg *Config, gate *policy.Gate, r interfaces.Renderer, g interfaces.Generator, p interfaces.Packager, logger interfaces.Logger) *Orchestrator {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Orchestrator{
		cfg:       cfg,
		gate:      gate,
		renderer:  r,
		generator: g,
		packager:  p,
		logger:    logger,
	}
}

// Run executes the pipeline against startURL and returns the run result. On
// a nil error the artifact at RunResult.ArtifactPath exists and is complete;
// check RunResult.Failures to see whether it is model output or the default
// scaffold.
func (o *Orchestrator) Run(ctx context.Context, startURL string) (*RunResult, error) {
	runID := uuid.New().String()
	logger := o.logger.With(interfaces.Field{Key: "run_id", Value: runID})

	result := &RunResult{
		RunID:    runID,
		StartURL: startURL,
	}

	if err := o.gate.CheckURL(ctx, startURL); err != nil {
		return nil, fmt.Errorf("policy gate: %w", err)
	}

	if o.cfg.OutputDir != "" {
		if err := os.MkdirAll(o.cfg.OutputDir, 0o755); err != nil {
			return nil, fmt.Errorf("creating output dir: %w", err)
		}
	}

	logger.Info("crawl started", interfaces.Field{Key: "url", Value: startURL})
	engine := crawler.NewEngine(o.cfg.Crawler, o.renderer, logger)
	engine.OnPage = o.OnPage
	records, err := engine.Crawl(ctx, startURL)
	if err != nil {
		return nil, fmt.Errorf("crawl: %w", err)
	}
	result.PagesCrawled = len(records)

	if o.cfg.Crawler.OutputDir != "" {
		if _, err := crawler.WriteIndex(records, o.cfg.Crawler.OutputDir); err != nil {
			logger.Warn("writing crawl index", interfaces.Field{Key: "error", Value: err.Error()})
			result.Failures = append(result.Failures, Failure{Stage: StagePersist, Error: err.Error()})
		}
	}

	spec, err := classifier.Aggregate(records, logger)
	if err != nil {
		return nil, fmt.Errorf("classification: %w", err)
	}
	result.Spec = spec

	if err := o.gate.CheckSpec(spec); err != nil {
		return nil, fmt.Errorf("policy gate: %w", err)
	}

	if o.cfg.OutputDir != "" {
		specPath := filepath.Join(o.cfg.OutputDir, "ux_spec.json")
		if err := spec.Save(specPath); err != nil {
			logger.Warn("saving ux spec", interfaces.Field{Key: "error", Value: err.Error()})
			result.Failures = append(result.Failures, Failure{Stage: StagePersist, Error: err.Error()})
		} else {
			result.SpecPath = specPath
		}
	}

	files := o.generateFiles(ctx, spec, logger, result)

	final := scaffold.Assemble(files)
	if err := scaffold.Verify(final); err != nil {
		return nil, fmt.Errorf("assembling scaffold: %w", err)
	}

	artifactPath := o.cfg.ArtifactPath
	if artifactPath == "" {
		artifactPath = filepath.Join(o.cfg.OutputDir, scaffold.ArchiveName(o.cfg.AppName, time.Now()))
	}
	if err := o.packager.Package(final, artifactPath); err != nil {
		return nil, fmt.Errorf("packaging artifact: %w", err)
	}
	result.ArtifactPath = artifactPath

	logger.Info("run complete",
		interfaces.Field{Key: "artifact", Value: artifactPath},
		interfaces.Field{Key: "pages", Value: result.PagesCrawled},
		interfaces.Field{Key: "failures", Value: len(result.Failures)})
	return result, nil
}

// generateFiles runs the generation path: prompt, model call, sanitization.
// Every failure is recorded and answered with a nil file map, which Assemble
// turns into the default scaffold.
func (o *Orchestrator) generateFiles(ctx context.Context, spec *uxspec.Spec, logger interfaces.Logger, result *RunResult) map[string]string {
	fail := func(stage string, err error) map[string]string {
		logger.Warn("generation failed, falling back to default scaffold",
			interfaces.Field{Key: "stage", Value: stage},
			interfaces.Field{Key: "error", Value: err.Error()})
		result.Failures = append(result.Failures, Failure{Stage: stage, Error: err.Error()})
		return nil
	}

	prompt, err := generator.BuildPrompt(spec)
	if err != nil {
		return fail(StagePrompt, err)
	}

	raw, err := o.generator.Generate(ctx, generator.SystemPrompt, prompt)
	if err != nil {
		return fail(StageGenerate, err)
	}

	files, err := generator.ParseFiles(raw)
	if err != nil {
		return fail(StageSanitize, err)
	}

	logger.Info("model produced files",
		interfaces.Field{Key: "backend", Value: o.generator.Name()},
		interfaces.Field{Key: "count", Value: len(files)})
	return files
}
