package app

import (
	"github.com/raysh454/siteforge/internal/crawler"
	"github.com/raysh454/siteforge/internal/generator"
	"github.com/raysh454/siteforge/internal/logging"
	"github.com/raysh454/siteforge/internal/policy"
	"github.com/raysh454/siteforge/internal/renderer"
)

// Config carries the settings for a whole pipeline run, one sub-config per
// stage. The zero value is not usable; start from DefaultConfig.
type Config struct {
	// AppName names the generated application and its artifact.
	AppName string

	// OutputDir receives crawl captures, the ux spec and the artifact.
	OutputDir string

	// ArtifactPath overrides the derived artifact name when set.
	ArtifactPath string

	Policy    policy.Config
	Renderer  renderer.Config
	Crawler   crawler.Config
	Generator generator.Config
	Logging   logging.Config
}

// DefaultConfig returns the stock pipeline settings.
func DefaultConfig() *Config {
	return &Config{
		AppName:   "GeneratedReactApp",
		OutputDir: "site_mirror",
		Policy:    policy.DefaultConfig(),
		Renderer:  renderer.DefaultConfig(),
		Crawler:   crawler.DefaultConfig(),
		Generator: generator.DefaultConfig(),
		Logging:   logging.DefaultConfig(),
	}
}
