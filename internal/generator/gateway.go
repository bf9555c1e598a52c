// Package generator holds the model gateway, the prompt builder and the
// output sanitizer. Model backends are registered by name and constructed
// through NewGenerator, same as the renderer backends: claude and openai talk
// to their hosted APIs, local talks to any OpenAI-compatible endpoint such as
// Ollama, and null stands in when no model is configured.
package generator

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/raysh454/siteforge/internal/interfaces"
)

// ErrModelUnavailable is returned by the null backend and by constructors
// that cannot reach or authenticate their model. The orchestrator treats it
// as a generation failure, not a run failure.
var ErrModelUnavailable = errors.New("model unavailable")

// Backend names accepted in Config.Backend.
const (
	BackendClaude = "claude"
	BackendOpenAI = "openai"
	BackendLocal  = "local"
	BackendNull   = "null"
)

// Config selects and tunes the model backend.
type Config struct {
	Backend string // defaults to local

	// Model is the backend-specific model identifier. Each backend has its
	// own default.
	Model string

	// APIKey overrides the backend's environment variable lookup.
	APIKey string

	// BaseURL points the local backend at an OpenAI-compatible server.
	BaseURL string

	MaxTokens int
	Timeout   time.Duration
}

// DefaultConfig targets a local Ollama server, which needs no credentials.
func DefaultConfig() Config {
	return Config{
		Backend:   BackendLocal,
		Model:     "llama3.2:3b",
		BaseURL:   "http://localhost:11434/v1",
		MaxTokens: 4000,
		Timeout:   2 * time.Minute,
	}
}

// BackendConstructor constructs a Generator given the config and logger.
type BackendConstructor func(cfg Config, logger interfaces.Logger) (interfaces.Generator, error)

var (
	mu       sync.RWMutex
	registry = map[string]BackendConstructor{}
)

// RegisterBackend registers a named backend constructor. Name is lower-cased
// internally. Registering the same name again overwrites the previous
// constructor.
func RegisterBackend(name string, ctor BackendConstructor) {
	if name == "" || ctor == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(name)] = ctor
}

// NewGenerator constructs the configured backend. It returns an error if the
// named backend has not been registered.
func NewGenerator(cfg Config, logger interfaces.Logger) (interfaces.Generator, error) {
	backend := strings.ToLower(strings.TrimSpace(cfg.Backend))
	if backend == "" {
		backend = BackendLocal
	}

	mu.RLock()
	ctor, ok := registry[backend]
	mu.RUnlock()
	if !ok || ctor == nil {
		return nil, fmt.Errorf("model backend %q not registered: available backends=%v", backend, ListBackends())
	}

	g, err := ctor(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to construct model backend %q: %w", backend, err)
	}
	if g == nil {
		return nil, errors.New("model backend constructor returned nil")
	}
	return g, nil
}

// ListBackends returns the list of registered backend names.
func ListBackends() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	return out
}

func init() {
	RegisterBackend(BackendClaude, func(cfg Config, logger interfaces.Logger) (interfaces.Generator, error) {
		return NewClaudeGenerator(cfg, logger)
	})
	RegisterBackend(BackendOpenAI, func(cfg Config, logger interfaces.Logger) (interfaces.Generator, error) {
		return NewOpenAIGenerator(cfg, logger)
	})
	RegisterBackend(BackendLocal, func(cfg Config, logger interfaces.Logger) (interfaces.Generator, error) {
		return NewLocalGenerator(cfg, logger)
	})
	RegisterBackend(BackendNull, func(cfg Config, logger interfaces.Logger) (interfaces.Generator, error) {
		return NewNullGenerator(), nil
	})
}
