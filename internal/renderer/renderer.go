// Package renderer provides the page-rendering capability behind the crawl
// engine. Backends are registered by name and constructed through NewRenderer;
// the chromedp backend drives a real headless browser, the nethttp backend
// fetches raw HTML for static sites and tests, and the null backend stands in
// when no rendering capability is available.
package renderer

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/raysh454/siteforge/internal/interfaces"
)

// ErrRendererUnavailable is returned by the null backend and by constructors
// that cannot acquire their rendering capability. The crawl engine treats it
// as fatal: without a renderer there is nothing to do.
var ErrRendererUnavailable = errors.New("renderer unavailable")

// Backend names accepted in Config.Backend.
const (
	BackendChromedp = "chromedp"
	BackendNetHTTP  = "nethttp"
	BackendNull     = "null"
)

// Config selects and tunes the rendering backend.
type Config struct {
	Backend string // defaults to chromedp

	Headless           bool
	CaptureScreenshots bool

	// NavigationTimeout bounds page navigation; IdleTimeout bounds the wait
	// for the page-idle signal after navigation. Exceeding IdleTimeout is not
	// an error: the page is captured as-is.
	NavigationTimeout time.Duration
	IdleTimeout       time.Duration

	// IdleAfter is the quiet period with no in-flight requests that counts
	// as "page idle".
	IdleAfter time.Duration
}

// DefaultConfig mirrors the tool's stock crawl settings.
func DefaultConfig() Config {
	return Config{
		Backend:            BackendChromedp,
		Headless:           true,
		CaptureScreenshots: true,
		NavigationTimeout:  30 * time.Second,
		IdleTimeout:        10 * time.Second,
		IdleAfter:          2 * time.Second,
	}
}

// BackendConstructor constructs a Renderer given the config and logger.
type BackendConstructor func(cfg Config, logger interfaces.Logger) (interfaces.Renderer, error)

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

// NewRenderer constructs the configured backend. It returns an error if the
// named backend has not been registered.
func NewRenderer(cfg Config, logger interfaces.Logger) (interfaces.Renderer, error) {
	backend := strings.ToLower(strings.TrimSpace(cfg.Backend))
	if backend == "" {
		backend = BackendChromedp
	}

	mu.RLock()
	ctor, ok := registry[backend]
	mu.RUnlock()
	if !ok || ctor == nil {
		return nil, fmt.Errorf("renderer backend %q not registered: available backends=%v", backend, ListBackends())
	}

	r, err := ctor(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to construct renderer backend %q: %w", backend, err)
	}
	if r == nil {
		return nil, errors.New("renderer constructor returned nil")
	}
	return r, nil
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
	RegisterBackend(BackendChromedp, func(cfg Config, logger interfaces.Logger) (interfaces.Renderer, error) {
		return NewChromedpRenderer(cfg, logger)
	})
	RegisterBackend(BackendNetHTTP, func(cfg Config, logger interfaces.Logger) (interfaces.Renderer, error) {
		return NewNetHTTPRenderer(cfg, logger), nil
	})
	RegisterBackend(BackendNull, func(cfg Config, logger interfaces.Logger) (interfaces.Renderer, error) {
		return NewNullRenderer(), nil
	})
}
