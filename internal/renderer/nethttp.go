package renderer

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/raysh454/siteforge/internal/interfaces"
	"github.com/raysh454/siteforge/internal/model"
)

// NetHTTPRenderer fetches raw HTML over net/http. It cannot execute scripts
// or take screenshots, which is fine for static sites and for tests.
type NetHTTPRenderer struct {
	client *http.Client
	logger interfaces.Logger
}

func NewNetHTTPRenderer(cfg Config, logger interfaces.Logger) *NetHTTPRenderer {
	timeout := cfg.NavigationTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &NetHTTPRenderer{
		client: &http.Client{Timeout: timeout},
		logger: logger.With(interfaces.Field{Key: "backend", Value: BackendNetHTTP}),
	}
}

func (r *NetHTTPRenderer) Render(ctx context.Context, url string) (*model.Capture, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body %s: %w", url, err)
	}

	return &model.Capture{
		URL:       url,
		HTML:      string(body),
		FetchedAt: time.Now().UTC(),
	}, nil
}

func (r *NetHTTPRenderer) Close() error { return nil }
