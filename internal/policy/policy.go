// Package policy implements the pre-flight gate that blocks disallowed crawl
// targets: hosts matching known proprietary-platform markers and hosts whose
// robots.txt disallows all crawling. A second, spec-level check re-applies
// the marker test after aggregation, because a redirect chain can land on a
// disallowed domain even when the original URL passed.
package policy

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/raysh454/siteforge/internal/interfaces"
	"github.com/raysh454/siteforge/internal/utils"
	"github.com/raysh454/siteforge/internal/uxspec"
)

// ErrPolicyViolation is returned for any rejected target. Rejections are
// fatal: the orchestrator must abort before the next expensive stage runs.
var ErrPolicyViolation = errors.New("policy violation")

// DefaultMarkers are hostname substrings of large proprietary platforms this
// tool refuses to scaffold from.
var DefaultMarkers = []string{
	"instagram", "facebook", "whatsapp", "uber", "airbnb",
	"tiktok", "twitter", "snapchat", "x.com",
}

// Config controls the gate.
type Config struct {
	Markers       []string     // nil means DefaultMarkers
	CheckRobots   bool         // fetch and honor a blanket robots disallow
	RobotsClient  *http.Client // nil means a default client with RobotsTimeout
	RobotsTimeout time.Duration
}

// DefaultConfig enables the robots check with a short fail-open timeout.
func DefaultConfig() Config {
	return Config{
		CheckRobots:   true,
		RobotsTimeout: 5 * time.Second,
	}
}

// Gate performs target policy checks.
type Gate struct {
	markers []string
	robots  bool
	client  *http.Client
	logger  interfaces.Logger
}

func NewGate(cfg Config, logger interfaces.Logger) *Gate {
	markers := cfg.Markers
	if markers == nil {
		markers = DefaultMarkers
	}
	client := cfg.RobotsClient
	if client == nil {
		timeout := cfg.RobotsTimeout
		if timeout <= 0 {
			timeout = 5 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}
	return &Gate{
		markers: markers,
		robots:  cfg.CheckRobots,
		client:  client,
		logger:  logger,
	}
}

// CheckURL rejects startURL when its hostname matches a proprietary marker or
// when the host's robots.txt disallows all crawling. It must run before any
// page fetch.
func (g *Gate) CheckURL(ctx context.Context, startURL string) error {
	u, err := utils.NewURLTools(startURL)
	if err != nil {
		return fmt.Errorf("checking policy for %s: %w", startURL, err)
	}

	if marker := g.matchMarker(u.Hostname()); marker != "" {
		return fmt.Errorf("%w: target host %q matches proprietary marker %q", ErrPolicyViolation, u.Hostname(), marker)
	}

	if g.robots {
		if err := g.checkRobots(ctx, u); err != nil {
			return err
		}
	}

	return nil
}

// CheckSpec re-applies the marker test to the aggregated domain and every
// page title. It must run before the model call.
func (g *Gate) CheckSpec(spec *uxspec.Spec) error {
	if marker := g.matchMarker(spec.Domain); marker != "" {
		return fmt.Errorf("%w: aggregated domain %q matches proprietary marker %q", ErrPolicyViolation, spec.Domain, marker)
	}
	for _, page := range spec.Pages {
		if marker := g.matchMarker(page.Title); marker != "" {
			return fmt.Errorf("%w: page title %q matches proprietary marker %q", ErrPolicyViolation, page.Title, marker)
		}
	}
	return nil
}

func (g *Gate) matchMarker(s string) string {
	lower := strings.ToLower(s)
	for _, m := range g.markers {
		if strings.Contains(lower, m) {
			return m
		}
	}
	return ""
}

// checkRobots fetches scheme://host/robots.txt. Any network error or
// non-200 status is treated as allow; only a literal "disallow: /" anywhere
// in the body rejects.
func (g *Gate) checkRobots(ctx context.Context, u *utils.URLTools) error {
	robotsURL := fmt.Sprintf("%s://%s/robots.txt", u.URL.Scheme, u.URL.Host)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
	if err != nil {
		return nil
	}

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.Debug("robots.txt fetch failed, allowing",
			interfaces.Field{Key: "url", Value: robotsURL},
			interfaces.Field{Key: "error", Value: err.Error()})
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil
	}

	if strings.Contains(strings.ToLower(string(body)), "disallow: /") {
		return fmt.Errorf("%w: robots.txt on %s disallows crawling", ErrPolicyViolation, u.URL.Host)
	}
	return nil
}
