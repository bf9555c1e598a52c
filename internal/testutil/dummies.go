// Package testutil provides shared test doubles for use across package tests.
// All dummies implement the corresponding interfaces from the production code,
// allowing injection into components under test without real I/O or side effects.
package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/raysh454/siteforge/internal/logging"
	"github.com/raysh454/siteforge/internal/model"
)

// ─── Logger ────────────────────────────────────────────────────────────

// DummyLogger implements logging.Logger with in-memory recording.
type DummyLogger struct {
	mu     sync.Mutex
	Errors []string
	Infos  []string
	Debugs []string
	Warns  []string
}

func (l *DummyLogger) Debug(msg string, fields ...logging.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Debugs = append(l.Debugs, msg)
}

func (l *DummyLogger) Info(msg string, fields ...logging.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Infos = append(l.Infos, msg)
}

func (l *DummyLogger) Warn(msg string, fields ...logging.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Warns = append(l.Warns, msg)
}

func (l *DummyLogger) Error(msg string, fields ...logging.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Errors = append(l.Errors, msg)
}

func (l *DummyLogger) With(_ ...logging.Field) logging.Logger { return l }

// ─── Renderer ──────────────────────────────────────────────────────────

// DummyRenderer implements interfaces.Renderer from a canned URL→HTML map.
// URLs absent from Pages, or listed in FailURLs, return an error. Set Err to
// force every Render call to fail with that exact error.
type DummyRenderer struct {
	Pages    map[string]string
	FailURLs map[string]bool
	Err      error

	mu       sync.Mutex
	Rendered []string
}

func (d *DummyRenderer) Render(_ context.Context, url string) (*model.Capture, error) {
	d.mu.Lock()
	d.Rendered = append(d.Rendered, url)
	d.mu.Unlock()

	if d.Err != nil {
		return nil, d.Err
	}
	if d.FailURLs != nil && d.FailURLs[url] {
		return nil, &errString{"dummy render fail for " + url}
	}
	html, ok := d.Pages[url]
	if !ok {
		return nil, &errString{"dummy renderer has no page for " + url}
	}
	return &model.Capture{
		URL:       url,
		HTML:      html,
		FetchedAt: time.Now(),
	}, nil
}

func (d *DummyRenderer) Close() error { return nil }

// ─── Generator ─────────────────────────────────────────────────────────

// DummyGenerator implements interfaces.Generator with a preconfigured
// response. It records the prompts it was given.
type DummyGenerator struct {
	Response string
	Err      error

	mu      sync.Mutex
	Systems []string
	Prompts []string
}

func (d *DummyGenerator) Generate(_ context.Context, system, prompt string) (string, error) {
	d.mu.Lock()
	d.Systems = append(d.Systems, system)
	d.Prompts = append(d.Prompts, prompt)
	d.mu.Unlock()

	if d.Err != nil {
		return "", d.Err
	}
	return d.Response, nil
}

func (d *DummyGenerator) Name() string { return "dummy" }

// ─── Packager ──────────────────────────────────────────────────────────

// DummyPackager implements interfaces.Packager with in-memory recording.
type DummyPackager struct {
	Err error

	mu    sync.Mutex
	Files map[string]string
	Path  string
}

func (d *DummyPackager) Package(files map[string]string, outPath string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.Err != nil {
		return d.Err
	}
	d.Files = make(map[string]string, len(files))
	for k, v := range files {
		d.Files[k] = v
	}
	d.Path = outPath
	return nil
}

// ─── helpers ───────────────────────────────────────────────────────────

type errString struct{ s string }

func (e *errString) Error() string { return e.s }
