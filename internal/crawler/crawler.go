// Package crawler implements bounded breadth-first traversal of same-domain
// pages through a page-rendering capability. Each visited page contributes
// exactly one PageRecord whether or not its capture succeeded; traversal
// stops when the queue drains or the page budget is exhausted.
package crawler

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/raysh454/siteforge/internal/interfaces"
	"github.com/raysh454/siteforge/internal/model"
	"github.com/raysh454/siteforge/internal/renderer"
	"github.com/raysh454/siteforge/internal/utils"
)

// Config bounds a crawl run.
type Config struct {
	MaxPages int
	MaxDepth int

	// OutputDir, when set, receives per-page HTML and screenshot files plus
	// the crawl index.
	OutputDir string

	// SnippetMaxLen caps the plain-text snippet stored per page.
	SnippetMaxLen int
}

// DefaultConfig mirrors the stock CLI limits.
func DefaultConfig() Config {
	return Config{
		MaxPages:      20,
		MaxDepth:      2,
		SnippetMaxLen: 2000,
	}
}

// Engine is the crawl engine. It owns the PageRecords it produces until the
// crawl returns; the single renderer session is used strictly sequentially.
type Engine struct {
	cfg      Config
	renderer interfaces.Renderer
	logger   interfaces.Logger

	// OnPage, when set, is called after each page is recorded. Used for
	// progress display.
	OnPage func(rec *model.PageRecord, visited, budget int)
}

func NewEngine(cfg Config, r interfaces.Renderer, logger interfaces.Logger) *Engine {
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = DefaultConfig().MaxPages
	}
	if cfg.MaxDepth < 0 {
		cfg.MaxDepth = 0
	}
	if cfg.SnippetMaxLen <= 0 {
		cfg.SnippetMaxLen = DefaultConfig().SnippetMaxLen
	}
	return &Engine{
		cfg:      cfg,
		renderer: r,
		logger:   logger.With(interfaces.Field{Key: "component", Value: "crawler"}),
	}
}

// Crawl walks the site breadth-first starting at startURL. Capture failures
// are per-page and non-fatal; losing the rendering capability itself is
// fatal. The returned records are in visit order.
func (e *Engine) Crawl(ctx context.Context, startURL string) ([]*model.PageRecord, error) {
	root, err := utils.NewURLTools(startURL)
	if err != nil {
		return nil, fmt.Errorf("parsing start url: %w", err)
	}
	start := root.URL.String()

	visited := make(map[string]bool)
	enqueued := map[string]bool{start: true}
	queue := []model.Task{{URL: start, Depth: 0}}

	var records []*model.PageRecord

	for len(queue) > 0 && len(visited) < e.cfg.MaxPages {
		task := queue[0]
		queue = queue[1:]

		if visited[task.URL] || task.Depth > e.cfg.MaxDepth {
			continue
		}

		rec, err := e.visit(ctx, task, root)
		if err != nil {
			return nil, err
		}

		visited[task.URL] = true
		records = append(records, rec)

		for _, link := range rec.Links {
			if visited[link] || enqueued[link] {
				continue
			}
			if len(visited)+len(queue) >= e.cfg.MaxPages {
				break
			}
			enqueued[link] = true
			queue = append(queue, model.Task{URL: link, Depth: task.Depth + 1})
		}

		if e.OnPage != nil {
			e.OnPage(rec, len(visited), e.cfg.MaxPages)
		}
	}

	return records, nil
}

// visit captures one page and builds its record. A failed capture yields a
// record with no HTML and no links.
func (e *Engine) visit(ctx context.Context, task model.Task, root *utils.URLTools) (*model.PageRecord, error) {
	rec := &model.PageRecord{
		URL:   task.URL,
		Depth: task.Depth,
	}

	capture, err := e.renderer.Render(ctx, task.URL)
	if err != nil {
		if errors.Is(err, renderer.ErrRendererUnavailable) {
			return nil, fmt.Errorf("rendering capability lost: %w", err)
		}
		e.logger.Warn("page capture failed",
			interfaces.Field{Key: "url", Value: task.URL},
			interfaces.Field{Key: "depth", Value: task.Depth},
			interfaces.Field{Key: "error", Value: err.Error()})
		return rec, nil
	}

	rec.HTML = capture.HTML
	rec.TextSnippet = ExtractText(capture.HTML, e.cfg.SnippetMaxLen)
	rec.Links = ExtractLinks(capture.HTML, task.URL, root)

	if e.cfg.OutputDir != "" {
		e.persistCapture(rec, capture)
	}

	e.logger.Debug("page visited",
		interfaces.Field{Key: "url", Value: task.URL},
		interfaces.Field{Key: "depth", Value: task.Depth},
		interfaces.Field{Key: "links", Value: len(rec.Links)})

	return rec, nil
}

// persistCapture writes the page HTML and screenshot under OutputDir. Write
// failures degrade the record (missing paths) without failing the visit.
func (e *Engine) persistCapture(rec *model.PageRecord, capture *model.Capture) {
	if err := os.MkdirAll(e.cfg.OutputDir, 0o755); err != nil {
		e.logger.Warn("creating crawl output dir",
			interfaces.Field{Key: "dir", Value: e.cfg.OutputDir},
			interfaces.Field{Key: "error", Value: err.Error()})
		return
	}

	base := fmt.Sprintf("%s_%d", utils.SafeFileName(rec.URL, 120), time.Now().Unix())

	htmlPath := filepath.Join(e.cfg.OutputDir, base+".html")
	if err := os.WriteFile(htmlPath, []byte(capture.HTML), 0o644); err != nil {
		e.logger.Warn("writing page html",
			interfaces.Field{Key: "path", Value: htmlPath},
			interfaces.Field{Key: "error", Value: err.Error()})
	} else {
		rec.HTMLPath = htmlPath
	}

	if len(capture.Screenshot) > 0 {
		shotPath := filepath.Join(e.cfg.OutputDir, base+".png")
		if err := os.WriteFile(shotPath, capture.Screenshot, 0o644); err != nil {
			e.logger.Warn("writing screenshot",
				interfaces.Field{Key: "path", Value: shotPath},
				interfaces.Field{Key: "error", Value: err.Error()})
		} else {
			rec.ScreenshotPath = shotPath
		}
	}
}
