package demosite

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/raysh454/siteforge/internal/classifier"
	"github.com/raysh454/siteforge/internal/crawler"
	"github.com/raysh454/siteforge/internal/logging"
	"github.com/raysh454/siteforge/internal/renderer"
	"github.com/raysh454/siteforge/internal/uxspec"
)

// The demo site exists to exercise the pipeline, so the test does exactly
// that: crawl it, classify it, and check the features surface.
func TestPipelineAgainstDemoSite(t *testing.T) {
	srv := httptest.NewServer(NewDemoSite(DefaultConfig()).Handler())
	defer srv.Close()

	logger := logging.NewNop()
	r := renderer.NewNetHTTPRenderer(renderer.Config{}, logger)
	engine := crawler.NewEngine(crawler.Config{MaxPages: 10, MaxDepth: 2}, r, logger)

	records, err := engine.Crawl(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Crawl: %v", err)
	}
	if len(records) != len(GetAllPages()) {
		t.Fatalf("crawled %d pages, want %d", len(records), len(GetAllPages()))
	}

	spec, err := classifier.Aggregate(records, logger)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}

	features := make(map[uxspec.FeatureTag]bool)
	var forms, tables int
	for _, page := range spec.Pages {
		for _, tag := range page.Features {
			features[tag] = true
		}
		for _, c := range page.Components {
			switch c.ComponentType() {
			case uxspec.TypeForm:
				forms++
			case uxspec.TypeTable:
				tables++
			}
		}
	}

	if !features[uxspec.AuthFormDetected] {
		t.Error("login page did not surface the auth feature")
	}
	if !features[uxspec.SearchFeatureDetected] {
		t.Error("search page did not surface the search feature")
	}
	if forms < 3 {
		t.Errorf("expected at least 3 forms across the site, got %d", forms)
	}
	if tables < 1 {
		t.Errorf("expected a product table, got %d", tables)
	}
}
