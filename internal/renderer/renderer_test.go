package renderer_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/raysh454/siteforge/internal/logging"
	"github.com/raysh454/siteforge/internal/renderer"
)

func TestFactoryUnknownBackend(t *testing.T) {
	_, err := renderer.NewRenderer(renderer.Config{Backend: "playwright"}, logging.NewNop())
	if err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestFactoryNullBackend(t *testing.T) {
	r, err := renderer.NewRenderer(renderer.Config{Backend: renderer.BackendNull}, logging.NewNop())
	if err != nil {
		t.Fatalf("NewRenderer(null): %v", err)
	}
	defer r.Close()

	_, err = r.Render(context.Background(), "https://example.com")
	if !errors.Is(err, renderer.ErrRendererUnavailable) {
		t.Errorf("null renderer returned %v, want ErrRendererUnavailable", err)
	}
}

func TestNetHTTPRender(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		io.WriteString(w, "<html><body><h1>hello</h1></body></html>")
	}))
	defer srv.Close()

	r, err := renderer.NewRenderer(renderer.Config{Backend: renderer.BackendNetHTTP}, logging.NewNop())
	if err != nil {
		t.Fatalf("NewRenderer(nethttp): %v", err)
	}
	defer r.Close()

	capture, err := r.Render(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(capture.HTML, "<h1>hello</h1>") {
		t.Errorf("capture HTML = %q", capture.HTML)
	}
	if capture.Screenshot != nil {
		t.Error("nethttp backend should not produce screenshots")
	}
}

func TestNetHTTPRenderErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	r, _ := renderer.NewRenderer(renderer.Config{Backend: renderer.BackendNetHTTP}, logging.NewNop())
	defer r.Close()

	if _, err := r.Render(context.Background(), srv.URL); err == nil {
		t.Error("expected error for 500 response")
	}
}
