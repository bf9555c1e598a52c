// Package demosite is a small self-contained sample site for trying the
// pipeline without a real target: a handful of linked pages carrying the
// component kinds the classifier knows about, including a login form and a
// search box.
package demosite

import (
	"fmt"
	"net/http"
)

// Config holds configuration for the demo site.
type Config struct {
	// Port is the port on which the demo site listens.
	Port int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{Port: 9999}
}

// DemoSite serves the canned pages.
type DemoSite struct {
	cfg   Config
	pages map[string]PageDefinition
}

// NewDemoSite creates a new demo site instance.
func NewDemoSite(cfg Config) *DemoSite {
	pageMap := make(map[string]PageDefinition)
	for _, p := range GetAllPages() {
		pageMap[p.Path] = p
	}
	return &DemoSite{cfg: cfg, pages: pageMap}
}

// Handler returns the site's HTTP handler, usable directly in tests.
func (s *DemoSite) Handler() http.Handler {
	mux := http.NewServeMux()

	for path := range s.pages {
		p := path // capture for closure
		mux.HandleFunc(p, s.pageHandler(p))
	}
	mux.HandleFunc("/static/", s.staticHandler)

	return mux
}

// Start starts the demo site.
func (s *DemoSite) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	fmt.Printf("Demo site starting on http://localhost%s\n", addr)
	return http.ListenAndServe(addr, s.Handler())
}

func (s *DemoSite) pageHandler(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, ok := s.pages[path]
		if !ok || r.URL.Path != path {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(page.HTML))
	}
}

// staticHandler serves placeholder static files.
func (s *DemoSite) staticHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/javascript")
	_, _ = w.Write([]byte(`// Demo static file: ` + r.URL.Path + `
console.log("Loaded: ` + r.URL.Path + `");
`))
}
