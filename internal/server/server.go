// Package server is the local preview surface for an unpacked scaffold. It
// serves the same routes the generated Flask backend does, so a scaffold can
// be inspected before its own backend is set up: a sample /api/data payload,
// an /api/* echo, and the frontend build as a single-page app.
package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/raysh454/siteforge/internal/interfaces"
)

// Server is the scaffold preview HTTP surface.
type Server struct {
	cfg    Config
	router chi.Router
	logger interfaces.Logger
}

func NewServer(cfg Config, logger interfaces.Logger) *Server {
	if cfg.Addr == "" {
		cfg.Addr = DefaultConfig().Addr
	}
	if cfg.ScaffoldDir == "" {
		cfg.ScaffoldDir = DefaultConfig().ScaffoldDir
	}

	s := &Server{
		cfg:    cfg,
		router: chi.NewRouter(),
		logger: logger.With(interfaces.Field{Key: "component", Value: "server"}),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	r := s.router

	r.Use(s.corsMiddleware)

	r.Get("/api/data", s.handleAPIData)
	r.HandleFunc("/api/*", s.handleAPIEcho)
	r.Get("/*", s.handleFrontend)
}

func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Max-Age", "86400")

		next.ServeHTTP(w, r)
	})
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	fields := []interfaces.Field{
		{Key: "method", Value: r.Method},
		{Key: "path", Value: r.URL.Path},
	}
	if q := r.URL.Query(); len(q) > 0 {
		fields = append(fields, interfaces.Field{Key: "query", Value: q})
	}
	s.logger.Debug("http_request", fields...)

	s.router.ServeHTTP(w, r)
}

// ListenAndServe runs the server on the configured address.
func (s *Server) ListenAndServe() error {
	s.logger.Info("preview server listening",
		interfaces.Field{Key: "addr", Value: s.cfg.Addr},
		interfaces.Field{Key: "scaffold", Value: s.cfg.ScaffoldDir})
	return http.ListenAndServe(s.cfg.Addr, s)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// --- HTTP handlers ---

func (s *Server) handleAPIData(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Hello from Flask backend",
		"ok":      true,
	})
}

// handleAPIEcho answers any other /api/ path with a description of the
// request, for easy frontend testing against endpoints that do not exist
// yet.
func (s *Server) handleAPIEcho(w http.ResponseWriter, r *http.Request) {
	args := map[string]string{}
	for k, v := range r.URL.Query() {
		if len(v) > 0 {
			args[k] = v[0]
		}
	}

	info := map[string]any{
		"requested_path": chi.URLParam(r, "*"),
		"method":         r.Method,
		"args":           args,
	}

	info["json"] = nil
	if r.Body != nil {
		if body, err := io.ReadAll(r.Body); err == nil && len(bytes.TrimSpace(body)) > 0 {
			var parsed any
			if err := json.Unmarshal(body, &parsed); err == nil {
				info["json"] = parsed
			}
		}
	}

	writeJSON(w, http.StatusOK, info)
}

// handleFrontend serves the frontend build with an index.html fallback, the
// SPA catch-all. Without a build it answers with instructions instead of a
// 404, same as the generated backend.
func (s *Server) handleFrontend(w http.ResponseWriter, r *http.Request) {
	distDir := filepath.Join(s.cfg.ScaffoldDir, "frontend", "dist")
	path := chi.URLParam(r, "*")

	if path != "" {
		requested := filepath.Join(distDir, filepath.FromSlash(path))
		// Join cleans the path; a traversal attempt lands outside distDir.
		if strings.HasPrefix(requested, filepath.Clean(distDir)+string(os.PathSeparator)) {
			if info, err := os.Stat(requested); err == nil && !info.IsDir() {
				http.ServeFile(w, r, requested)
				return
			}
		}
	}

	indexPath := filepath.Join(distDir, "index.html")
	if _, err := os.Stat(indexPath); err == nil {
		http.ServeFile(w, r, indexPath)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Frontend build not found. Run `cd frontend && npm install && npm run build`.",
	})
}
