package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/raysh454/siteforge/internal/testutil"
)

func newTestServer(t *testing.T, scaffoldDir string) *Server {
	t.Helper()
	return NewServer(Config{Addr: ":0", ScaffoldDir: scaffoldDir}, &testutil.DummyLogger{})
}

func getJSON(t *testing.T, s *Server, method, target, body string) (int, map[string]any) {
	t.Helper()
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, reader)
	rr := httptest.NewRecorder()
	s.ServeHTTP(rr, req)

	var decoded map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("response not JSON: %v\n%s", err, rr.Body.String())
	}
	return rr.Code, decoded
}

func TestAPIData(t *testing.T) {
	s := newTestServer(t, t.TempDir())

	code, body := getJSON(t, s, http.MethodGet, "/api/data", "")
	if code != http.StatusOK {
		t.Fatalf("status %d", code)
	}
	if body["ok"] != true {
		t.Errorf("unexpected payload: %v", body)
	}
}

func TestAPIEcho(t *testing.T) {
	s := newTestServer(t, t.TempDir())

	code, body := getJSON(t, s, http.MethodPost, "/api/items/42?verbose=1", `{"name": "widget"}`)
	if code != http.StatusOK {
		t.Fatalf("status %d", code)
	}
	if body["requested_path"] != "items/42" {
		t.Errorf("requested_path: %v", body["requested_path"])
	}
	if body["method"] != http.MethodPost {
		t.Errorf("method: %v", body["method"])
	}
	args, _ := body["args"].(map[string]any)
	if args["verbose"] != "1" {
		t.Errorf("args: %v", body["args"])
	}
	parsed, _ := body["json"].(map[string]any)
	if parsed["name"] != "widget" {
		t.Errorf("json body: %v", body["json"])
	}
}

func TestFrontendWithoutBuild(t *testing.T) {
	s := newTestServer(t, t.TempDir())

	code, body := getJSON(t, s, http.MethodGet, "/", "")
	if code != http.StatusOK {
		t.Fatalf("status %d", code)
	}
	msg, _ := body["message"].(string)
	if !strings.Contains(msg, "Frontend build not found") {
		t.Errorf("unexpected message: %q", msg)
	}
}

func TestFrontendServesBuildAndSPAFallback(t *testing.T) {
	dir := t.TempDir()
	distDir := filepath.Join(dir, "frontend", "dist", "assets")
	if err := os.MkdirAll(distDir, 0o755); err != nil {
		t.Fatal(err)
	}
	index := "<html><body>built app</body></html>"
	if err := os.WriteFile(filepath.Join(dir, "frontend", "dist", "index.html"), []byte(index), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(distDir, "app.js"), []byte("console.log(1);"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := newTestServer(t, dir)

	// exact asset
	req := httptest.NewRequest(http.MethodGet, "/assets/app.js", nil)
	rr := httptest.NewRecorder()
	s.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), "console.log") {
		t.Errorf("asset not served: %d %q", rr.Code, rr.Body.String())
	}

	// unknown route falls back to index.html
	for _, target := range []string{"/", "/some/client/route"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rr := httptest.NewRecorder()
		s.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK || rr.Body.String() != index {
			t.Errorf("%s: want SPA fallback, got %d %q", target, rr.Code, rr.Body.String())
		}
	}
}
