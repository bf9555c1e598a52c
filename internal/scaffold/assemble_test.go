package scaffold

import (
	"archive/zip"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestAssembleNilInputYieldsCompleteDefaults(t *testing.T) {
	files := Assemble(nil)

	if err := Verify(files); err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !strings.Contains(files["server.py"], "Flask") {
		t.Error("default server.py missing Flask backend")
	}
	if !strings.Contains(files["requirements.txt"], "flask_cors") {
		t.Error("default requirements.txt missing flask_cors")
	}
	if strings.Contains(files["frontend/index.html"], "/src/main.jsx") {
		t.Error("default index.html must not reference /src/main.jsx")
	}
}

func TestAssembleModelFilesWin(t *testing.T) {
	model := map[string]string{
		"README.md":              "# Custom readme\nfor this app\n",
		"frontend/src/Extra.jsx": "export default () => null;\n",
	}

	files := Assemble(model)

	if files["README.md"] != model["README.md"] {
		t.Error("model README.md not kept")
	}
	if files["frontend/src/Extra.jsx"] != model["frontend/src/Extra.jsx"] {
		t.Error("extra model file dropped")
	}
	// untouched paths keep their defaults
	if files["server.py"] != defaultFiles["server.py"] {
		t.Error("server.py should stay default when model omits it")
	}
}

func TestAssembleRejectsNonViableServer(t *testing.T) {
	cases := []struct {
		name   string
		server string
	}{
		{"tiny stub", "app = Flask()\n"},
		{"one liner", "import os; from flask import Flask; app = Flask(__name__); app.run() # " + strings.Repeat("x", 60)},
		{"whitespace only", "   \n  \n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			files := Assemble(map[string]string{"server.py": tc.server})
			if files["server.py"] != defaultFiles["server.py"] {
				t.Errorf("non-viable server.py kept: %q", files["server.py"])
			}
		})
	}
}

func TestAssembleKeepsViableServer(t *testing.T) {
	server := "from flask import Flask\n\napp = Flask(__name__)\n\n@app.route('/api/data')\ndef data():\n    return {'ok': True}\n"
	files := Assemble(map[string]string{"server.py": server})
	if files["server.py"] != server {
		t.Error("viable model server.py replaced")
	}
}

func TestAssembleRestoresEmptyRequirements(t *testing.T) {
	files := Assemble(map[string]string{"requirements.txt": "   \n"})
	if files["requirements.txt"] != defaultFiles["requirements.txt"] {
		t.Error("blank requirements.txt not restored")
	}
}

func TestAssembleRestoresBlankFrontendFiles(t *testing.T) {
	files := Assemble(map[string]string{
		"frontend/index.html":  "",
		"frontend/src/App.jsx": "  \n\t",
	})

	if err := Verify(files); err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if files["frontend/index.html"] != defaultFiles["frontend/index.html"] {
		t.Error("empty index.html not restored")
	}
	if files["frontend/src/App.jsx"] != defaultFiles["frontend/src/App.jsx"] {
		t.Error("whitespace-only App.jsx not restored")
	}
}

func TestVerifyIncomplete(t *testing.T) {
	files := Assemble(nil)
	delete(files, "frontend/src/App.jsx")
	if err := Verify(files); err == nil {
		t.Fatal("expected Verify to fail on missing App.jsx")
	}
}

func TestZipPackagerRoundTrip(t *testing.T) {
	files := Assemble(map[string]string{
		`windows\style\path.txt`: "content",
	})

	outPath := filepath.Join(t.TempDir(), "out.zip")
	if err := NewZipPackager().Package(files, outPath); err != nil {
		t.Fatalf("Package: %v", err)
	}

	zr, err := zip.OpenReader(outPath)
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer zr.Close()

	got := make(map[string]bool, len(zr.File))
	var names []string
	for _, f := range zr.File {
		got[f.Name] = true
		names = append(names, f.Name)
	}

	for path := range files {
		want := strings.ReplaceAll(path, `\`, "/")
		if !got[want] {
			t.Errorf("archive missing entry %s", want)
		}
	}
	if got[`windows\style\path.txt`] {
		t.Error("backslash path not normalized")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("entries not sorted: %s before %s", names[i-1], names[i])
		}
	}
}

func TestArchiveName(t *testing.T) {
	now := time.Date(2025, 3, 9, 14, 30, 5, 0, time.UTC)
	got := ArchiveName("My App", now)
	want := "My_App_scaffold_20250309143005.zip"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
