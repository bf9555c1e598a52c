package generator

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSanitize(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    string
		wantErr error
	}{
		{
			name: "bare object",
			in:   `{"files": {"a.txt": "hi"}}`,
			want: `{"files": {"a.txt": "hi"}}`,
		},
		{
			name: "json fence with commentary",
			in:   "Here is your project:\n```json\n{\"files\": {}}\n```\nLet me know if you need changes!",
			want: `{"files": {}}`,
		},
		{
			name: "anonymous fence",
			in:   "```\n{\"files\": {}}\n```",
			want: `{"files": {}}`,
		},
		{
			name: "uppercase fence tag",
			in:   "```JSON\n{\"ok\": true}\n```",
			want: `{"ok": true}`,
		},
		{
			name: "first fence wins",
			in:   "```json\n{\"first\": 1}\n```\nand also\n```json\n{\"second\": 2}\n```",
			want: `{"first": 1}`,
		},
		{
			name: "leading prose without fences",
			in:   `Sure thing! The object you asked for is {"a": {"b": 2}} as requested.`,
			want: `{"a": {"b": 2}}`,
		},
		{
			name: "triple quotes collapsed",
			in:   `{"""files""": {"""a.py""": """print(1)"""}}`,
			want: `{"files": {"a.py": "print(1)"}}`,
		},
		{
			name: "empty fence pair falls back to full text",
			in:   "I could not format this properly ``` ``` {\"files\": {\"a\": \"b\"}}",
			want: `{"files": {"a": "b"}}`,
		},
		{
			name:    "no object at all",
			in:      "I am sorry, I cannot help with that.",
			wantErr: ErrNoJSONFound,
		},
		{
			name:    "unterminated object",
			in:      `{"files": {"a.txt": "hi"`,
			wantErr: ErrUnbalancedOutput,
		},
		{
			name:    "empty input",
			in:      "",
			wantErr: ErrNoJSONFound,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Sanitize(tc.in)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("got error %v, want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Sanitize: %v", err)
			}
			if got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestParseFiles(t *testing.T) {
	raw := "```json\n" + `{
  "files": {
    "server.py": "from flask import Flask\napp = Flask(__name__)\n",
    "README.md": "# App\n"
  }
}` + "\n```"

	files, err := ParseFiles(raw)
	if err != nil {
		t.Fatalf("ParseFiles: %v", err)
	}
	want := map[string]string{
		"server.py": "from flask import Flask\napp = Flask(__name__)\n",
		"README.md": "# App\n",
	}
	if diff := cmp.Diff(want, files); diff != "" {
		t.Errorf("files mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFilesNonStringValues(t *testing.T) {
	raw := `{"files": {"frontend/package.json": {"name": "app", "private": true}, "count.txt": 3}}`

	files, err := ParseFiles(raw)
	if err != nil {
		t.Fatalf("ParseFiles: %v", err)
	}

	var pkg map[string]interface{}
	if err := json.Unmarshal([]byte(files["frontend/package.json"]), &pkg); err != nil {
		t.Fatalf("package.json value not valid JSON: %v", err)
	}
	if pkg["name"] != "app" {
		t.Errorf("object value lost content: %q", files["frontend/package.json"])
	}
	if !strings.Contains(files["frontend/package.json"], "\n") {
		t.Error("object value should be indented JSON")
	}
	if files["count.txt"] != "3" {
		t.Errorf("scalar value: got %q, want %q", files["count.txt"], "3")
	}
}

func TestParseFilesErrors(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		wantErr error
	}{
		{"missing files key", `{"result": "done"}`, ErrMissingFilesKey},
		{"files not an object", `{"files": ["server.py"]}`, ErrMissingFilesKey},
		{"broken json", `{"files": {"a": "b",}}`, ErrMalformedJSON},
		{"no json", "nothing here", ErrNoJSONFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseFiles(tc.in); !errors.Is(err, tc.wantErr) {
				t.Errorf("got %v, want %v", err, tc.wantErr)
			}
		})
	}
}
