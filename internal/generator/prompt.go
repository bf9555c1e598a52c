package generator

import (
	"encoding/json"

	"github.com/raysh454/siteforge/internal/uxspec"
)

// SystemPrompt is the system role string sent with every generation request.
const SystemPrompt = "Return ONLY valid JSON containing a 'files' mapping."

// maxSpecChars caps the embedded ux spec so the prompt stays inside the
// model's context window.
const maxSpecChars = 6000

const promptHeader = `You MUST output ONLY valid JSON.
NO markdown. NO ` + "```" + ` blocks. NO commentary. NO triple quotes.

RULES:
- Output a single JSON object with top-level key "files".
- Each file value MUST be a JSON string containing \n newlines.
- The content of server.py must fully support serving the React build.
- The frontend/index.html MUST NOT contain a reference to /src/main.jsx, as Vite injects the production build script automatically.
- NEVER use markdown formatting.
- NEVER wrap code in backticks.
- NEVER output extra explanation outside JSON.

GENERATE THIS PROJECT STRUCTURE:

1. Backend (Flask):
   - server.py:
        * serves API at /api/*
        * React build served from /frontend/dist using a custom route (static_folder=None)
        * fallback route returns index.html

2. requirements.txt:
        flask
        flask_cors

3. React Frontend (Vite + React):
   folder: frontend/

   MUST INCLUDE:
   - frontend/package.json
   - frontend/vite.config.js
   - frontend/index.html
   - frontend/src/main.jsx
   - frontend/src/App.jsx
   - frontend/src/components/AutoLayout.jsx

   App.jsx should fetch /api/data and render components based on the UX SPEC.

4. README.md: instructions for backend + frontend setup

UX SPEC FOR CONTEXT (Use this to design the front-end components and layout in App.jsx):
`

const promptFooter = `

OUTPUT EXACTLY AS JSON:
{
  "files": {
    "server.py": "...",
    "requirements.txt": "...",
    "frontend/package.json": "...",
    "frontend/vite.config.js": "...",
    "frontend/index.html": "...",
    "frontend/src/main.jsx": "...",
    "frontend/src/App.jsx": "...",
    "frontend/src/components/AutoLayout.jsx": "...",
    "README.md": "..."
  }
}
`

// BuildPrompt renders the generation instruction with the ux spec embedded.
// A spec larger than maxSpecChars is embedded truncated; the head of the
// indented JSON carries the domain and the first pages, which is what the
// model needs most.
func BuildPrompt(spec *uxspec.Spec) (string, error) {
	specJSON, err := json.MarshalIndent(spec, "", "  ")
	if err != nil {
		return "", err
	}
	embedded := string(specJSON)
	if runes := []rune(embedded); len(runes) > maxSpecChars {
		embedded = string(runes[:maxSpecChars])
	}
	return promptHeader + embedded + promptFooter, nil
}
