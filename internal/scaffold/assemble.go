package scaffold

import (
	"errors"
	"fmt"
	"strings"
)

// ErrIncompleteArtifact reports an assembled file set that is missing part of
// the guaranteed scaffold. Assemble never produces one; Verify exists as the
// final gate before packaging.
var ErrIncompleteArtifact = errors.New("incomplete scaffold artifact")

// minServerLen is the smallest trimmed server.py accepted from the model.
// Anything shorter is a stub or a refusal, not a backend.
const minServerLen = 50

// Assemble merges model-produced files over the failsafe defaults and
// returns the complete scaffold. Model files win per path; paths the model
// never mentioned keep their default content. A model server.py that is tiny
// or a single line is discarded in favor of the default, and an empty
// requirements.txt or required frontend file is restored. Assemble is total:
// it accepts any input,
// including nil, and always returns a complete file set.
func Assemble(modelFiles map[string]string) map[string]string {
	files := DefaultFiles()
	for path, content := range modelFiles {
		files[path] = content
	}

	if sp := files["server.py"]; len(strings.TrimSpace(sp)) < minServerLen || !strings.Contains(sp, "\n") {
		files["server.py"] = defaultFiles["server.py"]
	}

	if strings.TrimSpace(files["requirements.txt"]) == "" {
		files["requirements.txt"] = defaultFiles["requirements.txt"]
	}

	for _, path := range RequiredFrontendFiles {
		if strings.TrimSpace(files[path]) == "" {
			files[path] = defaultFiles[path]
		}
	}

	return files
}

// Verify checks that files carries the guaranteed scaffold: a viable
// server.py, a requirements.txt and every required frontend file.
func Verify(files map[string]string) error {
	if sp := files["server.py"]; len(strings.TrimSpace(sp)) < minServerLen || !strings.Contains(sp, "\n") {
		return fmt.Errorf("%w: server.py missing or not viable", ErrIncompleteArtifact)
	}
	if strings.TrimSpace(files["requirements.txt"]) == "" {
		return fmt.Errorf("%w: requirements.txt missing", ErrIncompleteArtifact)
	}
	for _, path := range RequiredFrontendFiles {
		if strings.TrimSpace(files[path]) == "" {
			return fmt.Errorf("%w: %s missing", ErrIncompleteArtifact, path)
		}
	}
	return nil
}
