package interfaces

import "context"

// Generator is the opaque generative-text capability: instruction text in,
// free-form text out. Implementations make exactly one attempt; retry or
// fallback policy belongs to the caller.
type Generator interface {
	// Generate sends the system role string and the instruction payload and
	// returns the raw response text. An unreachable or unconfigured backend,
	// and an empty response, are both reported as errors.
	Generate(ctx context.Context, system, prompt string) (string, error)

	// Name identifies the backend for logging.
	Name() string
}
