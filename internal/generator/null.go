package generator

import "context"

// NullGenerator is the stand-in when no model is configured. Every call
// reports ErrModelUnavailable, which downstream turns into the default
// scaffold.
type NullGenerator struct{}

func NewNullGenerator() *NullGenerator { return &NullGenerator{} }

func (g *NullGenerator) Generate(ctx context.Context, system, prompt string) (string, error) {
	return "", ErrModelUnavailable
}

func (g *NullGenerator) Name() string { return BackendNull }
