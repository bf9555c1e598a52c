package renderer

import (
	"context"

	"github.com/raysh454/siteforge/internal/model"
)

// NullRenderer is the explicit "no rendering capability configured"
// implementation. Every Render fails with ErrRendererUnavailable, which makes
// the unavailable path directly testable instead of hiding behind a global
// availability flag.
type NullRenderer struct{}

func NewNullRenderer() *NullRenderer { return &NullRenderer{} }

func (*NullRenderer) Render(ctx context.Context, url string) (*model.Capture, error) {
	return nil, ErrRendererUnavailable
}

func (*NullRenderer) Close() error { return nil }
