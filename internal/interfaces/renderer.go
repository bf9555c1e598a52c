package interfaces

import (
	"context"

	"github.com/raysh454/siteforge/internal/model"
)

// Renderer is the page-rendering capability used by the crawl engine. One
// renderer session is shared across a whole crawl; calls are sequential by
// construction, so implementations do not need to be safe for concurrent use.
type Renderer interface {
	// Render navigates to url, waits for the page to settle and returns the
	// rendered document. A timeout on navigation or on the idle wait is a
	// capture failure, reported as an error; the caller decides whether that
	// is fatal.
	Render(ctx context.Context, url string) (*model.Capture, error)

	Close() error
}
