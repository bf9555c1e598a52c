package renderer

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
	"github.com/raysh454/siteforge/internal/interfaces"
	"github.com/raysh454/siteforge/internal/model"
)

// ChromedpRenderer drives one headless browser shared across a whole crawl.
// Each Render call opens a fresh tab in that browser, so page state never
// leaks between visits, while the browser process itself is reused.
type ChromedpRenderer struct {
	cfg    Config
	logger interfaces.Logger

	allocCtx    context.Context
	allocCancel context.CancelFunc
	browserCtx  context.Context
	browserStop context.CancelFunc
}

// NewChromedpRenderer launches the browser eagerly so an unusable environment
// surfaces before the crawl starts, wrapped as ErrRendererUnavailable.
func NewChromedpRenderer(cfg Config, logger interfaces.Logger) (*ChromedpRenderer, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", cfg.Headless),
		chromedp.Flag("ignore-certificate-errors", true),
	)

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)
	browserCtx, browserStop := chromedp.NewContext(allocCtx)

	if err := chromedp.Run(browserCtx); err != nil {
		browserStop()
		allocCancel()
		return nil, fmt.Errorf("%w: launching browser: %v", ErrRendererUnavailable, err)
	}

	logger.Debug("chromedp renderer ready",
		interfaces.Field{Key: "headless", Value: cfg.Headless})

	return &ChromedpRenderer{
		cfg:         cfg,
		logger:      logger.With(interfaces.Field{Key: "backend", Value: BackendChromedp}),
		allocCtx:    allocCtx,
		allocCancel: allocCancel,
		browserCtx:  browserCtx,
		browserStop: browserStop,
	}, nil
}

// waitNetworkIdle returns a channel that is closed once no request has been
// in flight for idleAfter. It must be attached before navigation starts.
func waitNetworkIdle(ctx context.Context, idleAfter time.Duration) <-chan struct{} {
	idleChan := make(chan struct{})
	var activeReqs int32
	var timer *time.Timer
	var timerMutex sync.Mutex
	var once sync.Once

	startTimer := func() {
		timerMutex.Lock()
		defer timerMutex.Unlock()

		if timer != nil {
			timer.Stop()
		}

		timer = time.AfterFunc(idleAfter, func() {
			if atomic.LoadInt32(&activeReqs) == 0 {
				once.Do(func() { close(idleChan) })
			}
		})
	}

	chromedp.ListenTarget(ctx, func(ev any) {
		switch ev.(type) {
		case *network.EventRequestWillBeSent:
			atomic.AddInt32(&activeReqs, 1)
		case *network.EventLoadingFinished, *network.EventLoadingFailed:
			if atomic.AddInt32(&activeReqs, -1) <= 0 {
				startTimer()
			}
		}
	})

	// Arm once up front so a page with no subresources still goes idle.
	startTimer()

	return idleChan
}

// Render navigates one tab to url, waits for the network to go idle (bounded
// by IdleTimeout; exceeding it captures the page as-is) and returns the
// rendered document plus an optional full-page screenshot.
func (r *ChromedpRenderer) Render(ctx context.Context, url string) (*model.Capture, error) {
	tabCtx, cancel := chromedp.NewContext(r.browserCtx)
	defer cancel()

	idleChan := waitNetworkIdle(tabCtx, r.cfg.IdleAfter)

	navCtx, navCancel := context.WithTimeout(tabCtx, r.cfg.NavigationTimeout)
	defer navCancel()

	if err := chromedp.Run(navCtx, chromedp.Navigate(url)); err != nil {
		return nil, fmt.Errorf("navigate %s: %w", url, err)
	}

	select {
	case <-idleChan:
	case <-time.After(r.cfg.IdleTimeout):
		r.logger.Debug("idle wait timed out, capturing page as-is",
			interfaces.Field{Key: "url", Value: url})
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	var html string
	if err := chromedp.Run(tabCtx, chromedp.OuterHTML("html", &html)); err != nil {
		return nil, fmt.Errorf("capture %s: %w", url, err)
	}

	var screenshot []byte
	if r.cfg.CaptureScreenshots {
		if err := chromedp.Run(tabCtx, chromedp.FullScreenshot(&screenshot, 90)); err != nil {
			// A failed screenshot is not a failed capture.
			r.logger.Warn("screenshot failed",
				interfaces.Field{Key: "url", Value: url},
				interfaces.Field{Key: "error", Value: err.Error()})
			screenshot = nil
		}
	}

	return &model.Capture{
		URL:        url,
		HTML:       html,
		Screenshot: screenshot,
		FetchedAt:  time.Now().UTC(),
	}, nil
}

func (r *ChromedpRenderer) Close() error {
	r.browserStop()
	r.allocCancel()
	return nil
}
