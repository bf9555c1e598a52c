package model

import "time"

// Capture is the result of rendering one page.
type Capture struct {
	URL        string
	HTML       string
	Screenshot []byte // full-page PNG, may be nil when the backend cannot produce one
	FetchedAt  time.Time
}

// Task is one queued unit of crawl work. Depth is the BFS distance from the
// start URL.
type Task struct {
	URL   string
	Depth int
}

// PageRecord is the capture record for one visited page. It is owned by the
// crawl engine until the crawl finishes and is immutable afterwards.
//
// HTML and ScreenshotPath are empty when the capture failed for this page;
// that is a per-page condition, not a traversal failure. TextSnippet and
// Links are extracted from whatever markup was available (possibly none).
type PageRecord struct {
	URL            string
	Depth          int
	HTML           string
	HTMLPath       string
	ScreenshotPath string
	TextSnippet    string
	Links          []string
}

// Captured reports whether page content was actually obtained.
func (r *PageRecord) Captured() bool { return r.HTML != "" }

// IndexEntry is the persisted JSON form of a PageRecord in the crawl index.
type IndexEntry struct {
	URL         string   `json:"url"`
	Screenshot  *string  `json:"screenshot"` // null when no screenshot was written
	HTML        string   `json:"html"`
	TextSnippet string   `json:"text_snippet"`
	Links       []string `json:"links"`
}
