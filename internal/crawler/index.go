package crawler

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/raysh454/siteforge/internal/model"
)

// IndexFileName is the crawl index written next to the per-page captures.
const IndexFileName = "crawl_index.json"

// WriteIndex persists the crawl index for the given records as a JSON
// mapping from URL to index entry.
func WriteIndex(records []*model.PageRecord, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output dir: %w", err)
	}

	index := make(map[string]model.IndexEntry, len(records))
	for _, rec := range records {
		entry := model.IndexEntry{
			URL:         rec.URL,
			HTML:        rec.HTMLPath,
			TextSnippet: rec.TextSnippet,
			Links:       rec.Links,
		}
		if rec.ScreenshotPath != "" {
			shot := rec.ScreenshotPath
			entry.Screenshot = &shot
		}
		index[rec.URL] = entry
	}

	data, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return "", err
	}

	path := filepath.Join(outputDir, IndexFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing crawl index: %w", err)
	}
	return path, nil
}

// ReadIndex loads a crawl index and rebuilds its PageRecords, reading each
// page's saved HTML back in. A missing or unreadable HTML file falls back to
// the stored text snippet, matching how a capture failure looks in memory.
// Records are returned sorted by URL so downstream stages see a stable order.
func ReadIndex(path string) ([]*model.PageRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading crawl index: %w", err)
	}

	var index map[string]model.IndexEntry
	if err := json.Unmarshal(data, &index); err != nil {
		return nil, fmt.Errorf("parsing crawl index %s: %w", path, err)
	}

	urls := make([]string, 0, len(index))
	for u := range index {
		urls = append(urls, u)
	}
	sort.Strings(urls)

	records := make([]*model.PageRecord, 0, len(urls))
	for _, u := range urls {
		entry := index[u]
		rec := &model.PageRecord{
			URL:         entry.URL,
			HTMLPath:    entry.HTML,
			TextSnippet: entry.TextSnippet,
			Links:       entry.Links,
		}
		if entry.Screenshot != nil {
			rec.ScreenshotPath = *entry.Screenshot
		}
		if entry.HTML != "" {
			if html, err := os.ReadFile(entry.HTML); err == nil {
				rec.HTML = string(html)
			}
		}
		records = append(records, rec)
	}

	return records, nil
}
