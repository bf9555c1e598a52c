package utils

import (
	"net/url"
	"strings"
)

// SafeFileName derives a filesystem-safe base name for a page URL, used for
// on-disk HTML and screenshot files in the crawl output directory. The name
// is host plus path with slashes flattened, truncated to maxLen runes.
func SafeFileName(rawURL string, maxLen int) string {
	name := "root"
	if u, err := url.Parse(rawURL); err == nil {
		flat := u.Host + strings.ReplaceAll(u.Path, "/", "_")
		if flat != "" {
			name = flat
		}
	}

	// Strip anything that commonly upsets filesystems.
	name = strings.Map(func(r rune) rune {
		switch r {
		case ':', '?', '&', '=', '%', '\\', '"', '\'', '<', '>', '|', '*':
			return '-'
		}
		return r
	}, name)

	if maxLen > 0 {
		runes := []rune(name)
		if len(runes) > maxLen {
			name = string(runes[:maxLen])
		}
	}
	return name
}
