package utils

import (
	"fmt"
	"net/url"
	"strings"
)

// URLTools wraps a parsed URL with the normalization rules the crawler relies
// on: lowercase scheme and host, default ports stripped, fragment removed.
type URLTools struct {
	URL *url.URL
}

func NewURLTools(raw string) (*URLTools, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("couldn't parse url %s: %w", raw, err)
	}

	urlTools := &URLTools{
		URL: u,
	}
	urlTools.normalize()

	return urlTools, nil
}

func (u *URLTools) normalize() {
	u.URL.Fragment = ""
	u.URL.Scheme = strings.ToLower(u.URL.Scheme)
	u.URL.Host = strings.ToLower(u.URL.Host)

	if (u.URL.Scheme == "http" && strings.HasSuffix(u.URL.Host, ":80")) ||
		(u.URL.Scheme == "https" && strings.HasSuffix(u.URL.Host, ":443")) {
		u.URL.Host, _, _ = strings.Cut(u.URL.Host, ":")
	}
}

// DomainIsSame reports whether both URLs share a hostname. Port differences
// are ignored; a crawl that starts on example.com:8080 still claims
// example.com pages.
func (u *URLTools) DomainIsSame(target *URLTools) bool {
	return u.URL.Hostname() == target.URL.Hostname()
}

func (u *URLTools) DomainIsSameString(targetURL string) (bool, error) {
	parsed, err := NewURLTools(targetURL)
	if err != nil {
		return false, err
	}

	return u.URL.Hostname() == parsed.URL.Hostname(), nil
}

// Resolve resolves ref against u.URL and returns the absolute, normalized
// URL string. The fragment of ref is dropped in the process.
//
// Examples:
//
//	Base: https://example.com/app/
//	Resolve("users")             → "https://example.com/app/users"
//	Resolve("/static")           → "https://example.com/static"
//	Resolve("https://foo.com/x") → "https://foo.com/x"
func (u *URLTools) Resolve(ref string) (string, error) {
	parsed, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("couldn't parse url %s: %w", ref, err)
	}

	resolved := &URLTools{URL: u.URL.ResolveReference(parsed)}
	resolved.normalize()
	return resolved.URL.String(), nil
}

// Hostname returns the normalized hostname without port.
func (u *URLTools) Hostname() string {
	return u.URL.Hostname()
}
