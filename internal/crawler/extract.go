package crawler

import (
	"strings"

	"github.com/raysh454/siteforge/internal/utils"
	"golang.org/x/net/html"
)

// ExtractLinks returns the same-domain outbound links of a page in document
// order, deduplicated. javascript: pseudo-links and fragment-only anchors are
// skipped; fragments are stripped before deduplication. Links are resolved
// against baseURL and kept only when their host matches root's.
func ExtractLinks(htmlText, baseURL string, root *utils.URLTools) []string {
	if htmlText == "" {
		return nil
	}

	doc, err := html.Parse(strings.NewReader(htmlText))
	if err != nil {
		return nil
	}

	base, err := utils.NewURLTools(baseURL)
	if err != nil {
		return nil
	}

	var links []string
	seen := make(map[string]bool)

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			for _, attr := range n.Attr {
				if attr.Key != "href" {
					continue
				}
				href := strings.TrimSpace(attr.Val)
				if href == "" || strings.HasPrefix(href, "javascript:") || strings.HasPrefix(href, "#") {
					continue
				}

				resolved, err := base.Resolve(href)
				if err != nil {
					continue
				}
				sameDomain, err := root.DomainIsSameString(resolved)
				if err != nil || !sameDomain {
					continue
				}
				if !seen[resolved] {
					seen[resolved] = true
					links = append(links, resolved)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return links
}

// ExtractText returns the page's visible text with whitespace collapsed,
// capped at maxLen runes. Script and style contents are skipped.
func ExtractText(htmlText string, maxLen int) string {
	if htmlText == "" {
		return ""
	}

	doc, err := html.Parse(strings.NewReader(htmlText))
	if err != nil {
		return ""
	}

	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	text := strings.Join(parts, " ")
	runes := []rune(text)
	if maxLen > 0 && len(runes) > maxLen {
		text = string(runes[:maxLen])
	}
	return text
}
