// Package classifier turns captured page HTML into the semantic component
// inventory of the ux spec. Classification is a pure function of the markup:
// the same HTML always yields the same PageSpec.
package classifier

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/raysh454/siteforge/internal/uxspec"
)

// Per-component sampling caps. Pages can be arbitrarily large; the spec
// handed to generation must not be.
const (
	maxClickableText = 200
	maxNavLinks      = 30
	maxListSamples   = 10
	maxTableRows     = 5
	maxImageSamples  = 10
	maxHeadings      = 50
	maxHeadingText   = 150
)

// ClassifyPage scans the page markup and returns its component inventory.
// Components are appended in a fixed pass order: clickables, forms, navs,
// lists, tables, images, headings. Malformed HTML is tolerated; the parser
// recovers what it can.
func ClassifyPage(htmlContent, url string) (uxspec.PageSpec, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return uxspec.PageSpec{}, err
	}

	page := uxspec.PageSpec{
		URL:   url,
		Title: cleanText(doc.Find("title").First().Text()),
	}

	doc.Find("button, a, input").Each(func(_ int, s *goquery.Selection) {
		page.Components = append(page.Components, classifyClickable(s))
	})

	doc.Find("form").Each(func(_ int, s *goquery.Selection) {
		page.Components = append(page.Components, classifyForm(s))
	})

	doc.Find("nav").Each(func(_ int, s *goquery.Selection) {
		page.Components = append(page.Components, classifyNav(s))
	})

	doc.Find("ul, ol").Each(func(_ int, s *goquery.Selection) {
		page.Components = append(page.Components, classifyList(s))
	})

	doc.Find("table").Each(func(_ int, s *goquery.Selection) {
		page.Components = append(page.Components, classifyTable(s))
	})

	if images, ok := classifyImages(doc); ok {
		page.Components = append(page.Components, images)
	}

	if headings, ok := classifyHeadings(doc); ok {
		page.Components = append(page.Components, headings)
	}

	page.Features = detectFeatures(doc)

	return page, nil
}

func classifyClickable(s *goquery.Selection) uxspec.Clickable {
	tag := goquery.NodeName(s)

	role := "input"
	switch tag {
	case "a":
		role = "link"
	case "button":
		role = "button"
	}

	text := cleanText(s.Text())
	if text == "" {
		text = cleanText(s.AttrOr("value", ""))
	}
	if text == "" {
		text = cleanText(s.AttrOr("aria-label", ""))
	}

	return uxspec.Clickable{
		Type:      uxspec.TypeClickable,
		Tag:       tag,
		Role:      role,
		InputType: s.AttrOr("type", ""),
		Text:      truncate(text, maxClickableText),
		ID:        s.AttrOr("id", ""),
		Classes:   classList(s),
	}
}

func classifyForm(s *goquery.Selection) uxspec.Form {
	form := uxspec.Form{
		Type:   uxspec.TypeForm,
		ID:     s.AttrOr("id", ""),
		Action: s.AttrOr("action", ""),
		Method: s.AttrOr("method", "get"),
		Fields: []uxspec.FormField{},
	}
	if form.Method == "" {
		form.Method = "get"
	}

	s.Find("input, textarea, select").Each(func(_ int, f *goquery.Selection) {
		tag := goquery.NodeName(f)
		fieldType := f.AttrOr("type", "")
		if fieldType == "" {
			fieldType = tag
		}
		_, required := f.Attr("required")
		form.Fields = append(form.Fields, uxspec.FormField{
			Name:        f.AttrOr("name", ""),
			Type:        fieldType,
			Placeholder: f.AttrOr("placeholder", ""),
			Required:    required,
		})
	})

	return form
}

func classifyNav(s *goquery.Selection) uxspec.Nav {
	links := []string{}
	s.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		if len(links) < maxNavLinks {
			links = append(links, cleanText(a.Text()))
		}
	})
	return uxspec.Nav{Type: uxspec.TypeNav, Links: links}
}

func classifyList(s *goquery.Selection) uxspec.List {
	list := uxspec.List{Type: uxspec.TypeList, SampleItems: []string{}}
	s.Find("li").Each(func(_ int, li *goquery.Selection) {
		list.NumItems++
		if len(list.SampleItems) < maxListSamples {
			list.SampleItems = append(list.SampleItems, cleanText(li.Text()))
		}
	})
	return list
}

func classifyTable(s *goquery.Selection) uxspec.Table {
	table := uxspec.Table{
		Type:       uxspec.TypeTable,
		Headers:    []string{},
		SampleRows: [][]string{},
	}
	s.Find("th").Each(func(_ int, th *goquery.Selection) {
		table.Headers = append(table.Headers, cleanText(th.Text()))
	})
	s.Find("tr").Each(func(i int, tr *goquery.Selection) {
		if i >= maxTableRows {
			return
		}
		row := []string{}
		tr.Find("td").Each(func(_ int, td *goquery.Selection) {
			row = append(row, cleanText(td.Text()))
		})
		table.SampleRows = append(table.SampleRows, row)
	})
	return table
}

func classifyImages(doc *goquery.Document) (uxspec.Images, bool) {
	imgs := doc.Find("img")
	if imgs.Length() == 0 {
		return uxspec.Images{}, false
	}
	images := uxspec.Images{
		Type:    uxspec.TypeImages,
		Count:   imgs.Length(),
		Samples: []string{},
	}
	imgs.Each(func(i int, img *goquery.Selection) {
		if i < maxImageSamples {
			images.Samples = append(images.Samples, img.AttrOr("src", ""))
		}
	})
	return images, true
}

// classifyHeadings collects h1 through h4 grouped by level, h1s first.
func classifyHeadings(doc *goquery.Document) (uxspec.Headings, bool) {
	headings := uxspec.Headings{Type: uxspec.TypeHeadings}
	for _, level := range []string{"h1", "h2", "h3", "h4"} {
		doc.Find(level).Each(func(_ int, h *goquery.Selection) {
			headings.Items = append(headings.Items, uxspec.Heading{
				Tag:  level,
				Text: truncate(cleanText(h.Text()), maxHeadingText),
			})
		})
	}
	if len(headings.Items) == 0 {
		return uxspec.Headings{}, false
	}
	if len(headings.Items) > maxHeadings {
		headings.Items = headings.Items[:maxHeadings]
	}
	return headings, true
}

func detectFeatures(doc *goquery.Document) []uxspec.FeatureTag {
	var features []uxspec.FeatureTag
	if doc.Find(`input[type="password"]`).Length() > 0 {
		features = append(features, uxspec.AuthFormDetected)
	}
	if doc.Find(`input[type="search"]`).Length() > 0 || doc.Find(`input[name="q"]`).Length() > 0 {
		features = append(features, uxspec.SearchFeatureDetected)
	}
	return features
}

func classList(s *goquery.Selection) []string {
	raw := s.AttrOr("class", "")
	if raw == "" {
		return nil
	}
	return strings.Fields(raw)
}

// cleanText trims and collapses internal whitespace.
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) > max {
		return string(runes[:max])
	}
	return s
}
