package classifier

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/raysh454/siteforge/internal/logging"
	"github.com/raysh454/siteforge/internal/model"
	"github.com/raysh454/siteforge/internal/uxspec"
)

const landingPage = `<html>
<head><title> Acme Store </title></head>
<body>
<nav><a href="/">Home</a><a href="/shop">Shop</a></nav>
<h1>Welcome to Acme</h1>
<h2>Deals</h2>
<a href="/shop" class="btn primary">Shop now</a>
<button id="cta">Buy</button>
<form id="contact" action="/contact" method="post">
  <input name="email" type="email" placeholder="you@example.com" required>
  <textarea name="message"></textarea>
  <input type="submit" value="Send">
</form>
<ul><li>Fast shipping</li><li>Free returns</li></ul>
<table>
  <tr><th>Item</th><th>Price</th></tr>
  <tr><td>Widget</td><td>$5</td></tr>
</table>
<img src="/hero.png"><img src="/logo.svg">
</body>
</html>`

func TestClassifyPageComponents(t *testing.T) {
	page, err := ClassifyPage(landingPage, "http://acme.test/")
	if err != nil {
		t.Fatalf("ClassifyPage: %v", err)
	}

	if page.Title != "Acme Store" {
		t.Errorf("title: got %q, want %q", page.Title, "Acme Store")
	}

	var order []string
	for _, c := range page.Components {
		order = append(order, c.ComponentType())
	}
	want := []string{
		"clickable", "clickable", "clickable", "clickable", "clickable", "clickable",
		"form", "nav", "list", "table", "images", "headings",
	}
	if diff := cmp.Diff(want, order); diff != "" {
		t.Fatalf("component order mismatch (-want +got):\n%s", diff)
	}

	// the nav anchors classify as clickables too
	first := page.Components[0].(uxspec.Clickable)
	if first.Tag != "a" || first.Role != "link" || first.Text != "Home" {
		t.Errorf("unexpected first clickable: %+v", first)
	}

	shop := page.Components[2].(uxspec.Clickable)
	wantShop := uxspec.Clickable{
		Type:    "clickable",
		Tag:     "a",
		Role:    "link",
		Text:    "Shop now",
		Classes: []string{"btn", "primary"},
	}
	if diff := cmp.Diff(wantShop, shop); diff != "" {
		t.Errorf("shop clickable mismatch (-want +got):\n%s", diff)
	}

	form := page.Components[6].(uxspec.Form)
	if form.ID != "contact" || form.Action != "/contact" || form.Method != "post" {
		t.Errorf("unexpected form: %+v", form)
	}
	wantFields := []uxspec.FormField{
		{Name: "email", Type: "email", Placeholder: "you@example.com", Required: true},
		{Name: "message", Type: "textarea"},
		{Type: "submit"},
	}
	if diff := cmp.Diff(wantFields, form.Fields); diff != "" {
		t.Errorf("form fields mismatch (-want +got):\n%s", diff)
	}

	nav := page.Components[7].(uxspec.Nav)
	if diff := cmp.Diff([]string{"Home", "Shop"}, nav.Links); diff != "" {
		t.Errorf("nav links mismatch (-want +got):\n%s", diff)
	}

	list := page.Components[8].(uxspec.List)
	if list.NumItems != 2 {
		t.Errorf("list num_items: got %d, want 2", list.NumItems)
	}

	table := page.Components[9].(uxspec.Table)
	if diff := cmp.Diff([]string{"Item", "Price"}, table.Headers); diff != "" {
		t.Errorf("table headers mismatch (-want +got):\n%s", diff)
	}
	wantRows := [][]string{{}, {"Widget", "$5"}}
	if diff := cmp.Diff(wantRows, table.SampleRows); diff != "" {
		t.Errorf("table rows mismatch (-want +got):\n%s", diff)
	}

	images := page.Components[10].(uxspec.Images)
	if images.Count != 2 {
		t.Errorf("image count: got %d, want 2", images.Count)
	}

	headings := page.Components[11].(uxspec.Headings)
	wantHeadings := []uxspec.Heading{
		{Tag: "h1", Text: "Welcome to Acme"},
		{Tag: "h2", Text: "Deals"},
	}
	if diff := cmp.Diff(wantHeadings, headings.Items); diff != "" {
		t.Errorf("headings mismatch (-want +got):\n%s", diff)
	}
}

func TestClassifyPageInputFallsBackToValueAndAriaLabel(t *testing.T) {
	page, err := ClassifyPage(`<html><body>
		<input type="submit" value="Go">
		<button aria-label="Close dialog"></button>
	</body></html>`, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(page.Components) != 2 {
		t.Fatalf("got %d components, want 2", len(page.Components))
	}
	if got := page.Components[0].(uxspec.Clickable).Text; got != "Go" {
		t.Errorf("input text: got %q, want %q", got, "Go")
	}
	if got := page.Components[1].(uxspec.Clickable).Text; got != "Close dialog" {
		t.Errorf("button text: got %q, want %q", got, "Close dialog")
	}
}

func TestClassifyPageSamplingCaps(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("<html><body><ul>")
	for i := 0; i < 25; i++ {
		fmt.Fprintf(&sb, "<li>item %d</li>", i)
	}
	sb.WriteString("</ul><table>")
	for i := 0; i < 8; i++ {
		fmt.Fprintf(&sb, "<tr><td>row %d</td></tr>", i)
	}
	sb.WriteString("</table>")
	for i := 0; i < 15; i++ {
		fmt.Fprintf(&sb, `<img src="/img%d.png">`, i)
	}
	sb.WriteString("</body></html>")

	page, err := ClassifyPage(sb.String(), "")
	if err != nil {
		t.Fatal(err)
	}

	for _, c := range page.Components {
		switch v := c.(type) {
		case uxspec.List:
			if v.NumItems != 25 {
				t.Errorf("list num_items: got %d, want 25", v.NumItems)
			}
			if len(v.SampleItems) != maxListSamples {
				t.Errorf("list samples: got %d, want %d", len(v.SampleItems), maxListSamples)
			}
		case uxspec.Table:
			if len(v.SampleRows) != maxTableRows {
				t.Errorf("table rows: got %d, want %d", len(v.SampleRows), maxTableRows)
			}
		case uxspec.Images:
			if v.Count != 15 {
				t.Errorf("image count: got %d, want 15", v.Count)
			}
			if len(v.Samples) != maxImageSamples {
				t.Errorf("image samples: got %d, want %d", len(v.Samples), maxImageSamples)
			}
		}
	}
}

func TestDetectFeatures(t *testing.T) {
	cases := []struct {
		name string
		html string
		want []uxspec.FeatureTag
	}{
		{
			name: "login form",
			html: `<form><input type="text" name="user"><input type="password" name="pass"></form>`,
			want: []uxspec.FeatureTag{uxspec.AuthFormDetected},
		},
		{
			name: "search input type",
			html: `<input type="search">`,
			want: []uxspec.FeatureTag{uxspec.SearchFeatureDetected},
		},
		{
			name: "query param name",
			html: `<form action="/search"><input type="text" name="q"></form>`,
			want: []uxspec.FeatureTag{uxspec.SearchFeatureDetected},
		},
		{
			name: "both",
			html: `<input type="password"><input type="search">`,
			want: []uxspec.FeatureTag{uxspec.AuthFormDetected, uxspec.SearchFeatureDetected},
		},
		{
			name: "neither",
			html: `<input type="text" name="comment">`,
			want: nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page, err := ClassifyPage("<html><body>"+tc.html+"</body></html>", "")
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, page.Features); diff != "" {
				t.Errorf("features mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestClassifyPageIdempotent(t *testing.T) {
	first, err := ClassifyPage(landingPage, "http://acme.test/")
	if err != nil {
		t.Fatal(err)
	}
	second, err := ClassifyPage(landingPage, "http://acme.test/")
	if err != nil {
		t.Fatal(err)
	}

	a, err := json.Marshal(first)
	if err != nil {
		t.Fatal(err)
	}
	b, err := json.Marshal(second)
	if err != nil {
		t.Fatal(err)
	}
	if string(a) != string(b) {
		t.Errorf("classification not deterministic:\n%s\n%s", a, b)
	}
}

func TestAggregate(t *testing.T) {
	records := []*model.PageRecord{
		{URL: "http://acme.test/", HTML: landingPage},
		{URL: "http://acme.test/broken", TextSnippet: "Welcome to Acme"},
	}

	spec, err := Aggregate(records, logging.NewNop())
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if spec.Domain != "acme.test" {
		t.Errorf("domain: got %q, want %q", spec.Domain, "acme.test")
	}
	if len(spec.Pages) != 2 {
		t.Fatalf("got %d pages, want 2", len(spec.Pages))
	}
	if spec.Pages[1].URL != "http://acme.test/broken" {
		t.Errorf("failed capture dropped from spec: %+v", spec.Pages[1])
	}
	if len(spec.Pages[0].Components) == 0 {
		t.Error("landing page classified with no components")
	}
}

func TestAggregateEmpty(t *testing.T) {
	if _, err := Aggregate(nil, logging.NewNop()); err != ErrEmptyCrawl {
		t.Fatalf("got %v, want ErrEmptyCrawl", err)
	}
}
