package classifier

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/raysh454/siteforge/internal/interfaces"
	"github.com/raysh454/siteforge/internal/model"
	"github.com/raysh454/siteforge/internal/uxspec"
)

// ErrEmptyCrawl is returned when there are no page records to aggregate.
var ErrEmptyCrawl = errors.New("no crawled pages to classify")

// Aggregate classifies every page record and folds the results into one
// site-wide spec. Records whose capture failed are classified from their
// text snippet, which yields a page entry with few or no components rather
// than dropping the page. The spec's domain comes from the first record.
func Aggregate(records []*model.PageRecord, logger interfaces.Logger) (*uxspec.Spec, error) {
	if len(records) == 0 {
		return nil, ErrEmptyCrawl
	}

	first, err := url.Parse(records[0].URL)
	if err != nil {
		return nil, fmt.Errorf("parsing record url %s: %w", records[0].URL, err)
	}

	spec := &uxspec.Spec{
		Domain: first.Hostname(),
		Pages:  make([]uxspec.PageSpec, 0, len(records)),
	}

	for _, rec := range records {
		content := rec.HTML
		if content == "" {
			content = rec.TextSnippet
		}

		page, err := ClassifyPage(content, rec.URL)
		if err != nil {
			logger.Warn("page classification failed",
				interfaces.Field{Key: "url", Value: rec.URL},
				interfaces.Field{Key: "error", Value: err.Error()})
			page = uxspec.PageSpec{URL: rec.URL}
		}
		spec.Pages = append(spec.Pages, page)
	}

	return spec, nil
}
