// Define the capabilities a listing site has to provide
// Keep the pipeline independent from site markup

package scraper

import (
	"context"
	"errors"

	"github.com/PuerkitoBio/goquery"

	"go-jobhunt-automation/internal/models"
)

var ErrNoRows = errors.New("no rows found")

// RowExtractor turns one listing row into a posting.
// The bool is false when the row has no usable title or link.
type RowExtractor interface {
	Extract(row *goquery.Selection) (models.Posting, bool)
}

// Pager walks a paginated listing view forward.
type Pager interface {
	//Rows returns the rows of the page currently loaded
	Rows(ctx context.Context) ([]*goquery.Selection, error)

	//Next advances one page, false when there is no next page
	Next(ctx context.Context) (bool, error)
}

// PageFetcher returns the rendered HTML of a URL.
type PageFetcher interface {
	FetchHTML(ctx context.Context, url string) (string, error)
}

// DetailExtractor pulls the description and apply link out of a detail page.
type DetailExtractor interface {
	Description(doc *goquery.Document) string
	ApplicationURL(doc *goquery.Document, detailURL string) string
}
