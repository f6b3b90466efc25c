package scraper

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Detail is what the pipeline needs from a posting's detail page.
type Detail struct {
	Description    string
	ApplicationURL string
}

// DetailReader fetches a detail page and runs the site extractor over it.
type DetailReader struct {
	fetcher   PageFetcher
	extractor DetailExtractor
}

func NewDetailReader(fetcher PageFetcher, extractor DetailExtractor) *DetailReader {
	return &DetailReader{
		fetcher:   fetcher,
		extractor: extractor,
	}
}

// Read never returns a half filled Detail: on error both fields are empty.
func (r *DetailReader) Read(ctx context.Context, url string) (Detail, error) {
	html, err := r.fetcher.FetchHTML(ctx, url)
	if err != nil {
		return Detail{}, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return Detail{}, fmt.Errorf("parse detail page %s: %w", url, err)
	}

	return Detail{
		Description:    r.extractor.Description(doc),
		ApplicationURL: r.extractor.ApplicationURL(doc, url),
	}, nil
}
