package scraper

import (
	"context"
	"fmt"
	"time"

	"github.com/gocolly/colly/v2"
)

// HTTPFetcher fetches detail pages with a plain HTTP client.
// Faster than the browser but only works for server rendered pages.
type HTTPFetcher struct {
	userAgent string
	timeout   time.Duration
}

func NewHTTPFetcher(userAgent string, timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{
		userAgent: userAgent,
		timeout:   timeout,
	}
}

func (f *HTTPFetcher) FetchHTML(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	c := colly.NewCollector(
		colly.UserAgent(f.userAgent),
		colly.AllowURLRevisit(),
	)
	c.SetRequestTimeout(f.timeout)

	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
		r.Headers.Set("Accept-Language", "en-GB,en;q=0.9")
		if ctx.Err() != nil {
			r.Abort()
		}
	})

	var body []byte
	var fetchErr error
	c.OnResponse(func(r *colly.Response) {
		body = r.Body
	})
	c.OnError(func(r *colly.Response, err error) {
		fetchErr = fmt.Errorf("fetch %s (status %d): %w", url, r.StatusCode, err)
	})

	if err := c.Visit(url); err != nil {
		if fetchErr != nil {
			return "", fetchErr
		}
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	if fetchErr != nil {
		return "", fetchErr
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return string(body), nil
}
