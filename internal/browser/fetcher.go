package browser

import (
	"context"
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"
)

// PageFetcher renders detail pages in a dedicated browser tab.
type PageFetcher struct {
	page    playwright.Page
	timeout time.Duration
	settle  time.Duration //client side rendering grace period
}

func NewPageFetcher(page playwright.Page, timeout, settle time.Duration) *PageFetcher {
	return &PageFetcher{
		page:    page,
		timeout: timeout,
		settle:  settle,
	}
}

func (f *PageFetcher) FetchHTML(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if _, err := f.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(float64(f.timeout.Milliseconds())),
	}); err != nil {
		return "", fmt.Errorf("navigate to %s: %w", url, err)
	}

	if _, err := f.page.WaitForSelector("body", playwright.PageWaitForSelectorOptions{
		Timeout: playwright.Float(float64(f.timeout.Milliseconds())),
	}); err != nil {
		return "", fmt.Errorf("wait for body on %s: %w", url, err)
	}

	if err := Pause(ctx, f.settle, f.settle+f.settle/2); err != nil {
		return "", err
	}

	html, err := f.page.Content()
	if err != nil {
		return "", fmt.Errorf("read content of %s: %w", url, err)
	}
	return html, nil
}
