package huntuk

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/playwright-community/playwright-go"

	"go-jobhunt-automation/internal/browser"
	"go-jobhunt-automation/internal/scraper"
	"go-jobhunt-automation/utils"
)

const (
	rowSelector         = "body > div.css-py5jdu > div.css-33z2be > div.chakra-table__container.css-zipzvv > table > tbody > tr"
	tableSelector       = "table tbody"
	fallbackRowSelector = "table tbody tr"
	nextButtonSelector  = "body > div.css-py5jdu > div.css-33z2be > div.chakra-stack.css-1old6bn > button:nth-child(2)"
)

// ListingPager drives the paginated search results in a live browser tab.
type ListingPager struct {
	page    playwright.Page
	timeout time.Duration
	settle  time.Duration
	shots   *utils.ScreenShotDebugger
}

func NewListingPager(page playwright.Page, timeout, settle time.Duration, shots *utils.ScreenShotDebugger) *ListingPager {
	return &ListingPager{
		page:    page,
		timeout: timeout,
		settle:  settle,
		shots:   shots,
	}
}

// Open navigates to the first page of results.
func (p *ListingPager) Open(ctx context.Context, searchURL string) error {
	log.Printf("🔍 Opening listing: %s", searchURL)
	if _, err := p.page.Goto(searchURL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(p.timeoutMs() * 3),
	}); err != nil {
		shot := p.capture("listing-goto", "🚨 Listing page failed to load")
		return fmt.Errorf("open listing %s%s: %w", searchURL, shot, err)
	}
	return browser.Pause(ctx, p.settle, p.settle+time.Second)
}

func (p *ListingPager) Rows(ctx context.Context) ([]*goquery.Selection, error) {
	if _, err := p.page.WaitForSelector(tableSelector, playwright.PageWaitForSelectorOptions{
		Timeout: playwright.Float(p.timeoutMs()),
	}); err != nil {
		var shot string
		if errors.Is(err, playwright.ErrTimeout) {
			shot = p.capture("listing-table-timeout", "🚨 Listing table did not appear in time")
		}
		return nil, fmt.Errorf("wait for listing table%s: %w", shot, err)
	}

	//let the table finish rendering
	if err := browser.Pause(ctx, p.settle, p.settle); err != nil {
		return nil, err
	}

	html, err := p.page.Content()
	if err != nil {
		return nil, fmt.Errorf("read listing html: %w", err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse listing html: %w", err)
	}

	return listingRows(doc)
}

// listingRows snapshots the result rows, falling back to any table body
// when the generated class names have changed.
func listingRows(doc *goquery.Document) ([]*goquery.Selection, error) {
	sel := doc.Find(rowSelector)
	if sel.Length() == 0 {
		sel = doc.Find(fallbackRowSelector)
		if sel.Length() > 0 {
			log.Printf("⚠️ Primary row selector matched nothing, using %q", fallbackRowSelector)
		}
	}

	var rows []*goquery.Selection
	sel.Each(func(_ int, s *goquery.Selection) {
		rows = append(rows, s)
	})
	if len(rows) == 0 {
		return nil, scraper.ErrNoRows
	}
	return rows, nil
}

func (p *ListingPager) Next(ctx context.Context) (bool, error) {
	btn := p.page.Locator(nextButtonSelector).First()

	count, err := btn.Count()
	if err != nil {
		return false, fmt.Errorf("find next button: %w", err)
	}
	if count == 0 {
		return false, nil
	}

	visible, _ := btn.IsVisible()
	enabled, _ := btn.IsEnabled()
	if !visible || !enabled {
		return false, nil
	}

	if err := btn.ScrollIntoViewIfNeeded(); err != nil {
		log.Printf("⚠️ Could not scroll to next button: %v", err)
	}
	if err := browser.MouseJiggle(ctx, p.page); err != nil {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		log.Printf("⚠️ Mouse jiggle failed: %v", err)
	}
	if err := browser.Pause(ctx, 500*time.Millisecond, time.Second); err != nil {
		return false, err
	}

	if err := btn.Click(); err != nil {
		shot := p.capture("listing-next-click", "🚨 Next page button could not be clicked")
		return false, fmt.Errorf("click next button%s: %w", shot, err)
	}

	if _, err := p.page.WaitForSelector(rowSelector, playwright.PageWaitForSelectorOptions{
		Timeout: playwright.Float(p.timeoutMs()),
	}); err != nil {
		var shot string
		if errors.Is(err, playwright.ErrTimeout) {
			shot = p.capture("listing-next-timeout", "🚨 Next page content did not load in time")
		}
		return false, fmt.Errorf("wait for next page rows%s: %w", shot, err)
	}
	return true, browser.Pause(ctx, p.settle, p.settle+time.Second)
}

func (p *ListingPager) timeoutMs() float64 {
	return float64(p.timeout.Milliseconds())
}

// capture returns an error suffix naming the saved screenshot, or ""
func (p *ListingPager) capture(name, message string) string {
	if p.shots == nil {
		return ""
	}
	path, err := p.shots.CaptureAndLog(p.page, name, message)
	if err != nil {
		return ""
	}
	return screenshotNote(path)
}

func screenshotNote(path string) string {
	if path == "" {
		return ""
	}
	return fmt.Sprintf(" (screenshot: %s)", path)
}
