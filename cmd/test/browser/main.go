package main

import (
	"context"
	"fmt"
	"log"

	"go-jobhunt-automation/internal/browser"
	"go-jobhunt-automation/internal/config"
	"go-jobhunt-automation/internal/scraper/huntuk"
	"go-jobhunt-automation/utils"
)

func main() {
	fmt.Println("🌐 Testing listing extraction...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	ctx := context.Background()

	pm, err := browser.NewPlaywright(browser.Options{
		Headless:  cfg.Headless,
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.PageTimeout,
	})
	if err != nil {
		log.Fatalf("Failed to create Playwright: %v", err)
	}
	defer pm.Close()

	browserCtx, err := pm.NewContext(nil)
	if err != nil {
		log.Fatalf("Failed to create context: %v", err)
	}
	defer browserCtx.Close()

	page, err := browserCtx.NewPage()
	if err != nil {
		log.Fatalf("Failed to create page: %v", err)
	}

	pager := huntuk.NewListingPager(page, cfg.PageTimeout, cfg.Delay, utils.NewScreenShotDebugger(cfg.ScreenshotDir))
	if err := pager.Open(ctx, cfg.SearchURL); err != nil {
		log.Fatalf("Failed to open listing: %v", err)
	}

	rows, err := pager.Rows(ctx)
	if err != nil {
		log.Fatalf("Failed to read rows: %v", err)
	}
	fmt.Printf("✅ Found %d rows on the first page\n", len(rows))

	extractor, err := huntuk.NewRowExtractor(cfg.BaseURL, nil)
	if err != nil {
		log.Fatalf("Bad base URL: %v", err)
	}
	for i, row := range rows {
		p, ok := extractor.Extract(row)
		if !ok {
			fmt.Printf("%2d. (unreadable row)\n", i+1)
			continue
		}
		fmt.Printf("%2d. %s | %s | %s | %s (%s)\n    %s\n", i+1, p.Title, p.Company, p.Location, p.DatePosted, p.RawDateText, p.DetailURL)
	}
	fmt.Println("✨ Test complete!")
}
