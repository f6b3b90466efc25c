package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-jobhunt-automation/internal/ai"
	"go-jobhunt-automation/internal/browser"
	"go-jobhunt-automation/internal/config"
	"go-jobhunt-automation/internal/filter"
	"go-jobhunt-automation/internal/logging"
	"go-jobhunt-automation/internal/output"
	"go-jobhunt-automation/internal/pipeline"
	"go-jobhunt-automation/internal/scraper"
	"go-jobhunt-automation/internal/scraper/huntuk"
	"go-jobhunt-automation/internal/telegram"
	"go-jobhunt-automation/utils"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code so deferred cleanup always happens
func run() int {
	//load config
	cfg, err := config.Load()
	if err != nil {
		log.Printf("❌ Failed to load config: %v", err)
		return 1
	}

	closeLog, err := logging.Setup(cfg.LogFile)
	if err != nil {
		log.Printf("❌ Failed to set up logging: %v", err)
		return 1
	}
	defer closeLog()

	log.Println("🚀 Starting junior job hunter...")
	log.Printf("🔧 Config loaded. Model: %s, max jobs: %d, age window: %d-%d days", cfg.OllamaModel, cfg.MaxJobs, cfg.MinAgeDays, cfg.MaxAgeDays)

	//cancel on ctrl+c, the in-flight posting finishes or aborts first
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	//the classifier backend must be up before any scraping
	llm := ai.NewOllamaClient(cfg.OllamaBaseURL, cfg.OllamaModel, cfg.LLMTimeout)
	if err := llm.CheckModel(ctx); err != nil {
		log.Printf("❌ Ollama check failed: %v", err)
		log.Println("   Make sure Ollama is running (ollama serve) and the model is pulled.")
		return 1
	}
	log.Printf("✅ Ollama is running and %s is available", cfg.OllamaModel)

	if cfg.FreshOutput {
		if err := os.Remove(cfg.OutputFile); err != nil && !os.IsNotExist(err) {
			log.Printf("⚠️ Could not remove old output %s: %v", cfg.OutputFile, err)
		} else {
			log.Printf("🧹 Starting with a fresh %s", cfg.OutputFile)
		}
	}
	writer, err := output.OpenCSV(cfg.OutputFile)
	if err != nil {
		log.Printf("❌ Failed to open output: %v", err)
		return 1
	}

	//init playwright manager, closed on every exit path below
	pwManager, err := browser.NewPlaywright(browser.Options{
		Headless:  cfg.Headless,
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.PageTimeout,
	})
	if err != nil {
		log.Printf("❌ Failed to init Playwright: %v", err)
		return 1
	}
	defer pwManager.Close()

	cookies, err := browser.LoadCookies(cfg.CookiesPath)
	if err != nil {
		log.Printf("⚠️ Could not load cookies: %v. Continuing.", err)
	}
	browserCtx, err := pwManager.NewContext(cookies)
	if err != nil {
		log.Printf("❌ Failed to create browser context: %v", err)
		return 1
	}
	defer browserCtx.Close()

	listingPage, err := browserCtx.NewPage()
	if err != nil {
		log.Printf("❌ Failed to create new page: %v", err)
		return 1
	}

	//collect listings
	shots := utils.NewScreenShotDebugger(cfg.ScreenshotDir)
	pager := huntuk.NewListingPager(listingPage, cfg.PageTimeout, cfg.Delay, shots)
	if err := pager.Open(ctx, cfg.SearchURL); err != nil {
		if ctx.Err() != nil {
			log.Println("🛑 Interrupted by user")
			return 1
		}
		log.Printf("❌ %v", err)
		return 1
	}

	rows, err := huntuk.NewRowExtractor(cfg.BaseURL, huntuk.DefaultColumns())
	if err != nil {
		log.Printf("❌ %v", err)
		return 1
	}

	postings, err := scraper.Collect(ctx, pager, rows, cfg.MaxJobs)
	if err != nil {
		log.Printf("🛑 Interrupted while collecting listings: %v", err)
		return 1
	}
	if len(postings) == 0 {
		log.Println("❌ No job listings found")
		return 1
	}
	log.Printf("📦 Found %d job listings", len(postings))

	//detail pages go through a second tab or plain HTTP
	var fetcher scraper.PageFetcher
	switch cfg.DetailFetcher {
	case config.FetcherHTTP:
		fetcher = scraper.NewHTTPFetcher(cfg.UserAgent, cfg.PageTimeout)
	default:
		detailPage, err := browserCtx.NewPage()
		if err != nil {
			log.Printf("❌ Failed to create detail page: %v", err)
			return 1
		}
		fetcher = browser.NewPageFetcher(detailPage, cfg.PageTimeout, cfg.Delay)
	}

	deps := pipeline.Deps{
		Filter:     filter.NewFilter(cfg.ExcludedKeywords, cfg.MinAgeDays, cfg.MaxAgeDays),
		Details:    scraper.NewDetailReader(fetcher, huntuk.NewDetailExtractor(cfg.DescriptionMinLength)),
		Classifier: ai.NewClassifier(llm, ai.NewMarkerParser()),
		Writer:     writer,
		Limiter:    pipeline.NewLimiter(cfg.Delay),
	}

	var bot *telegram.Bot
	if cfg.NotificationsEnabled() {
		bot, err = telegram.NewBot(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Printf("⚠️ Telegram disabled: %v", err)
		} else {
			deps.Notifier = bot
			log.Println("🤖 Telegram Bot initialized.")
		}
	}

	summary, runErr := pipeline.NewRunner(deps).Run(ctx, postings)
	printSummary(summary, writer.Path())

	if bot != nil {
		status := fmt.Sprintf("Job hunt finished: %d suitable out of %d listings.", len(summary.Suitable), summary.Total)
		if err := bot.SendStatus(status); err != nil {
			log.Printf("⚠️ Failed to send status to Telegram: %v", err)
		}
	}

	if runErr != nil {
		if errors.Is(runErr, context.Canceled) {
			log.Println("🛑 Interrupted by user")
		} else {
			log.Printf("❌ Run aborted: %v", runErr)
		}
		return 1
	}

	log.Println("🏁 Execution finished.")
	return 0
}

func printSummary(s pipeline.Summary, outputPath string) {
	log.Println("📊 Summary")
	log.Printf("   Listings:        %d", s.Total)
	log.Printf("   Excluded title:  %d", s.Excluded)
	log.Printf("   Outside window:  %d", s.OutOfRange)
	log.Printf("   No description:  %d", s.NoDescription)
	log.Printf("   Analyzed:        %d", s.Processed)
	log.Printf("   Not suitable:    %d", s.NotSuitable)
	log.Printf("   Duplicates:      %d", s.Duplicates)
	log.Printf("   Errors:          %d", s.Failed)
	log.Printf("   Suitable:        %d", len(s.Suitable))

	if len(s.Suitable) == 0 {
		fmt.Println("\nNo suitable jobs found this run.")
		return
	}

	fmt.Printf("\n🎯 %d suitable jobs saved to %s:\n", len(s.Suitable), outputPath)
	for i, rec := range s.Suitable {
		company := rec.Company
		if company == "" {
			company = "Unknown company"
		}
		fmt.Printf("%d. %s - %s\n   %s\n", i+1, rec.JobTitle, company, rec.JobURL)
	}
}
