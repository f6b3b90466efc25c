package main

import (
	"fmt"
	"log"

	"go-jobhunt-automation/internal/config"
)

func main() {
	fmt.Println("🔧 Testing config loading...")
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	fmt.Printf("✅ Config loaded successfully!\n")
	fmt.Printf("   Search URL: %s\n", cfg.SearchURL)
	fmt.Printf("   Ollama: %s (%s)\n", cfg.OllamaBaseURL, cfg.OllamaModel)
	fmt.Printf("   Max jobs: %d, headless: %v, delay: %v\n", cfg.MaxJobs, cfg.Headless, cfg.Delay)
	fmt.Printf("   Age window: %d-%d days\n", cfg.MinAgeDays, cfg.MaxAgeDays)
	fmt.Printf("   Excluded keywords: %v\n", cfg.ExcludedKeywords)
	fmt.Printf("   Detail fetcher: %s\n", cfg.DetailFetcher)
	fmt.Printf("   Output: %s, log: %s\n", cfg.OutputFile, cfg.LogFile)
	fmt.Printf("   Telegram enabled: %v\n", cfg.NotificationsEnabled())
}
