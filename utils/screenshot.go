package utils

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/playwright-community/playwright-go"
)

var unsafeNameRegex = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// ScreenShotDebugger saves full page screenshots when scraping goes wrong
type ScreenShotDebugger struct {
	outputDir string
}

func NewScreenShotDebugger(dir string) *ScreenShotDebugger {
	if dir == "" {
		dir = filepath.Join(".", "logs", "screenshots")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Printf("⚠️ Failed to create screenshot directory: %v", err)
	}
	return &ScreenShotDebugger{
		outputDir: dir,
	}
}

// CaptureAndLog logs the message and stores a screenshot next to it.
// Returns the file path so callers can mention it in their own errors.
func (s *ScreenShotDebugger) CaptureAndLog(page playwright.Page, name, message string) (string, error) {
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	filename := fmt.Sprintf("%s_%s.png", unsafeNameRegex.ReplaceAllString(name, "-"), timestamp)
	path := filepath.Join(s.outputDir, filename)
	log.Printf("📸 %s", message)

	_, err := page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	})
	if err != nil {
		log.Printf("⚠️ Failed to capture screenshot: %v", err)
		return "", err
	}

	log.Printf("   Screenshot saved: %s", path)
	return path, nil
}
