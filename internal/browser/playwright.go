package browser

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/playwright-community/playwright-go"
)

type Options struct {
	Headless  bool
	UserAgent string
	Timeout   time.Duration //default for every page action
}

// PlaywrightManager owns the driver and the single browser of a run.
// Close must be called on every exit path.
type PlaywrightManager struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	opts    Options
}

func NewPlaywright(opts Options) (*PlaywrightManager, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("could not start playwright: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
		Args: []string{
			"--no-sandbox",
			"--disable-dev-shm-usage",
			"--disable-gpu",
			"--disable-blink-features=AutomationControlled",
		},
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("could not launch chromium: %w", err)
	}

	log.Printf("🌐 Browser launched (headless=%v)", opts.Headless)
	return &PlaywrightManager{
		pw:      pw,
		browser: browser,
		opts:    opts,
	}, nil
}

// NewContext opens an isolated browser context carrying the given cookies.
func (pm *PlaywrightManager) NewContext(cookies []playwright.OptionalCookie) (playwright.BrowserContext, error) {
	ctxOpts := playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{Width: 1920, Height: 1080},
	}
	if pm.opts.UserAgent != "" {
		ctxOpts.UserAgent = playwright.String(pm.opts.UserAgent)
	}

	bctx, err := pm.browser.NewContext(ctxOpts)
	if err != nil {
		return nil, fmt.Errorf("could not create browser context: %w", err)
	}
	if pm.opts.Timeout > 0 {
		bctx.SetDefaultTimeout(float64(pm.opts.Timeout.Milliseconds()))
	}

	if len(cookies) > 0 {
		if err := bctx.AddCookies(cookies); err != nil {
			bctx.Close()
			return nil, fmt.Errorf("could not add cookies: %w", err)
		}
		log.Printf("🍪 Loaded %d cookies into browser context", len(cookies))
	}
	return bctx, nil
}

func (pm *PlaywrightManager) Close() error {
	var errs []error
	if pm.browser != nil {
		if err := pm.browser.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close browser: %w", err))
		}
	}
	if pm.pw != nil {
		if err := pm.pw.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("stop playwright: %w", err))
		}
	}
	log.Println("🔒 Browser closed")
	return errors.Join(errs...)
}
