package utils

import (
	"context"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// BrowserOptions configures one browser launch. It is passed to every launch
// explicitly so no two scrapes share automation state.
type BrowserOptions struct {
	Headless       bool
	UserAgent      string
	ExecutablePath string
}

// StealthOpts returns ChromeDP launch options for a sandbox-less, single
// process Chrome with automation markers hidden.
//
// Key flags:
//   - no-sandbox, disable-setuid-sandbox, no-zygote, single-process → run inside containers without user namespaces
//   - disable-blink-features=AutomationControlled → removes navigator.webdriver flag
//   - headless=new → uses Chrome's newer headless mode
func StealthOpts(o BrowserOptions) []chromedp.ExecAllocatorOption {
	opts := []chromedp.ExecAllocatorOption{
		chromedp.NoFirstRun,
		chromedp.NoDefaultBrowserCheck,
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.Flag("excludeSwitches", "enable-automation"),
		chromedp.Flag("useAutomationExtension", false),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-setuid-sandbox", true),
		chromedp.Flag("single-process", true),
		chromedp.Flag("no-zygote", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.WindowSize(1920, 1080),
	}

	if o.UserAgent != "" {
		opts = append(opts, chromedp.UserAgent(o.UserAgent))
	}
	if o.ExecutablePath != "" {
		opts = append(opts, chromedp.ExecPath(o.ExecutablePath))
	}
	if o.Headless {
		opts = append(opts, chromedp.Flag("headless", "new"))
	}

	return opts
}

const hideWebDriverJS = `
	Object.defineProperty(navigator, 'webdriver', { get: () => undefined });
	Object.defineProperty(navigator, 'plugins', { get: () => [1, 2, 3, 4, 5] });
	Object.defineProperty(navigator, 'languages', { get: () => ['en-US', 'en'] });
`

// HideWebDriver registers a script that patches navigator on every new
// document, so the leaderboard's own scripts never see the automation
// fingerprints. Run it before navigating.
func HideWebDriver() chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		_, err := page.AddScriptToEvaluateOnNewDocument(hideWebDriverJS).Do(ctx)
		return err
	})
}
