package hackerrank

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"hackerrank-scraper/config"
	"hackerrank-scraper/models"
	"hackerrank-scraper/utils"
)

// Scraper looks users up on HackerRank practice leaderboards. Every call
// launches its own Chrome process and tears it down before returning.
type Scraper struct {
	cfg     *config.Config
	limiter *BrowserLimiter

	// started, when set, receives the PID of each launched Chrome.
	started func(pid int)
}

func NewScraper(cfg *config.Config) *Scraper {
	return &Scraper{
		cfg:     cfg,
		limiter: NewBrowserLimiter(cfg.MaxBrowsers),
	}
}

// LeaderboardURL builds the track's leaderboard query filtered to username.
func (s *Scraper) LeaderboardURL(username string, track models.Track) string {
	q := url.Values{}
	q.Set("filter", username)
	q.Set("filter_on", "hacker")
	q.Set("page", "1")
	q.Set("track", track.String())
	q.Set("type", "practice")
	return s.cfg.BaseURL + "?" + q.Encode()
}

func (s *Scraper) browserOptions() utils.BrowserOptions {
	return utils.BrowserOptions{
		Headless:       s.cfg.Headless,
		UserAgent:      s.cfg.UserAgent,
		ExecutablePath: s.cfg.BrowserPath(),
	}
}

// Scrape returns the user's row on track, or nil when the rendered
// leaderboard has no matching row.
func (s *Scraper) Scrape(ctx context.Context, username string, track models.Track) (*models.TrackResult, error) {
	release, err := s.limiter.Acquire(ctx)
	if err != nil {
		return nil, newScrapeError(track, ErrBrowserLaunch, err)
	}
	defer release()

	target := s.LeaderboardURL(username, track)
	utils.Debug("Launching Chrome for %s track of %q", track, username)

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, utils.StealthOpts(s.browserOptions())...)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	if err := s.launch(browserCtx, browserCancel); err != nil {
		return nil, newScrapeError(track, ErrBrowserLaunch, err)
	}
	if s.started != nil {
		if proc := chromedp.FromContext(browserCtx).Browser.Process(); proc != nil {
			s.started(proc.Pid)
		}
	}

	navCtx, navCancel := context.WithTimeout(browserCtx, s.cfg.NavigationTimeout)
	err = chromedp.Run(navCtx,
		utils.HideWebDriver(),
		navigateDOMContentLoaded(target),
	)
	navExpired := errors.Is(navCtx.Err(), context.DeadlineExceeded)
	navCancel()
	if err != nil {
		if navExpired {
			return nil, newScrapeError(track, ErrNavigationTimeout,
				fmt.Errorf("%s exceeded %v: %w", target, s.cfg.NavigationTimeout, err))
		}
		return nil, newScrapeError(track, ErrNavigation, fmt.Errorf("%s: %w", target, err))
	}

	var html string
	renderCtx, renderCancel := context.WithTimeout(browserCtx, s.cfg.RenderTimeout)
	err = chromedp.Run(renderCtx,
		chromedp.WaitReady(tableSelector, chromedp.ByQuery),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	renderExpired := errors.Is(renderCtx.Err(), context.DeadlineExceeded)
	renderCancel()
	if err != nil {
		if renderExpired {
			return nil, newScrapeError(track, ErrRenderTimeout,
				fmt.Errorf("%s not found within %v: %w", tableSelector, s.cfg.RenderTimeout, err))
		}
		return nil, newScrapeError(track, ErrExtraction, err)
	}

	result, err := ExtractUser(html, username)
	if err != nil {
		return nil, newScrapeError(track, ErrExtraction, err)
	}

	if result != nil && result.Rank == "" {
		utils.Warn("%s row for %q has no rank tooltip", track, result.Username)
	}
	if result == nil {
		utils.Info("No %s row for %q", track, username)
		return nil, nil
	}
	utils.Success("%s | %s | rank=%s score=%s", track, result.Username, result.Rank, result.Score)
	return result, nil
}

// launch starts the browser. The first Run on a chromedp context allocates
// the process, so it must run on browserCtx itself; the launch ceiling is
// enforced by cancelling that context from a timer.
func (s *Scraper) launch(browserCtx context.Context, cancel context.CancelFunc) error {
	if s.cfg.LaunchTimeout <= 0 {
		return chromedp.Run(browserCtx)
	}

	timer := time.AfterFunc(s.cfg.LaunchTimeout, cancel)
	err := chromedp.Run(browserCtx)
	if !timer.Stop() {
		return fmt.Errorf("browser did not start within %v", s.cfg.LaunchTimeout)
	}
	return err
}

// navigateDOMContentLoaded loads target and returns once the main document
// fires DOMContentLoaded, without waiting for subresources.
func navigateDOMContentLoaded(target string) chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		loaded := make(chan struct{}, 1)
		listenCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		chromedp.ListenTarget(listenCtx, func(ev interface{}) {
			if _, ok := ev.(*page.EventDomContentEventFired); ok {
				select {
				case loaded <- struct{}{}:
				default:
				}
			}
		})

		var res page.NavigateReturns
		if err := cdp.Execute(ctx, page.CommandNavigate, page.Navigate(target), &res); err != nil {
			return err
		}
		if res.ErrorText != "" {
			return fmt.Errorf("page load error %s", res.ErrorText)
		}

		select {
		case <-loaded:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})
}
