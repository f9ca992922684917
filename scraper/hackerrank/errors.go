package hackerrank

import (
	"errors"
	"fmt"

	"hackerrank-scraper/models"
)

var (
	ErrBrowserLaunch     = errors.New("browser launch failed")
	ErrNavigation        = errors.New("navigation failed")
	ErrNavigationTimeout = errors.New("navigation timed out")
	ErrRenderTimeout     = errors.New("leaderboard table did not render in time")
	ErrExtraction        = errors.New("leaderboard extraction failed")
)

// ScrapeError reports which track failed and at which stage. Kind is one of
// the Err* sentinels above; errors.Is matches both Kind and the cause.
type ScrapeError struct {
	Track models.Track
	Kind  error
	Err   error
}

func (e *ScrapeError) Error() string {
	return fmt.Sprintf("scrape %s: %v: %v", e.Track, e.Kind, e.Err)
}

func (e *ScrapeError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

func newScrapeError(track models.Track, kind, err error) *ScrapeError {
	return &ScrapeError{Track: track, Kind: kind, Err: err}
}
