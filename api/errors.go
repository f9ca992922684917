package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"hackerrank-scraper/scraper/hackerrank"
	"hackerrank-scraper/services"
)

var scrapeKinds = []error{
	hackerrank.ErrNavigationTimeout,
	hackerrank.ErrRenderTimeout,
	hackerrank.ErrNavigation,
	hackerrank.ErrBrowserLaunch,
	hackerrank.ErrExtraction,
}

// HTTPStatusFromError maps lookup errors to HTTP status codes.
func HTTPStatusFromError(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, services.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// PublicMessage describes a scrape failure for clients without exposing the
// underlying error text.
func PublicMessage(err error) string {
	var se *hackerrank.ScrapeError
	if errors.As(err, &se) {
		return fmt.Sprintf("%s: %v", se.Track, se.Kind)
	}
	for _, kind := range scrapeKinds {
		if errors.Is(err, kind) {
			return kind.Error()
		}
	}
	if errors.Is(err, context.Canceled) {
		return "request cancelled"
	}
	return "internal error"
}
