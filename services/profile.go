package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"hackerrank-scraper/models"
	"hackerrank-scraper/utils"
)

var (
	ErrValidation = errors.New("username required")
	ErrNotFound   = errors.New("user not found on both tracks")
)

// TrackScraper fetches one user's row on one leaderboard track.
// A nil result with a nil error means the user has no row.
type TrackScraper interface {
	Scrape(ctx context.Context, username string, track models.Track) (*models.TrackResult, error)
}

type ProfileService struct {
	scraper  TrackScraper
	parallel bool
}

func NewProfileService(scraper TrackScraper, parallel bool) *ProfileService {
	return &ProfileService{scraper: scraper, parallel: parallel}
}

// Lookup scrapes both tracks for username and merges them. Any scrape error
// fails the whole lookup; a user missing from both tracks is ErrNotFound.
// Surrounding whitespace is ignored for scraping; the response echoes
// username as given.
func (s *ProfileService) Lookup(ctx context.Context, username string) (*models.ScrapeResponse, error) {
	name := strings.TrimSpace(username)
	if name == "" {
		return nil, ErrValidation
	}

	var (
		results []*models.TrackResult
		err     error
	)
	if s.parallel {
		results, err = s.scrapeParallel(ctx, name)
	} else {
		results, err = s.scrapeSequential(ctx, name)
	}
	if err != nil {
		return nil, err
	}

	algorithms, dataStructures := results[0], results[1]
	if algorithms == nil && dataStructures == nil {
		return nil, ErrNotFound
	}
	return models.NewScrapeResponse(username, algorithms, dataStructures), nil
}

// LookupTrack scrapes a single track. A user without a row is ErrNotFound.
func (s *ProfileService) LookupTrack(ctx context.Context, username string, track models.Track) (*models.TrackResult, error) {
	name := strings.TrimSpace(username)
	if name == "" {
		return nil, ErrValidation
	}

	res, err := s.scraper.Scrape(ctx, name, track)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, fmt.Errorf("%s: %w", track, ErrNotFound)
	}
	return res, nil
}

func (s *ProfileService) scrapeSequential(ctx context.Context, username string) ([]*models.TrackResult, error) {
	tracks := models.Tracks()
	results := make([]*models.TrackResult, len(tracks))
	for i, track := range tracks {
		res, err := s.scraper.Scrape(ctx, username, track)
		if err != nil {
			return nil, err
		}
		results[i] = res
	}
	return results, nil
}

func (s *ProfileService) scrapeParallel(ctx context.Context, username string) ([]*models.TrackResult, error) {
	tracks := models.Tracks()
	results := make([]*models.TrackResult, len(tracks))

	g, gctx := errgroup.WithContext(ctx)
	for i, track := range tracks {
		i, track := i, track
		g.Go(func() error {
			res, err := s.scraper.Scrape(gctx, username, track)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	utils.Debug("Scraped %d tracks for %q in parallel", len(tracks), username)
	return results, nil
}
