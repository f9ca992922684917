package services

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"hackerrank-scraper/models"
)

type fakeScraper struct {
	mu      sync.Mutex
	results map[models.Track]*models.TrackResult
	errs    map[models.Track]error
	calls   []models.Track
}

func (f *fakeScraper) Scrape(ctx context.Context, username string, track models.Track) (*models.TrackResult, error) {
	f.mu.Lock()
	f.calls = append(f.calls, track)
	f.mu.Unlock()

	if err := f.errs[track]; err != nil {
		return nil, err
	}
	return f.results[track], nil
}

func TestLookup(t *testing.T) {
	foo := &models.TrackResult{Username: "foo", Rank: "12", Score: "150"}
	fooDS := &models.TrackResult{Username: "FOO", Rank: "3", Score: "480"}

	tests := []struct {
		name    string
		results map[models.Track]*models.TrackResult
		expect  *models.ScrapeResponse
		err     error
	}{
		{
			name: "both tracks",
			results: map[models.Track]*models.TrackResult{
				models.TrackAlgorithms:     foo,
				models.TrackDataStructures: fooDS,
			},
			expect: &models.ScrapeResponse{
				Username: "foo", AlgorithmScore: "150", AlgorithmRank: "12",
				DataStructuresScore: "480", DataStructuresRank: "3",
			},
		},
		{
			name:    "algorithms only",
			results: map[models.Track]*models.TrackResult{models.TrackAlgorithms: foo},
			expect: &models.ScrapeResponse{
				Username: "foo", AlgorithmScore: "150", AlgorithmRank: "12",
				DataStructuresScore: "N/A", DataStructuresRank: "N/A",
			},
		},
		{
			name: "neither track",
			err:  ErrNotFound,
		},
	}

	for _, parallel := range []bool{false, true} {
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				svc := NewProfileService(&fakeScraper{results: tt.results}, parallel)
				got, err := svc.Lookup(context.Background(), "foo")
				if tt.err != nil {
					require.ErrorIs(t, err, tt.err)
					return
				}
				require.NoError(t, err)
				require.Equal(t, tt.expect, got)
			})
		}
	}
}

func TestLookupEmptyUsername(t *testing.T) {
	f := &fakeScraper{}
	_, err := NewProfileService(f, false).Lookup(context.Background(), "  ")
	require.ErrorIs(t, err, ErrValidation)
	require.Empty(t, f.calls)
}

func TestLookupSequentialStopsAtFirstError(t *testing.T) {
	boom := errors.New("boom")
	f := &fakeScraper{errs: map[models.Track]error{models.TrackAlgorithms: boom}}

	_, err := NewProfileService(f, false).Lookup(context.Background(), "foo")
	require.ErrorIs(t, err, boom)
	require.Equal(t, []models.Track{models.TrackAlgorithms}, f.calls)
}

func TestLookupErrorDiscardsOtherTrack(t *testing.T) {
	boom := errors.New("boom")
	f := &fakeScraper{
		results: map[models.Track]*models.TrackResult{
			models.TrackAlgorithms: {Username: "foo", Rank: "1", Score: "1"},
		},
		errs: map[models.Track]error{models.TrackDataStructures: boom},
	}

	for _, parallel := range []bool{false, true} {
		got, err := NewProfileService(f, parallel).Lookup(context.Background(), "foo")
		require.ErrorIs(t, err, boom)
		require.Nil(t, got)
	}
}

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	PrintReport(&buf, models.NewScrapeResponse("foo", &models.TrackResult{Rank: "12", Score: "150"}, nil))

	out := buf.String()
	require.Contains(t, out, "foo")
	require.Contains(t, out, "algorithms")
	require.Contains(t, out, "150")
	require.Contains(t, out, "N/A")
}

func TestLookupEchoesUsernameAsGiven(t *testing.T) {
	f := &fakeScraper{results: map[models.Track]*models.TrackResult{
		models.TrackAlgorithms: {Username: "foo", Rank: "12", Score: "150"},
	}}

	got, err := NewProfileService(f, false).Lookup(context.Background(), " foo")
	require.NoError(t, err)
	require.Equal(t, " foo", got.Username)
}

func TestLookupTrack(t *testing.T) {
	f := &fakeScraper{results: map[models.Track]*models.TrackResult{
		models.TrackDataStructures: {Username: "foo", Rank: "3", Score: "480"},
	}}
	svc := NewProfileService(f, false)

	got, err := svc.LookupTrack(context.Background(), " foo ", models.TrackDataStructures)
	require.NoError(t, err)
	require.Equal(t, "480", got.Score)
	require.Equal(t, []models.Track{models.TrackDataStructures}, f.calls)

	_, err = svc.LookupTrack(context.Background(), "foo", models.TrackAlgorithms)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = svc.LookupTrack(context.Background(), "", models.TrackAlgorithms)
	require.ErrorIs(t, err, ErrValidation)
}

func TestPrintTrackReport(t *testing.T) {
	var buf bytes.Buffer
	PrintTrackReport(&buf, models.TrackDataStructures, &models.TrackResult{Username: "foo", Score: "480"})

	out := buf.String()
	require.Contains(t, out, "data-structures")
	require.Contains(t, out, "480")
	require.Contains(t, out, "N/A")
}
