package models

import "fmt"

// NotAvailable stands in for any rank or score that could not be scraped.
const NotAvailable = "N/A"

type Track string

const (
	TrackAlgorithms     Track = "algorithms"
	TrackDataStructures Track = "data-structures"
)

// Tracks returns every leaderboard track in lookup order.
func Tracks() []Track {
	return []Track{TrackAlgorithms, TrackDataStructures}
}

func ParseTrack(s string) (Track, error) {
	switch t := Track(s); t {
	case TrackAlgorithms, TrackDataStructures:
		return t, nil
	}
	return "", fmt.Errorf("unknown track %q", s)
}

func (t Track) String() string {
	return string(t)
}

// TrackResult is the matched leaderboard row for one track.
// A nil *TrackResult means the user has no row on that track.
type TrackResult struct {
	Username string
	Rank     string
	Score    string
}

type ScrapeResponse struct {
	Username            string `json:"username"`
	AlgorithmScore      string `json:"algorithm_score"`
	AlgorithmRank       string `json:"algorithm_rank"`
	DataStructuresScore string `json:"data_structures_score"`
	DataStructuresRank  string `json:"data_structures_rank"`
}

// NewScrapeResponse merges both track results, substituting NotAvailable
// for a missing result or an empty field.
func NewScrapeResponse(username string, algorithms, dataStructures *TrackResult) *ScrapeResponse {
	resp := &ScrapeResponse{
		Username:            username,
		AlgorithmScore:      NotAvailable,
		AlgorithmRank:       NotAvailable,
		DataStructuresScore: NotAvailable,
		DataStructuresRank:  NotAvailable,
	}
	if algorithms != nil {
		resp.AlgorithmScore = orNotAvailable(algorithms.Score)
		resp.AlgorithmRank = orNotAvailable(algorithms.Rank)
	}
	if dataStructures != nil {
		resp.DataStructuresScore = orNotAvailable(dataStructures.Score)
		resp.DataStructuresRank = orNotAvailable(dataStructures.Rank)
	}
	return resp
}

func orNotAvailable(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}
