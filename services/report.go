package services

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"hackerrank-scraper/models"
)

// PrintReport renders a lookup result as a rounded table.
func PrintReport(w io.Writer, resp *models.ScrapeResponse) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("HackerRank · " + resp.Username)
	t.AppendHeader(table.Row{"Track", "Rank", "Score"})
	t.AppendRow(table.Row{models.TrackAlgorithms, resp.AlgorithmRank, resp.AlgorithmScore})
	t.AppendRow(table.Row{models.TrackDataStructures, resp.DataStructuresRank, resp.DataStructuresScore})
	t.SetStyle(table.StyleRounded)
	t.Render()
}

// PrintTrackReport renders a single-track result.
func PrintTrackReport(w io.Writer, track models.Track, res *models.TrackResult) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("HackerRank · " + res.Username)
	t.AppendHeader(table.Row{"Track", "Rank", "Score"})
	t.AppendRow(table.Row{track, orNotAvailable(res.Rank), orNotAvailable(res.Score)})
	t.SetStyle(table.StyleRounded)
	t.Render()
}

func orNotAvailable(s string) string {
	if s == "" {
		return models.NotAvailable
	}
	return s
}
