package hackerrank

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"hackerrank-scraper/models"
)

func leaderboardRow(hacker, rank, score string) string {
	return `<div class="table-row-wrapper">
		<div class="table-row-column ellipsis rank"><span data-balloon=" ` + rank + ` ">` + rank + `</span></div>
		<div class="table-row-column ellipsis hacker"><a href="/` + hacker + `">  ` + hacker + `
		</a></div>
		<div class="table-row-column ellipsis score"> ` + score + ` </div>
	</div>`
}

func leaderboardPage(rows ...string) string {
	return `<html><body><div class="ui-table ui-leaderboard-table">` +
		strings.Join(rows, "\n") +
		`</div></body></html>`
}

func TestParseRows(t *testing.T) {
	rows, err := ParseRows(strings.NewReader(leaderboardPage(
		leaderboardRow("alice", "1", "2200.5"),
		leaderboardRow("bob", "2", "2100"),
	)))
	require.NoError(t, err)
	require.Equal(t, []Row{
		{Hacker: "alice", Rank: "1", Score: "2200.5"},
		{Hacker: "bob", Rank: "2", Score: "2100"},
	}, rows)
}

func TestParseRowsIgnoresRowsOutsideTable(t *testing.T) {
	html := `<html><body>
		<div class="table-row-wrapper"><div class="table-row-column ellipsis hacker">stray</div></div>
		` + leaderboardPage(leaderboardRow("alice", "1", "10")) + `</body></html>`

	rows, err := ParseRows(strings.NewReader(html))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "alice", rows[0].Hacker)
}

func TestExtractUser(t *testing.T) {
	page := leaderboardPage(
		leaderboardRow("somebody", "3", "99"),
		leaderboardRow("Alice", "12", "150"),
		leaderboardRow("alice", "13", "149"),
	)

	tests := []struct {
		name     string
		username string
		expect   *models.TrackResult
	}{
		{"exact case", "Alice", &models.TrackResult{Username: "Alice", Rank: "12", Score: "150"}},
		{"lower case", "alice", &models.TrackResult{Username: "Alice", Rank: "12", Score: "150"}},
		{"upper case", "ALICE", &models.TrackResult{Username: "Alice", Rank: "12", Score: "150"}},
		{"absent", "carol", nil},
		{"prefix is not a match", "ali", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractUser(page, tt.username)
			require.NoError(t, err)
			require.Equal(t, tt.expect, got)
		})
	}
}

func TestExtractUserMissingRank(t *testing.T) {
	page := leaderboardPage(`<div class="table-row-wrapper">
		<div class="table-row-column ellipsis hacker">foo</div>
		<div class="table-row-column ellipsis score">150</div>
	</div>`)

	got, err := ExtractUser(page, "foo")
	require.NoError(t, err)
	require.Equal(t, &models.TrackResult{Username: "foo", Score: "150"}, got)
}

func TestFindUserSkipsNamelessRows(t *testing.T) {
	rows := []Row{{Hacker: "", Rank: "1", Score: "1"}}
	require.Nil(t, FindUser(rows, ""))
}

func TestExtractUserIgnoresHiddenText(t *testing.T) {
	page := leaderboardPage(`<div class="table-row-wrapper">
		<div class="table-row-column ellipsis rank"><span data-balloon="5">5</span></div>
		<div class="table-row-column ellipsis hacker">
			<a href="/foo">foo<span class="badge" style="display: none">gold</span></a>
			<span aria-hidden="true">Top 1%</span>
		</div>
		<div class="table-row-column ellipsis score">320<script>track()</script></div>
	</div>`)

	got, err := ExtractUser(page, "FOO")
	require.NoError(t, err)
	require.Equal(t, &models.TrackResult{Username: "foo", Rank: "5", Score: "320"}, got)
}

func TestHackerNameFallsBackToCell(t *testing.T) {
	page := leaderboardPage(`<div class="table-row-wrapper">
		<div class="table-row-column ellipsis hacker"> bar <span hidden>pro</span></div>
		<div class="table-row-column ellipsis score">1</div>
	</div>`)

	rows, err := ParseRows(strings.NewReader(page))
	require.NoError(t, err)
	require.Equal(t, []Row{{Hacker: "bar", Score: "1"}}, rows)
}
