package hackerrank

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"hackerrank-scraper/models"
)

const (
	tableSelector  = ".ui-table.ui-leaderboard-table"
	rowSelector    = ".ui-table .table-row-wrapper"
	hackerSelector = ".table-row-column.ellipsis.hacker"
	rankSelector   = ".table-row-column.ellipsis.rank span"
	scoreSelector  = ".table-row-column.ellipsis.score"
	rankAttr       = "data-balloon"

	// Nodes that render no text, so innerText would skip them.
	hiddenSelector = `script, style, template, noscript, [hidden], [aria-hidden="true"], [style*="display:none"], [style*="display: none"], [style*="visibility:hidden"], [style*="visibility: hidden"]`
)

// Row is one rendered leaderboard entry.
type Row struct {
	Hacker string
	Rank   string
	Score  string
}

// ParseRows reads every leaderboard row out of a rendered page.
func ParseRows(r io.Reader) ([]Row, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse leaderboard html: %w", err)
	}

	var rows []Row
	doc.Find(rowSelector).Each(func(_ int, sel *goquery.Selection) {
		rank, _ := sel.Find(rankSelector).First().Attr(rankAttr)
		rows = append(rows, Row{
			Hacker: hackerName(sel.Find(hackerSelector).First()),
			Rank:   strings.TrimSpace(rank),
			Score:  visibleText(sel.Find(scoreSelector).First()),
		})
	})
	return rows, nil
}

// FindUser returns the first row whose hacker name equals username,
// ignoring case, or nil when there is none.
func FindUser(rows []Row, username string) *models.TrackResult {
	for _, row := range rows {
		if row.Hacker == "" {
			continue
		}
		if strings.EqualFold(row.Hacker, username) {
			return &models.TrackResult{
				Username: row.Hacker,
				Rank:     row.Rank,
				Score:    row.Score,
			}
		}
	}
	return nil
}

// ExtractUser parses html and looks username up in its leaderboard rows.
func ExtractUser(html, username string) (*models.TrackResult, error) {
	rows, err := ParseRows(strings.NewReader(html))
	if err != nil {
		return nil, err
	}
	return FindUser(rows, username), nil
}

// hackerName prefers the profile link's text over the whole cell, which may
// also carry badges.
func hackerName(cell *goquery.Selection) string {
	if name := visibleText(cell.Find("a").First()); name != "" {
		return name
	}
	return visibleText(cell)
}

// visibleText approximates innerText: hidden nodes are dropped and
// whitespace is collapsed.
func visibleText(sel *goquery.Selection) string {
	if sel.Length() == 0 {
		return ""
	}
	clone := sel.Clone()
	clone.Find(hiddenSelector).Remove()
	return strings.Join(strings.Fields(clone.Text()), " ")
}
