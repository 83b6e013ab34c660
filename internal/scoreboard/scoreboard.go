// Package scoreboard aggregates every game a server has run into a
// per-player CSV summary.
package scoreboard

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"

	"github.com/kethomassen/austerity/internal/cards"
	"github.com/kethomassen/austerity/internal/engine"
)

// Row is one aggregated player's scoreboard line: their display name,
// summed across every game they appeared in by exact name match.
type Row struct {
	Name   string
	Tokens int
	Points int
}

// Aggregate walks every game (finished or still running), groups players
// by exact display-name equality, and sums score and total wallet tokens
// across all colours including wild. The result is sorted by points
// descending, ties broken by tokens ascending.
func Aggregate(games []*engine.Game) []Row {
	totals := make(map[string]*Row)
	var order []string

	for _, g := range games {
		for _, p := range g.Players {
			row, ok := totals[p.Name]
			if !ok {
				row = &Row{Name: p.Name}
				totals[p.Name] = row
				order = append(order, p.Name)
			}
			row.Points += p.Score
			for _, k := range cards.RealColours {
				row.Tokens += p.Wallet[k]
			}
			row.Tokens += p.Wallet[cards.Wild]
		}
	}

	rows := make([]Row, 0, len(order))
	for _, name := range order {
		rows = append(rows, *totals[name])
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		return rows[i].Tokens < rows[j].Tokens
	})
	return rows
}

// WriteCSV renders rows as "Player Name,Total Tokens,Total Points" with a
// header line, one record per row.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Player Name", "Total Tokens", "Total Points"}); err != nil {
		return fmt.Errorf("scoreboard: writing header: %w", err)
	}
	for _, r := range rows {
		record := []string{r.Name, fmt.Sprintf("%d", r.Tokens), fmt.Sprintf("%d", r.Points)}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("scoreboard: writing row for %q: %w", r.Name, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
