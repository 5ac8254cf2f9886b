package league

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// HistoryRow is one team's side of one game, carrying every column the
// CSV export needs so serialization requires no further derivation.
// Week is 0 only when the game fell outside the derived set;
// ExpectedWin is nil for non-regular games.
type HistoryRow struct {
	Date          string   `json:"date"`
	Season        int      `json:"season"`
	Team          string   `json:"team"`
	Opponent      string   `json:"opponent"`
	Result        Result   `json:"result"`
	PointsFor     float64  `json:"pf"`
	PointsAgainst float64  `json:"pa"`
	Type          string   `json:"type"`
	Round         string   `json:"round"`
	Phase         Phase    `json:"phase"`
	Week          int      `json:"week"`
	ExpectedWin   *float64 `json:"xw"`
}

// HistoryRows emits per-side rows for every canonical game, newest
// first. team "" means both sides of every game; otherwise only the
// named team's sides.
func (l *League) HistoryRows(team string) []HistoryRow {
	rows := make([]HistoryRow, 0)
	for _, g := range l.Games {
		sides := []string{g.TeamA, g.TeamB}
		if team != "" {
			if g.TeamA != team && g.TeamB != team {
				continue
			}
			sides = []string{team}
		}
		for _, t := range sides {
			side, _ := SideFor(g, t)
			wk, _ := l.Weeks.Week(g, t)
			row := HistoryRow{
				Date:          g.Date,
				Season:        g.Season,
				Team:          t,
				Opponent:      side.Opponent,
				Result:        side.Result,
				PointsFor:     side.PointsFor,
				PointsAgainst: side.PointsAgainst,
				Type:          g.Type,
				Round:         g.Round,
				Phase:         g.Phase,
				Week:          wk,
			}
			if xw, ok := l.ExpectedWin(t, g); ok {
				row.ExpectedWin = &xw
			}
			rows = append(rows, row)
		}
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Date > rows[j].Date })
	return rows
}

var csvHeader = []string{"date", "season", "team", "opponent", "result", "pf", "pa", "type", "round", "week", "xw"}

// WriteCSV serializes history rows with the fixed export column order.
// Every field is quoted; embedded quotes are doubled.
func WriteCSV(w io.Writer, rows []HistoryRow) error {
	if _, err := io.WriteString(w, strings.Join(csvHeader, ",")+"\n"); err != nil {
		return err
	}
	for _, r := range rows {
		week := ""
		if r.Week > 0 {
			week = strconv.Itoa(r.Week)
		}
		xw := ""
		if r.ExpectedWin != nil {
			xw = strconv.FormatFloat(*r.ExpectedWin, 'g', -1, 64)
		}
		fields := []string{
			r.Date,
			strconv.Itoa(r.Season),
			r.Team,
			r.Opponent,
			string(r.Result),
			fmt.Sprintf("%.2f", r.PointsFor),
			fmt.Sprintf("%.2f", r.PointsAgainst),
			r.Type,
			r.Round,
			week,
			xw,
		}
		for i, f := range fields {
			fields[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
		}
		if _, err := io.WriteString(w, strings.Join(fields, ",")+"\n"); err != nil {
			return err
		}
	}
	return nil
}
