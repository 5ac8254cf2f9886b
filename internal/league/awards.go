package league

import "sort"

// TeamCount pairs a team with an award or occurrence count.
type TeamCount struct {
	Team  string `json:"team"`
	Count int    `json:"count"`
}

// Awards are the weekly superlative tallies over regular-season dates:
// how often each team posted the league's top or bottom score of a
// date, and how many times it cleared the high-score line.
type Awards struct {
	Top  []TeamCount `json:"top"`
	Low  []TeamCount `json:"low"`
	High []TeamCount `json:"high"`
}

// WeeklyAwards scans every regular-season date. The date's single top
// and bottom scorer each earn one award (the first in descending score
// order wins the tie, matching the presentation's historical behavior);
// every score at or above the high line counts toward High. Each list
// is sorted by count descending, team ascending.
func (l *League) WeeklyAwards() Awards {
	type entry struct {
		team  string
		score float64
	}
	byDate := make(map[string][]entry)
	var dates []string
	for _, g := range l.Games {
		if g.Phase != PhaseRegular {
			continue
		}
		if _, ok := byDate[g.Date]; !ok {
			dates = append(dates, g.Date)
		}
		byDate[g.Date] = append(byDate[g.Date], entry{g.TeamA, g.ScoreA}, entry{g.TeamB, g.ScoreB})
	}
	sort.Strings(dates)

	top := make(map[string]int)
	low := make(map[string]int)
	high := make(map[string]int)
	for _, d := range dates {
		arr := byDate[d]
		sort.SliceStable(arr, func(i, j int) bool { return arr[i].score > arr[j].score })
		top[arr[0].team]++
		low[arr[len(arr)-1].team]++
		for _, e := range arr {
			if e.score >= l.Rules.HighScoreLine {
				high[e.team]++
			}
		}
	}
	return Awards{Top: countRows(top), Low: countRows(low), High: countRows(high)}
}

// SubLowGames counts each team's regular-season scores strictly below
// the low-score line.
func (l *League) SubLowGames() []TeamCount {
	count := make(map[string]int)
	for _, g := range l.Games {
		if g.Phase != PhaseRegular {
			continue
		}
		if g.ScoreA < l.Rules.LowScoreLine {
			count[g.TeamA]++
		}
		if g.ScoreB < l.Rules.LowScoreLine {
			count[g.TeamB]++
		}
	}
	return countRows(count)
}

// PlayoffWinCounts tallies decided playoff-bracket wins per team from
// the game log (saunders games excluded).
func (l *League) PlayoffWinCounts() []TeamCount {
	wins := make(map[string]int)
	for _, g := range l.Games {
		if g.Phase != PhasePlayoff {
			continue
		}
		if g.ScoreA > g.ScoreB {
			wins[g.TeamA]++
		} else if g.ScoreB > g.ScoreA {
			wins[g.TeamB]++
		}
	}
	return countRows(wins)
}

func countRows(m map[string]int) []TeamCount {
	out := make([]TeamCount, 0, len(m))
	for team, n := range m {
		out = append(out, TeamCount{Team: team, Count: n})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Team < out[j].Team
	})
	return out
}
