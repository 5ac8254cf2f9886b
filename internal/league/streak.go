package league

import "sort"

// StreakRun is a maximal contiguous run of one outcome in date order.
type StreakRun struct {
	Team   string `json:"team"`
	Length int    `json:"length"`
	Start  string `json:"start"`
	End    string `json:"end"`
}

// teamGamesByDate returns team's games sorted by date ascending.
func teamGamesByDate(games []Game, team string) []Game {
	var out []Game
	for _, g := range games {
		if g.TeamA == team || g.TeamB == team {
			out = append(out, g)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// runsForTeam collects every maximal run of target for team. Only the
// target result extends a run; anything else — including a tie — breaks
// it.
func runsForTeam(games []Game, team string, target Result) []StreakRun {
	tg := teamGamesByDate(games, team)
	var runs []StreakRun
	cur := 0
	start := ""
	prevDate := ""
	for _, g := range tg {
		s, _ := SideFor(g, team)
		if s.Result == target {
			if cur == 0 {
				start = g.Date
			}
			cur++
		} else if cur > 0 {
			runs = append(runs, StreakRun{Team: team, Length: cur, Start: start, End: prevDate})
			cur = 0
			start = ""
		}
		prevDate = g.Date
	}
	if cur > 0 {
		runs = append(runs, StreakRun{Team: team, Length: cur, Start: start, End: tg[len(tg)-1].Date})
	}
	return runs
}

// sortRuns orders runs longest first; ties go to the more recent
// end-date, then to the lexicographically smaller team name. ISO dates
// compare correctly as strings.
func sortRuns(runs []StreakRun) {
	sort.SliceStable(runs, func(i, j int) bool {
		if runs[i].Length != runs[j].Length {
			return runs[i].Length > runs[j].Length
		}
		if runs[i].End != runs[j].End {
			return runs[i].End > runs[j].End
		}
		return runs[i].Team < runs[j].Team
	})
}

// LongestStreakPerTeam reports each team's single longest run of the
// target result, ranked league-wide, at most n rows. Teams with no such
// run are omitted.
func (l *League) LongestStreakPerTeam(target Result, n int) []StreakRun {
	best := make([]StreakRun, 0)
	for _, team := range l.Teams() {
		var top *StreakRun
		for _, r := range runsForTeam(l.Games, team, target) {
			r := r
			if top == nil || r.Length > top.Length {
				top = &r
			}
		}
		if top != nil {
			best = append(best, *top)
		}
	}
	sort.SliceStable(best, func(i, j int) bool {
		if best[i].Length != best[j].Length {
			return best[i].Length > best[j].Length
		}
		return best[i].Team < best[j].Team
	})
	return topN(best, n)
}

// LongestStreaksGlobal ranks every maximal run across the league and
// returns the top n. A team can appear more than once.
func (l *League) LongestStreaksGlobal(target Result, n int) []StreakRun {
	var runs []StreakRun
	for _, team := range l.Teams() {
		runs = append(runs, runsForTeam(l.Games, team, target)...)
	}
	sortRuns(runs)
	return topN(runs, n)
}

func topN[T any](rows []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if len(rows) > n {
		rows = rows[:n]
	}
	if rows == nil {
		rows = []T{}
	}
	return rows
}
