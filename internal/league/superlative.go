package league

import "sort"

// ScoreRow is one team's scoring line in one game.
type ScoreRow struct {
	Team          string  `json:"team"`
	Opponent      string  `json:"opponent"`
	PointsFor     float64 `json:"pf"`
	PointsAgainst float64 `json:"pa"`
	Date          string  `json:"date"`
	Season        int     `json:"season"`
}

// scoreRows flattens every game into two single-team rows, skipping the
// two-leg season's postseason games so one week slot cannot yield two
// dated entries.
func (l *League) scoreRows() []ScoreRow {
	rows := make([]ScoreRow, 0, 2*len(l.Games))
	for _, g := range l.Games {
		if l.Rules.twoLegPlayoff(g) {
			continue
		}
		rows = append(rows,
			ScoreRow{Team: g.TeamA, Opponent: g.TeamB, PointsFor: g.ScoreA, PointsAgainst: g.ScoreB, Date: g.Date, Season: g.Season},
			ScoreRow{Team: g.TeamB, Opponent: g.TeamA, PointsFor: g.ScoreB, PointsAgainst: g.ScoreA, Date: g.Date, Season: g.Season},
		)
	}
	return rows
}

// TopScores returns the n highest single-game performances league-wide.
func (l *League) TopScores(n int) []ScoreRow {
	rows := l.scoreRows()
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].PointsFor != rows[j].PointsFor {
			return rows[i].PointsFor > rows[j].PointsFor
		}
		return rows[i].Team < rows[j].Team
	})
	return topN(rows, n)
}

// BottomScores returns the n lowest single-game performances league-wide.
func (l *League) BottomScores(n int) []ScoreRow {
	rows := l.scoreRows()
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].PointsFor != rows[j].PointsFor {
			return rows[i].PointsFor < rows[j].PointsFor
		}
		return rows[i].Team < rows[j].Team
	})
	return topN(rows, n)
}

// CombinedRow is a whole game ranked by its combined score.
type CombinedRow struct {
	TeamA  string  `json:"teamA"`
	TeamB  string  `json:"teamB"`
	ScoreA float64 `json:"scoreA"`
	ScoreB float64 `json:"scoreB"`
	Total  float64 `json:"total"`
	Date   string  `json:"date"`
}

// TopCombined ranks regular-season games by combined score, highest
// first; equal totals go to the earlier date.
func (l *League) TopCombined(n int) []CombinedRow {
	rows := make([]CombinedRow, 0)
	for _, g := range l.Games {
		if g.Phase != PhaseRegular {
			continue
		}
		rows = append(rows, CombinedRow{
			TeamA: g.TeamA, TeamB: g.TeamB,
			ScoreA: g.ScoreA, ScoreB: g.ScoreB,
			Total: g.ScoreA + g.ScoreB, Date: g.Date,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Total != rows[j].Total {
			return rows[i].Total > rows[j].Total
		}
		return rows[i].Date < rows[j].Date
	})
	return topN(rows, n)
}

// ResultRow is a decided game from the winner's side.
type ResultRow struct {
	Winner      string  `json:"winner"`
	Loser       string  `json:"loser"`
	WinnerScore float64 `json:"winner_score"`
	LoserScore  float64 `json:"loser_score"`
	Margin      float64 `json:"margin"`
	Date        string  `json:"date"`
	Season      int     `json:"season"`
}

func resultRow(g Game) (ResultRow, bool) {
	if g.ScoreA == g.ScoreB {
		return ResultRow{}, false
	}
	r := ResultRow{Date: g.Date, Season: g.Season}
	if g.ScoreA > g.ScoreB {
		r.Winner, r.Loser = g.TeamA, g.TeamB
		r.WinnerScore, r.LoserScore = g.ScoreA, g.ScoreB
	} else {
		r.Winner, r.Loser = g.TeamB, g.TeamA
		r.WinnerScore, r.LoserScore = g.ScoreB, g.ScoreA
	}
	r.Margin = r.WinnerScore - r.LoserScore
	return r, true
}

// PlayoffHighs lists the highest single-team playoff scores. The
// two-leg season's playoff games are skipped like every single-game
// list.
func (l *League) PlayoffHighs(n int) []ScoreRow {
	rows := make([]ScoreRow, 0)
	for _, g := range l.Games {
		if g.Phase != PhasePlayoff || l.Rules.twoLegPlayoff(g) {
			continue
		}
		rows = append(rows,
			ScoreRow{Team: g.TeamA, Opponent: g.TeamB, PointsFor: g.ScoreA, PointsAgainst: g.ScoreB, Date: g.Date, Season: g.Season},
			ScoreRow{Team: g.TeamB, Opponent: g.TeamA, PointsFor: g.ScoreB, PointsAgainst: g.ScoreA, Date: g.Date, Season: g.Season},
		)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].PointsFor != rows[j].PointsFor {
			return rows[i].PointsFor > rows[j].PointsFor
		}
		return rows[i].Season > rows[j].Season
	})
	return topN(rows, n)
}

// PlayoffBlowouts ranks decided playoff games by victory margin.
func (l *League) PlayoffBlowouts(n int) []ResultRow {
	rows := make([]ResultRow, 0)
	for _, g := range l.Games {
		if g.Phase != PhasePlayoff || l.Rules.twoLegPlayoff(g) {
			continue
		}
		if r, ok := resultRow(g); ok {
			rows = append(rows, r)
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Margin != rows[j].Margin {
			return rows[i].Margin > rows[j].Margin
		}
		return rows[i].Season > rows[j].Season
	})
	return topN(rows, n)
}

// DominantRun is a champion's average playoff margin for its title
// season.
type DominantRun struct {
	Team      string  `json:"team"`
	Season    int     `json:"season"`
	AvgMargin float64 `json:"avg_margin"`
	Games     int     `json:"games"`
}

// DominantPlayoffRuns averages per-game playoff point margin over each
// championship season (per the season summaries' champion flag).
func (l *League) DominantPlayoffRuns(n int) []DominantRun {
	champs := make(map[teamSeason]bool)
	for _, s := range l.Summaries {
		if s.Champion {
			champs[teamSeason{s.Owner, s.Season}] = true
		}
	}
	type sums struct {
		margin float64
		games  int
	}
	acc := make(map[teamSeason]*sums)
	for _, g := range l.Games {
		if g.Phase != PhasePlayoff || l.Rules.twoLegPlayoff(g) {
			continue
		}
		for _, team := range []string{g.TeamA, g.TeamB} {
			k := teamSeason{team, g.Season}
			if !champs[k] {
				continue
			}
			side, _ := SideFor(g, team)
			r, ok := acc[k]
			if !ok {
				r = &sums{}
				acc[k] = r
			}
			r.margin += side.PointsFor - side.PointsAgainst
			r.games++
		}
	}
	rows := make([]DominantRun, 0, len(acc))
	for k, r := range acc {
		rows = append(rows, DominantRun{Team: k.team, Season: k.season, AvgMargin: r.margin / float64(r.games), Games: r.games})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].AvgMargin != rows[j].AvgMargin {
			return rows[i].AvgMargin > rows[j].AvgMargin
		}
		return rows[i].Season > rows[j].Season
	})
	return topN(rows, n)
}

// LowestScoringWins lists decided regular-season games by the winner's
// score, lowest first — the cheapest wins in league history.
func (l *League) LowestScoringWins(n int) []ResultRow {
	rows := l.decidedRegular()
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].WinnerScore != rows[j].WinnerScore {
			return rows[i].WinnerScore < rows[j].WinnerScore
		}
		return rows[i].Date < rows[j].Date
	})
	return topN(rows, n)
}

// HighestScoringLosses lists decided regular-season games by the
// loser's score, highest first — the cruelest losses.
func (l *League) HighestScoringLosses(n int) []ResultRow {
	rows := l.decidedRegular()
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].LoserScore != rows[j].LoserScore {
			return rows[i].LoserScore > rows[j].LoserScore
		}
		return rows[i].Date < rows[j].Date
	})
	return topN(rows, n)
}

func (l *League) decidedRegular() []ResultRow {
	rows := make([]ResultRow, 0)
	for _, g := range l.Games {
		if g.Phase != PhaseRegular {
			continue
		}
		if r, ok := resultRow(g); ok {
			rows = append(rows, r)
		}
	}
	return rows
}

// NotLowestRuns ranks runs of consecutive regular-season dates on which
// a team played without posting the league's lowest score of the date.
// Dates the team did not play neither extend nor break a run; a shared
// lowest score counts as lowest for every team posting it.
func (l *League) NotLowestRuns(n int) []StreakRun {
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

	lowestByDate := make(map[string]map[string]bool, len(dates))
	for _, d := range dates {
		arr := byDate[d]
		min := arr[0].score
		for _, e := range arr[1:] {
			if e.score < min {
				min = e.score
			}
		}
		lows := make(map[string]bool)
		for _, e := range arr {
			if e.score == min {
				lows[e.team] = true
			}
		}
		lowestByDate[d] = lows
	}

	var runs []StreakRun
	for _, team := range l.Teams() {
		cur := 0
		start := ""
		prevPlayed := ""
		for _, d := range dates {
			played := false
			for _, e := range byDate[d] {
				if e.team == team {
					played = true
					break
				}
			}
			if !played {
				continue
			}
			if !lowestByDate[d][team] {
				if cur == 0 {
					start = d
				}
				cur++
			} else if cur > 0 {
				runs = append(runs, StreakRun{Team: team, Length: cur, Start: start, End: prevPlayed})
				cur = 0
				start = ""
			}
			prevPlayed = d
		}
		if cur > 0 {
			runs = append(runs, StreakRun{Team: team, Length: cur, Start: start, End: prevPlayed})
		}
	}
	sortRuns(runs)
	return topN(runs, n)
}

// RivalRecord is a team's record against its most-beaten opponent.
type RivalRecord struct {
	Team     string `json:"team"`
	Opponent string `json:"opponent"`
	Wins     int    `json:"wins"`
	Losses   int    `json:"losses"`
}

// RivalWins finds, for each team, the single opponent it has beaten
// most (decided games only, all phases); equal win counts go to the
// better win percentage. The league-wide list ranks those best rivals
// by wins.
func (l *League) RivalWins(n int) []RivalRecord {
	type pair struct{ team, opp string }
	wins := make(map[pair]int)
	losses := make(map[pair]int)
	for _, g := range l.Games {
		if g.ScoreA == g.ScoreB {
			continue
		}
		r, _ := resultRow(g)
		wins[pair{r.Winner, r.Loser}]++
		losses[pair{r.Loser, r.Winner}]++
	}

	teams := l.Teams()
	rows := make([]RivalRecord, 0, len(teams))
	for _, team := range teams {
		var best *RivalRecord
		bestPct := 0.0
		for _, opp := range teams {
			if opp == team {
				continue
			}
			w := wins[pair{team, opp}]
			lo := losses[pair{team, opp}]
			if w == 0 && lo == 0 {
				continue
			}
			pct := float64(w) / float64(max(w+lo, 1))
			if best == nil || w > best.Wins || (w == best.Wins && pct > bestPct) {
				best = &RivalRecord{Team: team, Opponent: opp, Wins: w, Losses: lo}
				bestPct = pct
			}
		}
		if best != nil && best.Wins > 0 {
			rows = append(rows, *best)
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Wins != rows[j].Wins {
			return rows[i].Wins > rows[j].Wins
		}
		return rows[i].Team+rows[i].Opponent < rows[j].Team+rows[j].Opponent
	})
	return topN(rows, n)
}

// qualifiedSeasons filters season aggregates to the minimum-sample
// floor shared by every season-level leaderboard.
func (l *League) qualifiedSeasons() []SeasonAggregate {
	out := make([]SeasonAggregate, 0)
	for _, r := range l.SeasonAggregates() {
		if r.Games >= l.Rules.MinSeasonGames {
			out = append(out, r)
		}
	}
	return out
}

// BestSeasons ranks qualified seasons by record, best first.
func (l *League) BestSeasons(n int) []SeasonAggregate {
	rows := l.qualifiedSeasons()
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.WinPct != b.WinPct {
			return a.WinPct > b.WinPct
		}
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		if a.Losses != b.Losses {
			return a.Losses < b.Losses
		}
		return a.Season > b.Season
	})
	return topN(rows, n)
}

// WorstSeasons ranks qualified seasons by record, worst first.
func (l *League) WorstSeasons(n int) []SeasonAggregate {
	rows := l.qualifiedSeasons()
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.WinPct != b.WinPct {
			return a.WinPct < b.WinPct
		}
		if a.Wins != b.Wins {
			return a.Wins < b.Wins
		}
		if a.Losses != b.Losses {
			return a.Losses > b.Losses
		}
		return a.Season < b.Season
	})
	return topN(rows, n)
}

// LuckiestSeasons ranks qualified seasons by luck, highest first.
func (l *League) LuckiestSeasons(n int) []SeasonAggregate {
	rows := l.qualifiedSeasons()
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Luck != rows[j].Luck {
			return rows[i].Luck > rows[j].Luck
		}
		return rows[i].Season > rows[j].Season
	})
	return topN(rows, n)
}

// UnluckiestSeasons ranks qualified seasons by luck, lowest first.
func (l *League) UnluckiestSeasons(n int) []SeasonAggregate {
	rows := l.qualifiedSeasons()
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Luck != rows[j].Luck {
			return rows[i].Luck < rows[j].Luck
		}
		return rows[i].Season < rows[j].Season
	})
	return topN(rows, n)
}

// HighestScoringSeasons ranks qualified seasons by points per game.
func (l *League) HighestScoringSeasons(n int) []SeasonAggregate {
	rows := l.qualifiedSeasons()
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].PPG != rows[j].PPG {
			return rows[i].PPG > rows[j].PPG
		}
		return rows[i].Season > rows[j].Season
	})
	return topN(rows, n)
}

// MostPointsAllowedSeasons ranks qualified seasons by opponent points
// per game, highest first.
func (l *League) MostPointsAllowedSeasons(n int) []SeasonAggregate {
	rows := l.qualifiedSeasons()
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].OPPG != rows[j].OPPG {
			return rows[i].OPPG > rows[j].OPPG
		}
		return rows[i].Season > rows[j].Season
	})
	return topN(rows, n)
}

// FewestPointsAllowedSeasons ranks qualified seasons by opponent points
// per game, lowest first.
func (l *League) FewestPointsAllowedSeasons(n int) []SeasonAggregate {
	rows := l.qualifiedSeasons()
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].OPPG != rows[j].OPPG {
			return rows[i].OPPG < rows[j].OPPG
		}
		return rows[i].Season < rows[j].Season
	})
	return topN(rows, n)
}

// BestSeasonDiffs ranks qualified seasons by point differential,
// best first.
func (l *League) BestSeasonDiffs(n int) []SeasonAggregate {
	rows := l.qualifiedSeasons()
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Diff != rows[j].Diff {
			return rows[i].Diff > rows[j].Diff
		}
		return rows[i].Season > rows[j].Season
	})
	return topN(rows, n)
}

// WorstSeasonDiffs ranks qualified seasons by point differential,
// worst first.
func (l *League) WorstSeasonDiffs(n int) []SeasonAggregate {
	rows := l.qualifiedSeasons()
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Diff != rows[j].Diff {
			return rows[i].Diff < rows[j].Diff
		}
		return rows[i].Season < rows[j].Season
	})
	return topN(rows, n)
}
