package league

import "sort"

// SeasonAggregate is one team's regular-season line for one season.
// Ratio fields are computed once at read time from the accumulated
// sums, never stored incrementally.
type SeasonAggregate struct {
	Team          string  `json:"team"`
	Season        int     `json:"season"`
	Games         int     `json:"games"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	Ties          int     `json:"ties"`
	PointsFor     float64 `json:"points_for"`
	PointsAgainst float64 `json:"points_against"`
	ActualWins    float64 `json:"actual_wins"`
	ExpectedWins  float64 `json:"expected_wins"`
	WinPct        float64 `json:"win_pct"`
	PPG           float64 `json:"ppg"`
	OPPG          float64 `json:"oppg"`
	Diff          float64 `json:"diff"`
	Luck          float64 `json:"luck"`
}

type teamSeason struct {
	team   string
	season int
}

// SeasonAggregates folds every regular-season game into per-(team,
// season) accumulators, both sides independently. Rows are seeded from
// the season summaries so a summarized season with no surviving games
// still appears with a zero line. Output is sorted by season then team.
func (l *League) SeasonAggregates() []SeasonAggregate {
	acc := make(map[teamSeason]*SeasonAggregate)
	order := make([]teamSeason, 0)
	row := func(team string, season int) *SeasonAggregate {
		k := teamSeason{team, season}
		r, ok := acc[k]
		if !ok {
			r = &SeasonAggregate{Team: team, Season: season}
			acc[k] = r
			order = append(order, k)
		}
		return r
	}

	for _, s := range l.Summaries {
		row(s.Owner, s.Season)
	}

	for _, g := range l.Games {
		if g.Phase != PhaseRegular {
			continue
		}
		for _, team := range []string{g.TeamA, g.TeamB} {
			side, _ := SideFor(g, team)
			r := row(team, g.Season)
			r.Games++
			r.PointsFor += side.PointsFor
			r.PointsAgainst += side.PointsAgainst
			switch side.Result {
			case Win:
				r.Wins++
				r.ActualWins++
			case Loss:
				r.Losses++
			case Tie:
				r.Ties++
				r.ActualWins += 0.5
			}
			if xw, ok := ExpectedWin(l.Games, team, g); ok {
				r.ExpectedWins += xw
			}
		}
	}

	out := make([]SeasonAggregate, 0, len(order))
	for _, k := range order {
		r := *acc[k]
		if n := r.Wins + r.Losses + r.Ties; n > 0 {
			r.WinPct = (float64(r.Wins) + 0.5*float64(r.Ties)) / float64(n)
		}
		if r.Games > 0 {
			r.PPG = r.PointsFor / float64(r.Games)
			r.OPPG = r.PointsAgainst / float64(r.Games)
		}
		r.Diff = r.PointsFor - r.PointsAgainst
		r.Luck = r.ActualWins - r.ExpectedWins
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Season != out[j].Season {
			return out[i].Season < out[j].Season
		}
		return out[i].Team < out[j].Team
	})
	return out
}

// TeamAllTime is a team's all-time regular-season line.
type TeamAllTime struct {
	Team          string  `json:"team"`
	Games         int     `json:"games"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	Ties          int     `json:"ties"`
	PointsFor     float64 `json:"points_for"`
	PointsAgainst float64 `json:"points_against"`
	WinPct        float64 `json:"win_pct"`
	PPG           float64 `json:"ppg"`
	OPPG          float64 `json:"oppg"`
}

// AllTimeRegular folds the season aggregates per team, ranked by win
// percentage, then PPG, then team name.
func (l *League) AllTimeRegular() []TeamAllTime {
	acc := make(map[string]*TeamAllTime)
	for _, r := range l.SeasonAggregates() {
		t, ok := acc[r.Team]
		if !ok {
			t = &TeamAllTime{Team: r.Team}
			acc[r.Team] = t
		}
		t.Games += r.Games
		t.Wins += r.Wins
		t.Losses += r.Losses
		t.Ties += r.Ties
		t.PointsFor += r.PointsFor
		t.PointsAgainst += r.PointsAgainst
	}
	out := make([]TeamAllTime, 0, len(acc))
	for _, t := range acc {
		if n := t.Wins + t.Losses + t.Ties; n > 0 {
			t.WinPct = (float64(t.Wins) + 0.5*float64(t.Ties)) / float64(n)
		}
		if t.Games > 0 {
			t.PPG = t.PointsFor / float64(t.Games)
			t.OPPG = t.PointsAgainst / float64(t.Games)
		}
		out = append(out, *t)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].WinPct != out[j].WinPct {
			return out[i].WinPct > out[j].WinPct
		}
		if out[i].PPG != out[j].PPG {
			return out[i].PPG > out[j].PPG
		}
		return out[i].Team < out[j].Team
	})
	return out
}

// TeamPostseason is a team's all-time postseason line: bracket records
// and championship counts come from the season summaries (ground
// truth), scoring averages from the game log.
type TeamPostseason struct {
	Team           string  `json:"team"`
	PlayoffWins    int     `json:"playoff_wins"`
	PlayoffLosses  int     `json:"playoff_losses"`
	Byes           int     `json:"byes"`
	Championships  int     `json:"championships"`
	PlayoffPPG     float64 `json:"playoff_ppg"`
	PlayoffOPPG    float64 `json:"playoff_oppg"`
	SaundersWins   int     `json:"saunders_wins"`
	SaundersLosses int     `json:"saunders_losses"`
	SaundersTitles int     `json:"saunders_titles"`
	SaundersPPG    float64 `json:"saunders_ppg"`
	SaundersOPPG   float64 `json:"saunders_oppg"`
}

// AllTimePostseason ranks teams by championships, then playoff PPG,
// then team name.
func (l *League) AllTimePostseason() []TeamPostseason {
	type sums struct {
		poPF, poPA float64
		poN        int
		saPF, saPA float64
		saN        int
	}
	acc := make(map[string]*TeamPostseason)
	extra := make(map[string]*sums)
	row := func(team string) (*TeamPostseason, *sums) {
		t, ok := acc[team]
		if !ok {
			t = &TeamPostseason{Team: team}
			acc[team] = t
			extra[team] = &sums{}
		}
		return t, extra[team]
	}

	for _, s := range l.Summaries {
		t, _ := row(s.Owner)
		t.PlayoffWins += s.PlayoffWins
		t.PlayoffLosses += s.PlayoffLosses
		t.SaundersWins += s.SaundersWins
		t.SaundersLosses += s.SaundersLosses
		if s.Bye {
			t.Byes++
		}
		if s.Champion {
			t.Championships++
		}
		if s.Saunders {
			t.SaundersTitles++
		}
	}

	for _, g := range l.Games {
		if g.Phase == PhaseRegular {
			continue
		}
		for _, team := range []string{g.TeamA, g.TeamB} {
			side, _ := SideFor(g, team)
			_, x := row(team)
			if g.Phase == PhasePlayoff {
				x.poPF += side.PointsFor
				x.poPA += side.PointsAgainst
				x.poN++
			} else {
				x.saPF += side.PointsFor
				x.saPA += side.PointsAgainst
				x.saN++
			}
		}
	}

	out := make([]TeamPostseason, 0, len(acc))
	for team, t := range acc {
		x := extra[team]
		if x.poN > 0 {
			t.PlayoffPPG = x.poPF / float64(x.poN)
			t.PlayoffOPPG = x.poPA / float64(x.poN)
		}
		if x.saN > 0 {
			t.SaundersPPG = x.saPF / float64(x.saN)
			t.SaundersOPPG = x.saPA / float64(x.saN)
		}
		out = append(out, *t)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Championships != out[j].Championships {
			return out[i].Championships > out[j].Championships
		}
		if out[i].PlayoffPPG != out[j].PlayoffPPG {
			return out[i].PlayoffPPG > out[j].PlayoffPPG
		}
		return out[i].Team < out[j].Team
	})
	return out
}

// FinishRow is a team's average numeric finish across summarized seasons.
type FinishRow struct {
	Team      string  `json:"team"`
	AvgFinish float64 `json:"avg_finish"`
	Seasons   int     `json:"seasons"`
}

// AverageFinish ignores seasons with no numeric finish; teams with none
// at all are omitted. Lower average ranks first.
func (l *League) AverageFinish() []FinishRow {
	type sums struct {
		total int
		n     int
	}
	acc := make(map[string]*sums)
	for _, s := range l.Summaries {
		if s.Finish == nil {
			continue
		}
		r, ok := acc[s.Owner]
		if !ok {
			r = &sums{}
			acc[s.Owner] = r
		}
		r.total += *s.Finish
		r.n++
	}
	out := make([]FinishRow, 0, len(acc))
	for team, r := range acc {
		out = append(out, FinishRow{Team: team, AvgFinish: float64(r.total) / float64(r.n), Seasons: r.n})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].AvgFinish != out[j].AvgFinish {
			return out[i].AvgFinish < out[j].AvgFinish
		}
		if out[i].Seasons != out[j].Seasons {
			return out[i].Seasons > out[j].Seasons
		}
		return out[i].Team < out[j].Team
	})
	return out
}

// PairRecord is one ordered team pair's head-to-head line.
type PairRecord struct {
	Team     string  `json:"team"`
	Opponent string  `json:"opponent"`
	Games    int     `json:"games"`
	Wins     int     `json:"wins"`
	Losses   int     `json:"losses"`
	Ties     int     `json:"ties"`
	WinPct   float64 `json:"win_pct"`
}

// HeadToHeadPairs accumulates symmetric records over every game
// (regular and postseason alike) and surfaces only pairs meeting the
// minimum-sample floor. minGames <= 0 falls back to the league rule.
func (l *League) HeadToHeadPairs(minGames int) []PairRecord {
	if minGames <= 0 {
		minGames = l.Rules.MinHeadToHeadGames
	}
	type pair struct{ team, opp string }
	acc := make(map[pair]*PairRecord)
	row := func(team, opp string) *PairRecord {
		k := pair{team, opp}
		r, ok := acc[k]
		if !ok {
			r = &PairRecord{Team: team, Opponent: opp}
			acc[k] = r
		}
		return r
	}
	for _, g := range l.Games {
		for _, team := range []string{g.TeamA, g.TeamB} {
			side, _ := SideFor(g, team)
			r := row(team, side.Opponent)
			r.Games++
			switch side.Result {
			case Win:
				r.Wins++
			case Loss:
				r.Losses++
			case Tie:
				r.Ties++
			}
		}
	}
	out := make([]PairRecord, 0)
	for _, r := range acc {
		if r.Games < minGames {
			continue
		}
		r.WinPct = (float64(r.Wins) + 0.5*float64(r.Ties)) / float64(r.Games)
		out = append(out, *r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].WinPct != out[j].WinPct {
			return out[i].WinPct > out[j].WinPct
		}
		if out[i].Games != out[j].Games {
			return out[i].Games > out[j].Games
		}
		if out[i].Team != out[j].Team {
			return out[i].Team < out[j].Team
		}
		return out[i].Opponent < out[j].Opponent
	})
	return out
}
