package league

// ExpectedWin computes the percentile-style expected win probability for
// team's score in g against the whole league's scoring that day: the
// fraction of other teams' same-(season, date) regular-season scores it
// beat, with half credit for ties. The actual opponent's score carries
// no special weight. Returns false for non-regular games, when team did
// not play in g, or when no comparison pool exists.
func ExpectedWin(games []Game, team string, g Game) (float64, bool) {
	if g.Phase != PhaseRegular {
		return 0, false
	}
	s, ok := SideFor(g, team)
	if !ok {
		return 0, false
	}
	below, tied, others := 0, 0, 0
	for _, x := range games {
		if x.Season != g.Season || x.Date != g.Date || x.Phase != PhaseRegular {
			continue
		}
		for _, entry := range []struct {
			team  string
			score float64
		}{{x.TeamA, x.ScoreA}, {x.TeamB, x.ScoreB}} {
			if entry.team == team {
				continue
			}
			others++
			if entry.score < s.PointsFor {
				below++
			} else if entry.score == s.PointsFor {
				tied++
			}
		}
	}
	if others == 0 {
		return 0, false
	}
	return (float64(below) + 0.5*float64(tied)) / float64(others), true
}

// Luck compares a team's actual win credit to its expected wins.
// Positive luck means more wins than the weekly scoring rank predicts.
type Luck struct {
	Team     string  `json:"team"`
	Games    int     `json:"games"`
	Actual   float64 `json:"actual_wins"`
	Expected float64 `json:"expected_wins"`
	Luck     float64 `json:"luck"`
}

// LuckSummary sums actual win credit (win 1, tie 0.5) minus expected win
// probability over team's regular-season games in the given set.
func LuckSummary(games []Game, team string) Luck {
	out := Luck{Team: team}
	for _, g := range games {
		if g.Phase != PhaseRegular {
			continue
		}
		s, ok := SideFor(g, team)
		if !ok {
			continue
		}
		out.Games++
		switch s.Result {
		case Win:
			out.Actual++
		case Tie:
			out.Actual += 0.5
		}
		if xw, ok := ExpectedWin(games, team, g); ok {
			out.Expected += xw
		}
	}
	out.Luck = out.Actual - out.Expected
	return out
}

// ExpectedWin resolves against the league's full canonical game set.
func (l *League) ExpectedWin(team string, g Game) (float64, bool) {
	return ExpectedWin(l.Games, team, g)
}

// LuckSummary computes team's luck over the full canonical game set,
// optionally restricted to one season (season 0 means all).
func (l *League) LuckSummary(team string, season int) Luck {
	games := l.Games
	if season != 0 {
		games = nil
		for _, g := range l.Games {
			if g.Season == season {
				games = append(games, g)
			}
		}
	}
	return LuckSummary(games, team)
}
