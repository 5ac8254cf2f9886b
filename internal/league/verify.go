package league

import "sort"

// Discrepancy is one disagreement between a postseason total derived
// from the game log and the season summary's reported value. The
// engine surfaces these for verification; it never corrects either
// side.
type Discrepancy struct {
	Team     string `json:"team"`
	Season   int    `json:"season"`
	Field    string `json:"field"`
	Derived  int    `json:"derived"`
	Reported int    `json:"reported"`
}

// VerifyPostseason cross-derives playoff and saunders win/loss totals
// per (team, season) from decided bracket games — third-place games are
// exhibition and excluded — and diffs them against every season
// summary row. An empty result means the two sources agree.
func (l *League) VerifyPostseason() []Discrepancy {
	type wl struct{ w, l int }
	po := make(map[teamSeason]*wl)
	sa := make(map[teamSeason]*wl)
	bump := func(m map[teamSeason]*wl, team string, season int, won bool) {
		k := teamSeason{team, season}
		r, ok := m[k]
		if !ok {
			r = &wl{}
			m[k] = r
		}
		if won {
			r.w++
		} else {
			r.l++
		}
	}

	for _, g := range l.Games {
		if g.Phase == PhaseRegular || g.Stage == StageThirdPlace {
			continue
		}
		if g.ScoreA == g.ScoreB {
			continue
		}
		m := po
		if g.Phase == PhaseSaunders {
			m = sa
		}
		aWon := g.ScoreA > g.ScoreB
		bump(m, g.TeamA, g.Season, aWon)
		bump(m, g.TeamB, g.Season, !aWon)
	}

	var out []Discrepancy
	for _, s := range l.Summaries {
		k := teamSeason{s.Owner, s.Season}
		derivedPO := wl{}
		if r, ok := po[k]; ok {
			derivedPO = *r
		}
		derivedSA := wl{}
		if r, ok := sa[k]; ok {
			derivedSA = *r
		}
		checks := []struct {
			field    string
			derived  int
			reported int
		}{
			{"playoff_wins", derivedPO.w, s.PlayoffWins},
			{"playoff_losses", derivedPO.l, s.PlayoffLosses},
			{"saunders_wins", derivedSA.w, s.SaundersWins},
			{"saunders_losses", derivedSA.l, s.SaundersLosses},
		}
		for _, c := range checks {
			if c.derived != c.reported {
				out = append(out, Discrepancy{
					Team:     s.Owner,
					Season:   s.Season,
					Field:    c.field,
					Derived:  c.derived,
					Reported: c.reported,
				})
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Season != out[j].Season {
			return out[i].Season < out[j].Season
		}
		if out[i].Team != out[j].Team {
			return out[i].Team < out[j].Team
		}
		return out[i].Field < out[j].Field
	})
	if out == nil {
		out = []Discrepancy{}
	}
	return out
}
