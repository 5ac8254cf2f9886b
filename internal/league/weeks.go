package league

import "sort"

type weekKey struct {
	game string // canonical game key
	team string
}

// WeekTable maps (game, participant) to that participant's sequential
// week number for the game's season. It is an explicit lookup table so
// the canonical Game records stay immutable; the same game can carry
// different week numbers for its two participants because their
// distinct-date histories diverge.
type WeekTable struct {
	weeks map[weekKey]int
}

// DeriveWeeks numbers each team's season 1..K in ascending date order,
// where K is the count of distinct dates the team played. A repeated
// date (a multi-leg round) reuses the week already assigned to it.
func DeriveWeeks(games []Game) WeekTable {
	t := WeekTable{weeks: make(map[weekKey]int)}
	for _, season := range Seasons(games) {
		var seasonGames []Game
		for _, g := range games {
			if g.Season == season {
				seasonGames = append(seasonGames, g)
			}
		}
		for _, team := range Teams(seasonGames) {
			var teamGames []Game
			for _, g := range seasonGames {
				if g.TeamA == team || g.TeamB == team {
					teamGames = append(teamGames, g)
				}
			}
			sort.SliceStable(teamGames, func(i, j int) bool {
				return teamGames[i].Date < teamGames[j].Date
			})
			idx := 0
			byDate := make(map[string]int)
			for _, g := range teamGames {
				wk, seenDate := byDate[g.Date]
				if !seenDate {
					idx++
					wk = idx
					byDate[g.Date] = wk
				}
				t.weeks[weekKey{game: CanonicalKey(g), team: team}] = wk
			}
		}
	}
	return t
}

// Week returns team's week number for g, or false if team did not play
// in g or g is not part of the derived set.
func (t WeekTable) Week(g Game, team string) (int, bool) {
	wk, ok := t.weeks[weekKey{game: CanonicalKey(g), team: team}]
	return wk, ok
}

// MaxWeek returns the highest week number derived across the whole set.
func (t WeekTable) MaxWeek() int {
	max := 0
	for _, wk := range t.weeks {
		if wk > max {
			max = wk
		}
	}
	return max
}
