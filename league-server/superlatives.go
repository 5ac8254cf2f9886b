package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Haynesmodel/Viva/internal/league"
)

// WeeklyAwardsArgs are the input arguments for the weekly_awards tool.
type WeeklyAwardsArgs struct{}

// WeeklyAwardsOutput is the output of the weekly_awards tool.
type WeeklyAwardsOutput struct {
	Awards      league.Awards      `json:"awards"`
	SubLow      []league.TeamCount `json:"sub_low"`
	PlayoffWins []league.TeamCount `json:"playoff_wins"`
	HighLine    float64            `json:"high_line"`
	LowLine     float64            `json:"low_line"`
}

func buildWeeklyAwards(cfg ServerConfig, _ WeeklyAwardsArgs) (WeeklyAwardsOutput, error) {
	l, err := loadLeague(cfg)
	if err != nil {
		return WeeklyAwardsOutput{}, err
	}
	return WeeklyAwardsOutput{
		Awards:      l.WeeklyAwards(),
		SubLow:      l.SubLowGames(),
		PlayoffWins: l.PlayoffWinCounts(),
		HighLine:    cfg.Rules.HighScoreLine,
		LowLine:     cfg.Rules.LowScoreLine,
	}, nil
}

// SuperlativesArgs are the input arguments for the superlatives tool.
type SuperlativesArgs struct {
	List string `json:"list" jsonschema:"Leaderboard name (call with an unknown name to get the full list)"`
	TopN int    `json:"top_n,omitempty" jsonschema:"List length (0 = league default)"`
}

// SuperlativesOutput is the output of the superlatives tool.
type SuperlativesOutput struct {
	List string `json:"list"`
	Rows any    `json:"rows"`
}

// superlativeLists maps each leaderboard name to its builder. Single
// source of truth for dispatch and for the unknown-name error text.
var superlativeLists = map[string]func(l *league.League, n int) any{
	"top_scores":             func(l *league.League, n int) any { return l.TopScores(n) },
	"bottom_scores":          func(l *league.League, n int) any { return l.BottomScores(n) },
	"top_combined":           func(l *league.League, n int) any { return l.TopCombined(n) },
	"playoff_highs":          func(l *league.League, n int) any { return l.PlayoffHighs(n) },
	"playoff_blowouts":       func(l *league.League, n int) any { return l.PlayoffBlowouts(n) },
	"dominant_playoff_runs":  func(l *league.League, n int) any { return l.DominantPlayoffRuns(n) },
	"lowest_scoring_wins":    func(l *league.League, n int) any { return l.LowestScoringWins(n) },
	"highest_scoring_losses": func(l *league.League, n int) any { return l.HighestScoringLosses(n) },
	"not_lowest_runs":        func(l *league.League, n int) any { return l.NotLowestRuns(n) },
	"rival_wins":             func(l *league.League, n int) any { return l.RivalWins(n) },
	"best_seasons":           func(l *league.League, n int) any { return l.BestSeasons(n) },
	"worst_seasons":          func(l *league.League, n int) any { return l.WorstSeasons(n) },
	"luckiest_seasons":       func(l *league.League, n int) any { return l.LuckiestSeasons(n) },
	"unluckiest_seasons":     func(l *league.League, n int) any { return l.UnluckiestSeasons(n) },
	"highest_scoring_seasons": func(l *league.League, n int) any {
		return l.HighestScoringSeasons(n)
	},
	"most_points_allowed_seasons": func(l *league.League, n int) any {
		return l.MostPointsAllowedSeasons(n)
	},
	"fewest_points_allowed_seasons": func(l *league.League, n int) any {
		return l.FewestPointsAllowedSeasons(n)
	},
	"best_season_diffs":  func(l *league.League, n int) any { return l.BestSeasonDiffs(n) },
	"worst_season_diffs": func(l *league.League, n int) any { return l.WorstSeasonDiffs(n) },
}

func buildSuperlatives(cfg ServerConfig, args SuperlativesArgs) (SuperlativesOutput, error) {
	name := strings.ToLower(strings.TrimSpace(args.List))
	build, ok := superlativeLists[name]
	if !ok {
		names := make([]string, 0, len(superlativeLists))
		for k := range superlativeLists {
			names = append(names, k)
		}
		sort.Strings(names)
		return SuperlativesOutput{}, fmt.Errorf("unknown list %q; available: %s", args.List, strings.Join(names, ", "))
	}

	l, err := loadLeague(cfg)
	if err != nil {
		return SuperlativesOutput{}, err
	}
	n := args.TopN
	if n <= 0 {
		n = cfg.Rules.TopN
	}
	return SuperlativesOutput{List: name, Rows: build(l, n)}, nil
}
