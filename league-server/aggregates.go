package main

import (
	"fmt"

	"github.com/Haynesmodel/Viva/internal/league"
)

// SeasonAggregatesArgs are the input arguments for the season_aggregates tool.
type SeasonAggregatesArgs struct {
	Team   string `json:"team,omitempty" jsonschema:"Team name (empty = all teams)"`
	Season int    `json:"season,omitempty" jsonschema:"Season year (0 = all)"`
}

// SeasonAggregatesOutput is the output of the season_aggregates tool.
type SeasonAggregatesOutput struct {
	Rows  []league.SeasonAggregate `json:"rows"`
	Count int                      `json:"count"`
}

func buildSeasonAggregates(cfg ServerConfig, args SeasonAggregatesArgs) (SeasonAggregatesOutput, error) {
	l, err := loadLeague(cfg)
	if err != nil {
		return SeasonAggregatesOutput{}, err
	}
	rows := make([]league.SeasonAggregate, 0)
	for _, r := range l.SeasonAggregates() {
		if args.Team != "" && r.Team != args.Team {
			continue
		}
		if args.Season != 0 && r.Season != args.Season {
			continue
		}
		rows = append(rows, r)
	}
	return SeasonAggregatesOutput{Rows: rows, Count: len(rows)}, nil
}

// AllTimeArgs are the input arguments for the alltime_summary tool.
type AllTimeArgs struct{}

// AllTimeOutput bundles the three all-time tables.
type AllTimeOutput struct {
	Regular    []league.TeamAllTime    `json:"regular"`
	Postseason []league.TeamPostseason `json:"postseason"`
	AvgFinish  []league.FinishRow      `json:"avg_finish"`
}

func buildAllTimeSummary(cfg ServerConfig, _ AllTimeArgs) (AllTimeOutput, error) {
	l, err := loadLeague(cfg)
	if err != nil {
		return AllTimeOutput{}, err
	}
	return AllTimeOutput{
		Regular:    l.AllTimeRegular(),
		Postseason: l.AllTimePostseason(),
		AvgFinish:  l.AverageFinish(),
	}, nil
}

// LuckArgs are the input arguments for the luck tool.
type LuckArgs struct {
	Team   string `json:"team" jsonschema:"Team name (required)"`
	Season int    `json:"season,omitempty" jsonschema:"Season year (0 = all seasons)"`
}

func buildLuck(cfg ServerConfig, args LuckArgs) (league.Luck, error) {
	if args.Team == "" {
		return league.Luck{}, fmt.Errorf("team is required")
	}
	l, err := loadLeague(cfg)
	if err != nil {
		return league.Luck{}, err
	}
	return l.LuckSummary(args.Team, args.Season), nil
}
