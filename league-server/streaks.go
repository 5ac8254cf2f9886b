package main

import (
	"fmt"
	"strings"

	"github.com/Haynesmodel/Viva/internal/league"
)

// StreaksArgs are the input arguments for the streaks tool.
type StreaksArgs struct {
	Result string `json:"result,omitempty" jsonschema:"Streak type: win|loss (default win)"`
	Scope  string `json:"scope,omitempty" jsonschema:"team = best run per team, global = every run ranked (default team)"`
	TopN   int    `json:"top_n,omitempty" jsonschema:"List length (0 = league default)"`
}

// StreaksOutput is the output of the streaks tool.
type StreaksOutput struct {
	Result string             `json:"result"`
	Scope  string             `json:"scope"`
	Runs   []league.StreakRun `json:"runs"`
}

func buildStreaks(cfg ServerConfig, args StreaksArgs) (StreaksOutput, error) {
	l, err := loadLeague(cfg)
	if err != nil {
		return StreaksOutput{}, err
	}

	target := league.Win
	result := strings.ToLower(strings.TrimSpace(args.Result))
	switch result {
	case "", "win", "w":
		result = "win"
	case "loss", "l":
		target = league.Loss
		result = "loss"
	default:
		return StreaksOutput{}, fmt.Errorf("unknown result: %s (want win or loss)", args.Result)
	}

	n := args.TopN
	if n <= 0 {
		n = cfg.Rules.TopN
	}

	scope := strings.ToLower(strings.TrimSpace(args.Scope))
	var runs []league.StreakRun
	switch scope {
	case "", "team":
		scope = "team"
		runs = l.LongestStreakPerTeam(target, n)
	case "global":
		runs = l.LongestStreaksGlobal(target, n)
	default:
		return StreaksOutput{}, fmt.Errorf("unknown scope: %s (want team or global)", args.Scope)
	}

	return StreaksOutput{Result: result, Scope: scope, Runs: runs}, nil
}
