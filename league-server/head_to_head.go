package main

import (
	"github.com/Haynesmodel/Viva/internal/league"
)

// HeadToHeadArgs are the input arguments for the head_to_head tool.
type HeadToHeadArgs struct {
	Team     string `json:"team,omitempty" jsonschema:"First team (empty = every pair)"`
	Opponent string `json:"opponent,omitempty" jsonschema:"Second team (empty = every opponent of team)"`
	MinGames int    `json:"min_games,omitempty" jsonschema:"Minimum games for a pair to appear (0 = league default)"`
}

// HeadToHeadOutput is the output of the head_to_head tool.
type HeadToHeadOutput struct {
	MinGames int                 `json:"min_games"`
	Pairs    []league.PairRecord `json:"pairs"`
}

func buildHeadToHead(cfg ServerConfig, args HeadToHeadArgs) (HeadToHeadOutput, error) {
	l, err := loadLeague(cfg)
	if err != nil {
		return HeadToHeadOutput{}, err
	}
	minGames := args.MinGames
	if minGames <= 0 {
		minGames = cfg.Rules.MinHeadToHeadGames
	}
	pairs := make([]league.PairRecord, 0)
	for _, p := range l.HeadToHeadPairs(minGames) {
		if args.Team != "" && p.Team != args.Team {
			continue
		}
		if args.Opponent != "" && p.Opponent != args.Opponent {
			continue
		}
		pairs = append(pairs, p)
	}
	return HeadToHeadOutput{MinGames: minGames, Pairs: pairs}, nil
}
