package main

import (
	"github.com/Haynesmodel/Viva/internal/league"
	"github.com/Haynesmodel/Viva/internal/store"
)

// VerifyArgs are the input arguments for the verify_summaries tool.
type VerifyArgs struct{}

// VerifyOutput is the output of the verify_summaries tool.
type VerifyOutput struct {
	Discrepancies []league.Discrepancy `json:"discrepancies"`
	Clean         bool                 `json:"clean"`
}

func buildVerifySummaries(cfg ServerConfig, _ VerifyArgs) (VerifyOutput, error) {
	l, err := loadLeague(cfg)
	if err != nil {
		return VerifyOutput{}, err
	}
	ds := l.VerifyPostseason()
	return VerifyOutput{Discrepancies: ds, Clean: len(ds) == 0}, nil
}

// RivalriesArgs are the input arguments for the rivalries tool.
type RivalriesArgs struct{}

// RivalriesOutput is the output of the rivalries tool.
type RivalriesOutput struct {
	Rivalries []league.Rivalry `json:"rivalries"`
	Count     int              `json:"count"`
}

func buildRivalries(cfg ServerConfig, _ RivalriesArgs) (RivalriesOutput, error) {
	st := store.NewJSONStore(cfg.DataRoot)
	rs, err := st.LoadRivalries()
	if err != nil {
		return RivalriesOutput{}, err
	}
	return RivalriesOutput{Rivalries: rs, Count: len(rs)}, nil
}

// LeagueTeamsArgs are the input arguments for the league_teams tool.
type LeagueTeamsArgs struct{}

// LeagueTeamsOutput is the output of the league_teams tool.
type LeagueTeamsOutput struct {
	Teams   []string `json:"teams"`
	Seasons []int    `json:"seasons"`
	Games   int      `json:"games"`
}

func buildLeagueTeams(cfg ServerConfig, _ LeagueTeamsArgs) (LeagueTeamsOutput, error) {
	l, err := loadLeague(cfg)
	if err != nil {
		return LeagueTeamsOutput{}, err
	}
	return LeagueTeamsOutput{Teams: l.Teams(), Seasons: l.Seasons(), Games: len(l.Games)}, nil
}
