package main

import (
	"fmt"
	"strings"

	"github.com/Haynesmodel/Viva/internal/league"
	"github.com/Haynesmodel/Viva/internal/store"
)

// LeagueHistoryArgs are the input arguments for the league_history tool.
type LeagueHistoryArgs struct {
	Team     string `json:"team,omitempty" jsonschema:"Team name (empty = both sides of every game)"`
	Opponent string `json:"opponent,omitempty" jsonschema:"Only games against this opponent"`
	Season   int    `json:"season,omitempty" jsonschema:"Season year (0 = all)"`
	Week     int    `json:"week,omitempty" jsonschema:"Week number (0 = all)"`
	Phase    string `json:"phase,omitempty" jsonschema:"Game phase: Regular|Playoff|Saunders (empty = all)"`
}

// LeagueHistoryOutput is the output of the league_history tool.
type LeagueHistoryOutput struct {
	Rows  []league.HistoryRow `json:"rows"`
	Count int                 `json:"count"`
}

func buildLeagueHistory(cfg ServerConfig, args LeagueHistoryArgs) (LeagueHistoryOutput, error) {
	l, err := loadLeague(cfg)
	if err != nil {
		return LeagueHistoryOutput{}, err
	}
	phase, err := parsePhase(args.Phase)
	if err != nil {
		return LeagueHistoryOutput{}, err
	}

	rows := make([]league.HistoryRow, 0)
	for _, r := range l.HistoryRows(args.Team) {
		if args.Opponent != "" && r.Opponent != args.Opponent {
			continue
		}
		if args.Season != 0 && r.Season != args.Season {
			continue
		}
		if args.Week != 0 && r.Week != args.Week {
			continue
		}
		if phase != "" && r.Phase != phase {
			continue
		}
		rows = append(rows, r)
	}
	return LeagueHistoryOutput{Rows: rows, Count: len(rows)}, nil
}

func parsePhase(s string) (league.Phase, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return "", nil
	case "regular":
		return league.PhaseRegular, nil
	case "playoff":
		return league.PhasePlayoff, nil
	case "saunders":
		return league.PhaseSaunders, nil
	default:
		return "", fmt.Errorf("unknown phase: %s", s)
	}
}

// ExportHistoryArgs are the input arguments for the export_history tool.
type ExportHistoryArgs struct {
	Team string `json:"team,omitempty" jsonschema:"Team name (empty = all teams, both sides)"`
}

func buildExportHistory(cfg ServerConfig, args ExportHistoryArgs) (string, error) {
	l, err := loadLeague(cfg)
	if err != nil {
		return "", err
	}
	rows := l.HistoryRows(args.Team)

	var sb strings.Builder
	if err := league.WriteCSV(&sb, rows); err != nil {
		return "", err
	}
	csv := sb.String()

	if cfg.WriteDerived {
		name := "history_ALL.csv"
		if args.Team != "" {
			name = fmt.Sprintf("history_%s.csv", args.Team)
		}
		derived := store.NewJSONStore(cfg.DerivedRoot)
		if err := derived.WriteRaw(name, []byte(csv), false); err != nil {
			return "", fmt.Errorf("write derived export: %w", err)
		}
	}
	return csv, nil
}
