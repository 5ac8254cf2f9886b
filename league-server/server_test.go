package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Haynesmodel/Viva/internal/league"
	"github.com/Haynesmodel/Viva/internal/store"
)

// writeAssets materializes a league data root with the given games and
// summaries so tools can load it like production data.
func writeAssets(t *testing.T, games []league.Game, summaries []league.SeasonSummary) ServerConfig {
	t.Helper()
	root := t.TempDir()
	writeJSONFile(t, filepath.Join(root, store.GamesFile), games)
	writeJSONFile(t, filepath.Join(root, store.SummariesFile), summaries)
	return ServerConfig{
		DataRoot: root,
		Rules:    league.DefaultRules(),
	}
}

func writeJSONFile(t *testing.T, path string, v any) {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func fixtureGames() []league.Game {
	return []league.Game{
		{Season: 2020, Date: "2020-09-13", TeamA: "Mike", TeamB: "Dave", ScoreA: 110, ScoreB: 100, Type: "Regular"},
		{Season: 2020, Date: "2020-09-20", TeamA: "Mike", TeamB: "Dave", ScoreA: 95, ScoreB: 105, Type: "Regular"},
		{Season: 2020, Date: "2020-12-20", TeamA: "Mike", TeamB: "Dave", ScoreA: 120, ScoreB: 110, Type: "Playoff", Round: "Championship"},
		{Season: 2021, Date: "2021-09-12", TeamA: "Mike", TeamB: "Sam", ScoreA: 100, ScoreB: 90, Type: "Regular"},
	}
}

func fixtureSummaries() []league.SeasonSummary {
	return []league.SeasonSummary{
		{Season: 2020, Owner: "Mike", Champion: true, PlayoffWins: 1},
		{Season: 2020, Owner: "Dave", PlayoffLosses: 1},
	}
}

func TestBuildLeagueHistory_Filters(t *testing.T) {
	cfg := writeAssets(t, fixtureGames(), fixtureSummaries())

	out, err := buildLeagueHistory(cfg, LeagueHistoryArgs{Team: "Mike"})
	if err != nil {
		t.Fatal(err)
	}
	if out.Count != 4 {
		t.Fatalf("Mike rows = %d, want 4", out.Count)
	}

	out, err = buildLeagueHistory(cfg, LeagueHistoryArgs{Team: "Mike", Season: 2021})
	if err != nil {
		t.Fatal(err)
	}
	if out.Count != 1 || out.Rows[0].Opponent != "Sam" {
		t.Fatalf("2021 rows = %+v", out.Rows)
	}

	out, err = buildLeagueHistory(cfg, LeagueHistoryArgs{Team: "Mike", Phase: "playoff"})
	if err != nil {
		t.Fatal(err)
	}
	if out.Count != 1 || out.Rows[0].Phase != league.PhasePlayoff {
		t.Fatalf("playoff rows = %+v", out.Rows)
	}

	if _, err := buildLeagueHistory(cfg, LeagueHistoryArgs{Phase: "preseason"}); err == nil {
		t.Fatal("expected error for unknown phase")
	}
}

func TestBuildLeagueHistory_MissingAssets(t *testing.T) {
	cfg := ServerConfig{DataRoot: t.TempDir(), Rules: league.DefaultRules()}
	if _, err := buildLeagueHistory(cfg, LeagueHistoryArgs{}); err == nil {
		t.Fatal("expected error for missing data root")
	}
}

func TestBuildExportHistory_WritesDerived(t *testing.T) {
	cfg := writeAssets(t, fixtureGames(), fixtureSummaries())
	cfg.DerivedRoot = t.TempDir()
	cfg.WriteDerived = true

	csv, err := buildExportHistory(cfg, ExportHistoryArgs{Team: "Mike"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(csv, "date,season,team,") {
		t.Fatalf("csv header missing: %q", csv[:40])
	}

	b, err := os.ReadFile(filepath.Join(cfg.DerivedRoot, "history_Mike.csv"))
	if err != nil {
		t.Fatalf("derived file not written: %v", err)
	}
	if string(b) != csv {
		t.Fatal("derived file differs from tool output")
	}
}

func TestBuildSeasonAggregates_Filters(t *testing.T) {
	cfg := writeAssets(t, fixtureGames(), fixtureSummaries())

	out, err := buildSeasonAggregates(cfg, SeasonAggregatesArgs{Team: "Mike", Season: 2020})
	if err != nil {
		t.Fatal(err)
	}
	if out.Count != 1 {
		t.Fatalf("got %d rows, want 1", out.Count)
	}
	r := out.Rows[0]
	if r.Games != 2 || r.Wins != 1 || r.Losses != 1 {
		t.Fatalf("Mike 2020 = %+v", r)
	}
}

func TestBuildLuck(t *testing.T) {
	cfg := writeAssets(t, fixtureGames(), fixtureSummaries())

	if _, err := buildLuck(cfg, LuckArgs{}); err == nil {
		t.Fatal("expected error for missing team")
	}

	out, err := buildLuck(cfg, LuckArgs{Team: "Mike", Season: 2021})
	if err != nil {
		t.Fatal(err)
	}
	if out.Games != 1 {
		t.Fatalf("luck = %+v", out)
	}
}

func TestBuildHeadToHead_Floor(t *testing.T) {
	cfg := writeAssets(t, fixtureGames(), fixtureSummaries())

	// Default floor (5) filters everything in the fixture.
	out, err := buildHeadToHead(cfg, HeadToHeadArgs{})
	if err != nil {
		t.Fatal(err)
	}
	if out.MinGames != 5 || len(out.Pairs) != 0 {
		t.Fatalf("default floor output = %+v", out)
	}

	out, err = buildHeadToHead(cfg, HeadToHeadArgs{Team: "Mike", Opponent: "Dave", MinGames: 3})
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Pairs) != 1 || out.Pairs[0].Games != 3 {
		t.Fatalf("pairs = %+v", out.Pairs)
	}
}

func TestBuildStreaks(t *testing.T) {
	cfg := writeAssets(t, fixtureGames(), fixtureSummaries())

	out, err := buildStreaks(cfg, StreaksArgs{Result: "loss", Scope: "global"})
	if err != nil {
		t.Fatal(err)
	}
	if out.Result != "loss" || out.Scope != "global" {
		t.Fatalf("echoed args = %+v", out)
	}

	out, err = buildStreaks(cfg, StreaksArgs{})
	if err != nil {
		t.Fatal(err)
	}
	if out.Result != "win" || out.Scope != "team" {
		t.Fatalf("defaults = %+v", out)
	}
	if len(out.Runs) == 0 || out.Runs[0].Team != "Mike" {
		t.Fatalf("runs = %+v", out.Runs)
	}

	if _, err := buildStreaks(cfg, StreaksArgs{Result: "draw"}); err == nil {
		t.Fatal("expected error for unknown result")
	}
	if _, err := buildStreaks(cfg, StreaksArgs{Scope: "galaxy"}); err == nil {
		t.Fatal("expected error for unknown scope")
	}
}

func TestBuildSuperlatives(t *testing.T) {
	cfg := writeAssets(t, fixtureGames(), fixtureSummaries())

	out, err := buildSuperlatives(cfg, SuperlativesArgs{List: "Top_Scores", TopN: 2})
	if err != nil {
		t.Fatal(err)
	}
	if out.List != "top_scores" {
		t.Fatalf("list = %s", out.List)
	}
	rows, ok := out.Rows.([]league.ScoreRow)
	if !ok {
		t.Fatalf("rows type = %T", out.Rows)
	}
	if len(rows) != 2 || rows[0].PointsFor != 120 {
		t.Fatalf("rows = %+v", rows)
	}

	_, err = buildSuperlatives(cfg, SuperlativesArgs{List: "nope"})
	if err == nil || !strings.Contains(err.Error(), "top_scores") {
		t.Fatalf("unknown-list error should name the options, got %v", err)
	}
}

func TestBuildWeeklyAwards(t *testing.T) {
	cfg := writeAssets(t, fixtureGames(), fixtureSummaries())
	out, err := buildWeeklyAwards(cfg, WeeklyAwardsArgs{})
	if err != nil {
		t.Fatal(err)
	}
	if out.HighLine != 150 || out.LowLine != 70 {
		t.Fatalf("lines = %+v", out)
	}
	// Three regular dates, each with a single top scorer.
	total := 0
	for _, r := range out.Awards.Top {
		total += r.Count
	}
	if total != 3 {
		t.Fatalf("top award total = %d, want 3", total)
	}
}

func TestBuildVerifySummaries(t *testing.T) {
	cfg := writeAssets(t, fixtureGames(), fixtureSummaries())
	out, err := buildVerifySummaries(cfg, VerifyArgs{})
	if err != nil {
		t.Fatal(err)
	}
	if !out.Clean || len(out.Discrepancies) != 0 {
		t.Fatalf("fixture should verify clean: %+v", out)
	}

	// Corrupt a reported total and the diff surfaces.
	summaries := fixtureSummaries()
	summaries[0].PlayoffWins = 3
	cfg = writeAssets(t, fixtureGames(), summaries)
	out, err = buildVerifySummaries(cfg, VerifyArgs{})
	if err != nil {
		t.Fatal(err)
	}
	if out.Clean || len(out.Discrepancies) != 1 {
		t.Fatalf("corrupted summary not flagged: %+v", out)
	}
}

func TestBuildRivalries(t *testing.T) {
	cfg := writeAssets(t, fixtureGames(), fixtureSummaries())

	out, err := buildRivalries(cfg, RivalriesArgs{})
	if err != nil {
		t.Fatal(err)
	}
	if out.Count != 0 {
		t.Fatalf("missing file should yield empty list: %+v", out)
	}

	writeJSONFile(t, filepath.Join(cfg.DataRoot, store.RivalriesFile), []league.Rivalry{
		{Name: "The Border War", Type: "pair", Members: []string{"Mike", "Dave"}},
	})
	out, err = buildRivalries(cfg, RivalriesArgs{})
	if err != nil {
		t.Fatal(err)
	}
	if out.Count != 1 || out.Rivalries[0].Name != "The Border War" {
		t.Fatalf("rivalries = %+v", out)
	}
}

func TestBuildLeagueTeams(t *testing.T) {
	cfg := writeAssets(t, fixtureGames(), fixtureSummaries())
	out, err := buildLeagueTeams(cfg, LeagueTeamsArgs{})
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Teams) != 3 || out.Teams[0] != "Dave" {
		t.Fatalf("teams = %v", out.Teams)
	}
	if len(out.Seasons) != 2 || out.Games != 4 {
		t.Fatalf("seasons = %v games = %d", out.Seasons, out.Games)
	}
}
