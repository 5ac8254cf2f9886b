package league

import "testing"

// aggLeague is a four-team 2020 season over two dates, with a seeded
// summary row for Joe who has no surviving games.
func aggLeague() *League {
	raw := []Game{
		regGame(2020, "2020-09-13", "Mike", "Dave", 110, 100),
		regGame(2020, "2020-09-13", "Sam", "Pat", 90, 120),
		regGame(2020, "2020-09-20", "Mike", "Dave", 105, 115),
		regGame(2020, "2020-09-20", "Sam", "Pat", 100, 100),
	}
	summaries := []SeasonSummary{
		{Season: 2020, Owner: "Joe"},
	}
	return New(raw, summaries, DefaultRules())
}

func TestSeasonAggregates(t *testing.T) {
	l := aggLeague()
	rows := l.SeasonAggregates()

	byTeam := make(map[string]SeasonAggregate)
	for _, r := range rows {
		byTeam[r.Team] = r
	}

	mike := byTeam["Mike"]
	if mike.Games != 2 || mike.Wins != 1 || mike.Losses != 1 {
		t.Fatalf("Mike record = %+v", mike)
	}
	if !approx(mike.PointsFor, 215) || !approx(mike.PPG, 107.5) || !approx(mike.Diff, 0) {
		t.Errorf("Mike points = %+v", mike)
	}
	if !approx(mike.WinPct, 0.5) {
		t.Errorf("Mike win pct = %v", mike.WinPct)
	}
	// d1: 110 over {100, 90, 120} = 2/3; d2: 105 over {115, 100, 100} = 2/3.
	if !approx(mike.ExpectedWins, 4.0/3.0) {
		t.Errorf("Mike expected = %v, want 4/3", mike.ExpectedWins)
	}
	if !approx(mike.Luck, 1-4.0/3.0) {
		t.Errorf("Mike luck = %v", mike.Luck)
	}

	pat := byTeam["Pat"]
	if pat.Wins != 1 || pat.Ties != 1 || !approx(pat.ActualWins, 1.5) {
		t.Errorf("Pat record = %+v", pat)
	}
	if !approx(pat.WinPct, 0.75) {
		t.Errorf("Pat win pct = %v", pat.WinPct)
	}

	// Summarized season with no games still appears as a zero line.
	joe, ok := byTeam["Joe"]
	if !ok {
		t.Fatal("seeded summary row missing")
	}
	if joe.Games != 0 || joe.WinPct != 0 || joe.PPG != 0 {
		t.Errorf("Joe zero line = %+v", joe)
	}
}

func TestSeasonAggregates_Ordering(t *testing.T) {
	raw := []Game{
		regGame(2021, "2021-09-12", "Sam", "Dave", 100, 90),
		regGame(2020, "2020-09-13", "Mike", "Dave", 110, 100),
	}
	rows := New(raw, nil, DefaultRules()).SeasonAggregates()
	want := []struct {
		team   string
		season int
	}{
		{"Dave", 2020}, {"Mike", 2020}, {"Dave", 2021}, {"Sam", 2021},
	}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d", len(rows), len(want))
	}
	for i, w := range want {
		if rows[i].Team != w.team || rows[i].Season != w.season {
			t.Errorf("row %d = %s/%d, want %s/%d", i, rows[i].Team, rows[i].Season, w.team, w.season)
		}
	}
}

func TestAllTimeRegular_Ordering(t *testing.T) {
	l := aggLeague()
	rows := l.AllTimeRegular()
	// Pat 0.75, then Dave and Mike tied at 0.5 with equal PPG (107.5),
	// broken by name; Sam 0.25; Joe 0.
	want := []string{"Pat", "Dave", "Mike", "Sam", "Joe"}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d", len(rows), len(want))
	}
	for i, w := range want {
		if rows[i].Team != w {
			t.Errorf("row %d = %s, want %s", i, rows[i].Team, w)
		}
	}
}

func TestAllTimePostseason(t *testing.T) {
	raw := []Game{
		{Season: 2020, Date: "2020-12-20", TeamA: "Mike", TeamB: "Dave", ScoreA: 130, ScoreB: 100, Type: "Playoff", Round: "Championship"},
		{Season: 2020, Date: "2020-12-20", TeamA: "Sam", TeamB: "Pat", ScoreA: 90, ScoreB: 95, Type: "Saunders", Round: "Final"},
	}
	summaries := []SeasonSummary{
		{Season: 2020, Owner: "Mike", Champion: true, Bye: true, PlayoffWins: 2},
		{Season: 2020, Owner: "Dave", PlayoffWins: 1, PlayoffLosses: 1},
		{Season: 2020, Owner: "Pat", Saunders: true, SaundersWins: 1},
	}
	l := New(raw, summaries, DefaultRules())
	rows := l.AllTimePostseason()
	if rows[0].Team != "Mike" {
		t.Fatalf("top row = %s, want Mike (champion)", rows[0].Team)
	}
	mike := rows[0]
	if mike.Championships != 1 || mike.Byes != 1 || mike.PlayoffWins != 2 {
		t.Errorf("Mike summary facts = %+v", mike)
	}
	if !approx(mike.PlayoffPPG, 130) || !approx(mike.PlayoffOPPG, 100) {
		t.Errorf("Mike playoff scoring = %+v", mike)
	}
	for _, r := range rows {
		if r.Team == "Pat" {
			if r.SaundersTitles != 1 || !approx(r.SaundersPPG, 95) {
				t.Errorf("Pat saunders line = %+v", r)
			}
		}
	}
}

func TestAverageFinish(t *testing.T) {
	finish := func(n int) *int { return &n }
	summaries := []SeasonSummary{
		{Season: 2020, Owner: "Mike", Finish: finish(1)},
		{Season: 2021, Owner: "Mike", Finish: finish(3)},
		{Season: 2020, Owner: "Dave", Finish: finish(2)},
		{Season: 2021, Owner: "Dave"}, // no numeric finish, ignored
		{Season: 2020, Owner: "Sam"},  // never ranked, omitted
	}
	l := New(nil, summaries, DefaultRules())
	rows := l.AverageFinish()
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].Team != "Mike" || !approx(rows[0].AvgFinish, 2) || rows[0].Seasons != 2 {
		t.Errorf("row 0 = %+v", rows[0])
	}
	if rows[1].Team != "Dave" || !approx(rows[1].AvgFinish, 2) || rows[1].Seasons != 1 {
		t.Errorf("row 1 = %+v", rows[1])
	}
}

func TestHeadToHeadPairs_Floor(t *testing.T) {
	l := aggLeague()

	pairs := l.HeadToHeadPairs(2)
	found := false
	for _, p := range pairs {
		if p.Team == "Mike" && p.Opponent == "Dave" {
			found = true
			if p.Games != 2 || p.Wins != 1 || p.Losses != 1 || !approx(p.WinPct, 0.5) {
				t.Errorf("Mike-Dave pair = %+v", p)
			}
		}
	}
	if !found {
		t.Fatal("Mike-Dave pair missing at floor 2")
	}

	if got := l.HeadToHeadPairs(3); len(got) != 0 {
		t.Fatalf("floor 3 returned %d pairs, want 0", len(got))
	}
}

func TestHeadToHeadPairs_DefaultFloor(t *testing.T) {
	rules := DefaultRules()
	rules.MinHeadToHeadGames = 2
	raw := []Game{
		regGame(2020, "2020-09-13", "Mike", "Dave", 110, 100),
		regGame(2020, "2020-09-20", "Mike", "Dave", 105, 115),
	}
	l := New(raw, nil, rules)
	if got := l.HeadToHeadPairs(0); len(got) != 2 {
		t.Fatalf("default floor returned %d pairs, want 2 (both directions)", len(got))
	}
}
