package league

import (
	"math"
	"testing"
)

// luckLeague is one regular-season date with six scores:
// Mike 100 beats Dave 90; Pat 80 loses to Sam 110; Tom 120 beats Joe 100.
func luckLeague() *League {
	raw := []Game{
		regGame(2020, "2020-09-13", "Mike", "Dave", 100, 90),
		regGame(2020, "2020-09-13", "Pat", "Sam", 80, 110),
		regGame(2020, "2020-09-13", "Tom", "Joe", 120, 100),
	}
	return New(raw, nil, DefaultRules())
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestExpectedWin_Percentile(t *testing.T) {
	l := luckLeague()
	g := l.Games[0]

	// Mike's 100 vs pool {90, 80, 110, 120, 100}: 2 below, 1 tied.
	xw, ok := l.ExpectedWin("Mike", g)
	if !ok {
		t.Fatal("no expected win for Mike")
	}
	if !approx(xw, 0.5) {
		t.Errorf("Mike xw = %v, want 0.5", xw)
	}

	// Top score of the date beats everyone.
	xw, _ = l.ExpectedWin("Tom", l.Games[2])
	if !approx(xw, 1.0) {
		t.Errorf("Tom xw = %v, want 1.0", xw)
	}

	// Bottom score of the date beats no one.
	xw, _ = l.ExpectedWin("Pat", l.Games[1])
	if !approx(xw, 0.0) {
		t.Errorf("Pat xw = %v, want 0.0", xw)
	}
}

func TestExpectedWin_Excluded(t *testing.T) {
	l := luckLeague()
	if _, ok := l.ExpectedWin("Sam", l.Games[0]); ok {
		t.Error("expected win resolved for a non-participant")
	}

	playoff := Normalize([]Game{{
		Season: 2020, Date: "2020-12-20", TeamA: "Mike", TeamB: "Dave",
		ScoreA: 100, ScoreB: 90, Type: "Playoff", Round: "Championship",
	}})[0]
	if _, ok := ExpectedWin([]Game{playoff}, "Mike", playoff); ok {
		t.Error("expected win resolved for a playoff game")
	}
}

func TestExpectedWin_PoolSize(t *testing.T) {
	raw := []Game{regGame(2020, "2020-09-13", "Mike", "Dave", 100, 90)}
	l := New(raw, nil, DefaultRules())
	// Dave is the only other score, so the pool for Mike is just Dave.
	xw, ok := l.ExpectedWin("Mike", l.Games[0])
	if !ok || !approx(xw, 1.0) {
		t.Fatalf("xw = %v ok=%v, want 1.0 true", xw, ok)
	}
	// No comparison set at all.
	if _, ok := ExpectedWin(nil, "Mike", l.Games[0]); ok {
		t.Fatal("expected win resolved with an empty pool")
	}
}

func TestLuckSummary(t *testing.T) {
	l := luckLeague()

	mike := l.LuckSummary("Mike", 0)
	if mike.Games != 1 || !approx(mike.Actual, 1) || !approx(mike.Expected, 0.5) || !approx(mike.Luck, 0.5) {
		t.Errorf("Mike luck = %+v", mike)
	}

	// Tom won and was expected to: zero luck.
	tom := l.LuckSummary("Tom", 0)
	if !approx(tom.Luck, 0) {
		t.Errorf("Tom luck = %v, want 0", tom.Luck)
	}

	// Pat lost and was expected to: zero luck.
	pat := l.LuckSummary("Pat", 0)
	if !approx(pat.Actual, 0) || !approx(pat.Luck, 0) {
		t.Errorf("Pat luck = %+v", pat)
	}
}

func TestLuckSummary_TieHalfCredit(t *testing.T) {
	raw := []Game{
		regGame(2020, "2020-09-13", "Mike", "Dave", 100, 100),
		regGame(2020, "2020-09-13", "Pat", "Sam", 80, 120),
	}
	l := New(raw, nil, DefaultRules())
	mike := l.LuckSummary("Mike", 0)
	// Pool for Mike: {100, 80, 120} -> (1 + 0.5) / 3.
	if !approx(mike.Actual, 0.5) {
		t.Errorf("tie actual = %v, want 0.5", mike.Actual)
	}
	if !approx(mike.Expected, 0.5) {
		t.Errorf("tie expected = %v, want 0.5", mike.Expected)
	}
}

func TestLuckSummary_SeasonFilter(t *testing.T) {
	raw := []Game{
		regGame(2020, "2020-09-13", "Mike", "Dave", 100, 90),
		regGame(2021, "2021-09-12", "Mike", "Dave", 80, 90),
	}
	l := New(raw, nil, DefaultRules())
	if got := l.LuckSummary("Mike", 2021); got.Games != 1 || !approx(got.Actual, 0) {
		t.Errorf("2021-only luck = %+v", got)
	}
	if got := l.LuckSummary("Mike", 0); got.Games != 2 {
		t.Errorf("all-seasons games = %d, want 2", got.Games)
	}
}
