package league

import "testing"

func TestSideFor(t *testing.T) {
	g := regGame(2020, "2020-09-13", "Mike", "Dave", 112.4, 98.6)

	s, ok := SideFor(g, "Mike")
	if !ok || s.Result != Win || s.Opponent != "Dave" || s.PointsFor != 112.4 {
		t.Fatalf("Mike side = %+v ok=%v", s, ok)
	}

	s, ok = SideFor(g, "Dave")
	if !ok || s.Result != Loss || s.Opponent != "Mike" || s.PointsAgainst != 112.4 {
		t.Fatalf("Dave side = %+v ok=%v", s, ok)
	}

	if _, ok := SideFor(g, "Sam"); ok {
		t.Fatal("SideFor resolved a non-participant")
	}

	tie := regGame(2020, "2020-09-20", "Mike", "Dave", 100, 100)
	s, _ = SideFor(tie, "Mike")
	if s.Result != Tie {
		t.Fatalf("tie resolved as %s", s.Result)
	}
}
