package league

// Result of a game from one side's perspective.
type Result string

const (
	Win  Result = "W"
	Loss Result = "L"
	Tie  Result = "T"
)

// Side is one team's view of a game. It is the single definition of
// "who won": every higher-level computation resolves outcomes through
// SideFor rather than comparing scores inline.
type Side struct {
	PointsFor     float64 `json:"pf"`
	PointsAgainst float64 `json:"pa"`
	Opponent      string  `json:"opponent"`
	Result        Result  `json:"result"`
}

// SideFor resolves which side of g team played. The second return is
// false when team did not play in g.
func SideFor(g Game, team string) (Side, bool) {
	var s Side
	switch team {
	case g.TeamA:
		s = Side{PointsFor: g.ScoreA, PointsAgainst: g.ScoreB, Opponent: g.TeamB}
	case g.TeamB:
		s = Side{PointsFor: g.ScoreB, PointsAgainst: g.ScoreA, Opponent: g.TeamA}
	default:
		return Side{}, false
	}
	switch {
	case s.PointsFor > s.PointsAgainst:
		s.Result = Win
	case s.PointsFor < s.PointsAgainst:
		s.Result = Loss
	default:
		s.Result = Tie
	}
	return s, true
}
