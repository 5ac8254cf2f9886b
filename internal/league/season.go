package league

// SeasonSummary is one team's externally-produced outcome for one season.
// It is ground truth for finish/championship facts; the engine derives
// playoff and saunders win-loss totals independently from the game log
// and surfaces any disagreement (see verify.go).
type SeasonSummary struct {
	Season         int    `json:"season"`
	Owner          string `json:"owner"`
	Wins           int    `json:"wins"`
	Losses         int    `json:"losses"`
	Ties           int    `json:"ties"`
	Finish         *int   `json:"finish"`
	Champion       bool   `json:"champion"`
	Saunders       bool   `json:"saunders"`
	Bye            bool   `json:"bye"`
	SaundersBye    bool   `json:"saunders_bye,omitempty"`
	PlayoffWins    int    `json:"playoff_wins"`
	PlayoffLosses  int    `json:"playoff_losses"`
	SaundersWins   int    `json:"saunders_wins"`
	SaundersLosses int    `json:"saunders_losses"`
}

// Rules holds the league's minimum-sample thresholds and score lines.
// Leaderboards that rank per-season or per-pair records apply these
// floors so small samples never surface as leaders.
type Rules struct {
	// MinSeasonGames is the floor for season-level leaderboards
	// (best/worst record, luck, PPG/OPPG).
	MinSeasonGames int `json:"min_season_games" yaml:"min_season_games"`
	// MinHeadToHeadGames is the floor for head-to-head pair rows.
	MinHeadToHeadGames int `json:"min_head_to_head_games" yaml:"min_head_to_head_games"`
	// HighScoreLine counts "monster week" performances at or above it.
	HighScoreLine float64 `json:"high_score_line" yaml:"high_score_line"`
	// LowScoreLine counts "dud week" performances strictly below it.
	LowScoreLine float64 `json:"low_score_line" yaml:"low_score_line"`
	// TwoLegSeason is the season whose playoff rounds were played over
	// two dated legs; its non-regular games are excluded from
	// single-game high/low lists to avoid double counting one week.
	TwoLegSeason int `json:"two_leg_season" yaml:"two_leg_season"`
	// TopN is the default leaderboard length.
	TopN int `json:"top_n" yaml:"top_n"`
}

// DefaultRules returns the league's historical thresholds.
func DefaultRules() Rules {
	return Rules{
		MinSeasonGames:     8,
		MinHeadToHeadGames: 5,
		HighScoreLine:      150,
		LowScoreLine:       70,
		TwoLegSeason:       2014,
		TopN:               10,
	}
}

// twoLegPlayoff reports whether g belongs to the anomalous two-leg
// postseason and must be skipped by single-game lists.
func (r Rules) twoLegPlayoff(g Game) bool {
	return g.Season == r.TwoLegSeason && g.Phase != PhaseRegular
}

// League bundles the canonical game set with its week annotations, the
// season summaries and the league rules. Every derived table is a pure
// function of these fields; nothing is cached or mutated after New.
type League struct {
	Games     []Game
	Weeks     WeekTable
	Summaries []SeasonSummary
	Rules     Rules
}

// New normalizes raw game records and derives week numbers once. The
// returned League is safe to query repeatedly; identical inputs always
// produce identical outputs.
func New(raw []Game, summaries []SeasonSummary, rules Rules) *League {
	games := Normalize(raw)
	return &League{
		Games:     games,
		Weeks:     DeriveWeeks(games),
		Summaries: summaries,
		Rules:     rules,
	}
}

// Teams lists every team in the canonical game set, sorted.
func (l *League) Teams() []string { return Teams(l.Games) }

// Seasons lists the distinct seasons in the canonical game set, ascending.
func (l *League) Seasons() []int { return Seasons(l.Games) }
