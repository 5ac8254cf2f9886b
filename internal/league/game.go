package league

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
)

// Phase is the closed game-phase tag assigned during normalization.
// Downstream logic switches on Phase instead of re-parsing the free-text
// type/round labels from the source log.
type Phase string

const (
	PhaseRegular  Phase = "Regular"
	PhasePlayoff  Phase = "Playoff"
	PhaseSaunders Phase = "Saunders" // last-place consolation bracket
)

// Round stage ranks, assigned at normalization from the free-text round
// label. Ordering is meaningful only within a phase.
const (
	StageWildCard      = 1
	StageQuarterfinal  = 2
	StageSemifinal     = 3
	StageChampionship  = 4
	StageSaundersR1    = 1
	StageSaundersFinal = 2
	StageThirdPlace    = 80
	StagePlayoffOther  = 90
	StageSaundersOther = 95
	StageNone          = 99
)

// Game is one played matchup. TeamA/TeamB form an unordered pair; the
// canonical key is insensitive to which side a team was recorded on.
// Phase and Stage are derived once by Normalize and immutable after.
type Game struct {
	Season int     `json:"season"`
	Date   string  `json:"date"` // ISO yyyy-mm-dd
	TeamA  string  `json:"teamA"`
	TeamB  string  `json:"teamB"`
	ScoreA float64 `json:"scoreA"`
	ScoreB float64 `json:"scoreB"`
	Type   string  `json:"type"`
	Round  string  `json:"round"`

	Phase Phase `json:"phase,omitempty"`
	Stage int   `json:"stage,omitempty"`
}

// Rivalry is grouping metadata consumed by presentation layers only;
// the engine loads and passes it through untouched.
type Rivalry struct {
	Name    string   `json:"name"`
	Type    string   `json:"type"`
	Members []string `json:"members"`
	Slug    string   `json:"slug,omitempty"`
}

// CanonicalKey builds the order-independent identity string for a game.
// The (team, score) pairs are ordered by team name ascending — not by
// score — so a game re-entered with sides swapped maps to the same key.
// Scores are fixed to three decimals to keep float representation noise
// out of the identity.
func CanonicalKey(g Game) string {
	typ := strings.ToLower(strings.TrimSpace(g.Type))
	round := strings.ToLower(strings.TrimSpace(g.Round))
	if g.TeamA < g.TeamB {
		return fmt.Sprintf("%d|%s|%s|%s|%s|%.3f|%s|%.3f", g.Season, g.Date, typ, round, g.TeamA, g.ScoreA, g.TeamB, g.ScoreB)
	}
	return fmt.Sprintf("%d|%s|%s|%s|%s|%.3f|%s|%.3f", g.Season, g.Date, typ, round, g.TeamB, g.ScoreB, g.TeamA, g.ScoreA)
}

// Normalize canonicalizes raw game records: malformed rows are dropped,
// empty type defaults to "Regular", duplicates collapse to the first
// occurrence, and Phase/Stage tags are assigned. Order is first-seen.
// Normalizing an already-normalized slice is a no-op.
func Normalize(raw []Game) []Game {
	seen := make(map[string]struct{}, len(raw))
	out := make([]Game, 0, len(raw))
	for _, g := range raw {
		if !wellFormed(g) {
			continue
		}
		if strings.TrimSpace(g.Type) == "" {
			g.Type = "Regular"
		}
		key := CanonicalKey(g)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		g.Phase = phaseFor(g.Type, g.Round)
		g.Stage = stageFor(g.Phase, g.Round)
		out = append(out, g)
	}
	return out
}

// wellFormed rejects records that computations cannot use: missing team
// or date, a team playing itself, or a negative/NaN score.
func wellFormed(g Game) bool {
	if g.TeamA == "" || g.TeamB == "" || g.TeamA == g.TeamB {
		return false
	}
	if _, err := time.Parse("2006-01-02", g.Date); err != nil {
		return false
	}
	if g.ScoreA < 0 || g.ScoreB < 0 {
		return false
	}
	if math.IsNaN(g.ScoreA) || math.IsNaN(g.ScoreB) {
		return false
	}
	return true
}

func phaseFor(typ, round string) Phase {
	t := strings.ToLower(strings.TrimSpace(typ))
	r := strings.ToLower(strings.TrimSpace(round))
	if t == "saunders" || strings.Contains(r, "saunders") {
		return PhaseSaunders
	}
	if t == "" || t == "regular" {
		return PhaseRegular
	}
	return PhasePlayoff
}

func stageFor(phase Phase, round string) int {
	r := strings.ToLower(strings.TrimSpace(round))
	if strings.Contains(r, "third") {
		return StageThirdPlace
	}
	switch phase {
	case PhasePlayoff:
		switch {
		case strings.Contains(r, "wild"):
			return StageWildCard
		case strings.Contains(r, "quarter"):
			return StageQuarterfinal
		case strings.Contains(r, "semi"):
			return StageSemifinal
		case strings.Contains(r, "champ"), r == "final", strings.HasSuffix(r, "final"):
			return StageChampionship
		default:
			return StagePlayoffOther
		}
	case PhaseSaunders:
		switch {
		case strings.Contains(r, "round 1"):
			return StageSaundersR1
		case strings.Contains(r, "final"):
			return StageSaundersFinal
		default:
			return StageSaundersOther
		}
	default:
		return StageNone
	}
}

// Teams returns every team name appearing in the game set, sorted.
func Teams(games []Game) []string {
	set := make(map[string]struct{})
	for _, g := range games {
		set[g.TeamA] = struct{}{}
		set[g.TeamB] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Seasons returns the distinct seasons in the game set, ascending.
func Seasons(games []Game) []int {
	set := make(map[int]struct{})
	for _, g := range games {
		set[g.Season] = struct{}{}
	}
	out := make([]int, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Ints(out)
	return out
}
