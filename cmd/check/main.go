package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Haynesmodel/Viva/internal/config"
	"github.com/Haynesmodel/Viva/internal/league"
	"github.com/Haynesmodel/Viva/internal/store"
)

func main() {
	var (
		dataRoot  = flag.String("data-root", "data/assets", "root directory for league JSON assets")
		rulesPath = flag.String("rules", "rules.yaml", "league rules YAML (defaults apply if missing)")
		verbose   = flag.Bool("v", false, "print every finding, not just counts")
	)
	flag.Parse()

	rules, err := config.LoadRules(*rulesPath)
	must(err)

	st := store.NewJSONStore(*dataRoot)
	games, err := st.LoadGames()
	must(err)
	summaries, err := st.LoadSeasonSummaries()
	must(err)

	l := league.New(games, summaries, rules)
	log.Printf("Loaded %d raw games -> %d canonical (%d teams, %d seasons)\n",
		len(games), len(l.Games), len(l.Teams()), len(l.Seasons()))

	failures := 0

	ds := l.VerifyPostseason()
	if len(ds) > 0 {
		failures += len(ds)
		log.Printf("FAIL: %d postseason summary discrepancies\n", len(ds))
		if *verbose {
			for _, d := range ds {
				log.Printf("  %s %d %s: derived=%d reported=%d\n", d.Team, d.Season, d.Field, d.Derived, d.Reported)
			}
		}
	} else {
		log.Println("ok: season summaries match the postseason game log")
	}

	failures += checkPlayoffWinLimits(l, rules, *verbose)
	failures += checkRegularRounds(l, *verbose)

	if failures > 0 {
		log.Printf("%d check(s) failed\n", failures)
		os.Exit(1)
	}
	log.Println("All checks passed.")
}

// checkPlayoffWinLimits enforces the bracket's shape: no team can win
// more than three playoff-bracket games in a season, or more than two
// in the two-leg season.
func checkPlayoffWinLimits(l *league.League, rules league.Rules, verbose bool) int {
	type key struct {
		team   string
		season int
	}
	wins := make(map[key]int)
	for _, g := range l.Games {
		if g.Phase != league.PhasePlayoff || g.ScoreA == g.ScoreB {
			continue
		}
		winner := g.TeamA
		if g.ScoreB > g.ScoreA {
			winner = g.TeamB
		}
		wins[key{winner, g.Season}]++
	}

	failures := 0
	for k, n := range wins {
		limit := 3
		if k.season == rules.TwoLegSeason {
			limit = 2
		}
		if n > limit {
			failures++
			if verbose {
				log.Printf("  %s %d: %d playoff wins (limit %d)\n", k.team, k.season, n, limit)
			}
		}
	}
	if failures > 0 {
		log.Printf("FAIL: %d team-seasons exceed the playoff win limit\n", failures)
	} else {
		log.Println("ok: playoff win totals fit the bracket")
	}
	return failures
}

// checkRegularRounds verifies every regular-season game carries a
// derived week, which only fails when a team's schedule has a gap the
// derivation could not cover.
func checkRegularRounds(l *league.League, verbose bool) int {
	failures := 0
	for _, g := range l.Games {
		if g.Phase != league.PhaseRegular {
			continue
		}
		for _, team := range []string{g.TeamA, g.TeamB} {
			if _, ok := l.Weeks.Week(g, team); !ok {
				failures++
				if verbose {
					log.Printf("  no week for %s on %s (%s)\n", team, g.Date, g.Round)
				}
			}
		}
	}
	if failures > 0 {
		log.Printf("FAIL: %d regular-season sides missing a week\n", failures)
	} else {
		log.Println("ok: every regular-season side has a derived week")
	}
	return failures
}

func must(err error) {
	if err != nil {
		if os.IsNotExist(err) {
			log.Fatal(fmt.Sprintf("missing league assets: %v (check --data-root)", err))
		}
		log.Fatal(err)
	}
}
