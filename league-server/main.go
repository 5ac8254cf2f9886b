package main

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/Haynesmodel/Viva/internal/config"
	"github.com/Haynesmodel/Viva/internal/league"
	"github.com/Haynesmodel/Viva/internal/store"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type ServerConfig struct {
	DataRoot     string
	DerivedRoot  string
	WriteDerived bool
	Rules        league.Rules
}

// loadLeague reads the three asset files and builds the engine fresh.
// The engine is pure, so reloading per call keeps every tool's output a
// function of the files on disk with no cache to invalidate.
func loadLeague(cfg ServerConfig) (*league.League, error) {
	st := store.NewJSONStore(cfg.DataRoot)
	games, err := st.LoadGames()
	if err != nil {
		return nil, err
	}
	summaries, err := st.LoadSeasonSummaries()
	if err != nil {
		return nil, err
	}
	return league.New(games, summaries, cfg.Rules), nil
}

type toolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func main() {
	envCfg := config.Load()
	var (
		addr         = flag.String("addr", envCfg.Addr, "HTTP listen address")
		mcpPath      = flag.String("path", envCfg.MCPPath, "HTTP path for MCP endpoint")
		dataRoot     = flag.String("data-root", envCfg.DataRoot, "root directory for league JSON assets")
		derivedRoot  = flag.String("derived-root", envCfg.DerivedRoot, "root directory for derived exports")
		writeDerived = flag.Bool("write-derived", envCfg.WriteDerived, "write CSV exports to derived root")
		rulesPath    = flag.String("rules", envCfg.RulesPath, "league rules YAML (defaults apply if missing)")
		requireAuth  = flag.Bool("require-auth", envCfg.RequireAuth, "require API key auth via VIVA_MCP_API_KEY")
		authHeader   = flag.String("auth-header", envCfg.AuthHeader, "HTTP header to read API key from")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(envCfg.LogLevel),
	}))
	slog.SetDefault(logger)

	rules, err := config.LoadRules(*rulesPath)
	if err != nil {
		logger.Error("load rules", "path", *rulesPath, "err", err)
		os.Exit(1)
	}

	cfg := ServerConfig{
		DataRoot:     *dataRoot,
		DerivedRoot:  *derivedRoot,
		WriteDerived: *writeDerived,
		Rules:        rules,
	}

	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "viva-league-mcp",
			Version: "1.0.0",
		},
		nil,
	)

	registry := make([]toolInfo, 0, 16)

	addTool(server, &registry, &mcp.Tool{
		Name:        "league_history",
		Description: "Canonical deduplicated game history with week numbers and expected wins",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args LeagueHistoryArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildLeagueHistory(cfg, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolJSONValue(out)
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "export_history",
		Description: "CSV export of per-team game rows (date, result, pf, pa, week, xw)",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args ExportHistoryArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildExportHistory(cfg, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolText(out), nil, nil
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "season_aggregates",
		Description: "Per-team-per-season record, points, expected wins and luck",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args SeasonAggregatesArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildSeasonAggregates(cfg, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolJSONValue(out)
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "alltime_summary",
		Description: "All-time regular season, postseason and average-finish tables",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args AllTimeArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildAllTimeSummary(cfg, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolJSONValue(out)
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "luck",
		Description: "Actual vs expected wins for a team (league-week percentile model)",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args LuckArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildLuck(cfg, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolJSONValue(out)
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "head_to_head",
		Description: "Head-to-head pair records meeting the minimum-sample floor",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args HeadToHeadArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildHeadToHead(cfg, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolJSONValue(out)
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "streaks",
		Description: "Longest win/loss streaks, per team or league-wide, with date ranges",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args StreaksArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildStreaks(cfg, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolJSONValue(out)
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "weekly_awards",
		Description: "Weekly top/bottom scorer counts and high-score game counts",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args WeeklyAwardsArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildWeeklyAwards(cfg, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolJSONValue(out)
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "superlatives",
		Description: "League leaderboards: highs, lows, blowouts, rivalries, luck and more",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args SuperlativesArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildSuperlatives(cfg, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolJSONValue(out)
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "verify_summaries",
		Description: "Cross-check season-summary postseason totals against the game log",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args VerifyArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildVerifySummaries(cfg, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolJSONValue(out)
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "rivalries",
		Description: "Rivalry grouping metadata for presentation layers",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args RivalriesArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildRivalries(cfg, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolJSONValue(out)
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "league_teams",
		Description: "Teams and seasons present in the canonical game set",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args LeagueTeamsArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildLeagueTeams(cfg, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolJSONValue(out)
	})

	handler := mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
		return server
	}, &mcp.StreamableHTTPOptions{JSONResponse: true})

	apiKey := strings.TrimSpace(envCfg.APIKey)
	if *requireAuth && apiKey == "" {
		logger.Error("VIVA_MCP_API_KEY is required (set env var or run with --require-auth=false)")
		os.Exit(1)
	}
	if !*requireAuth {
		apiKey = ""
	}

	withAuth := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if apiKey == "" {
				next(w, r)
				return
			}
			key := strings.TrimSpace(r.Header.Get(*authHeader))
			if key == "" {
				if authz := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
					key = strings.TrimSpace(authz[7:])
				}
			}
			if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"unauthorized"}`))
				return
			}
			next(w, r)
		}
	}

	http.HandleFunc("/health", withAuth(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}))

	http.HandleFunc("/tools", withAuth(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		b, _ := json.MarshalIndent(map[string]any{"tools": registry}, "", "  ")
		w.Write(b)
	}))

	http.HandleFunc(*mcpPath, withAuth(func(w http.ResponseWriter, r *http.Request) {
		handler.ServeHTTP(w, r)
	}))

	logger.Info("MCP HTTP server listening", "addr", *addr, "path", *mcpPath, "data_root", cfg.DataRoot)
	if err := http.ListenAndServe(*addr, nil); err != nil {
		logger.Error("server exited", "err", err)
		os.Exit(1)
	}
}

func addTool[T any](server *mcp.Server, registry *[]toolInfo, tool *mcp.Tool, handler func(context.Context, *mcp.CallToolRequest, T) (*mcp.CallToolResult, any, error)) {
	*registry = append(*registry, toolInfo{Name: tool.Name, Description: tool.Description})
	mcp.AddTool(server, tool, handler)
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func toolJSONValue(v any) (*mcp.CallToolResult, any, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return toolError(err), nil, nil
	}
	return toolText(string(b)), nil, nil
}

func toolText(s string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: s},
		},
	}
}

func toolError(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("error: %v", err)},
		},
	}
}
