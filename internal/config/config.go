package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/Haynesmodel/Viva/internal/league"
)

type Config struct {
	// HTTP
	Addr    string
	MCPPath string

	// Data
	DataRoot     string
	DerivedRoot  string
	WriteDerived bool
	RulesPath    string

	// Auth
	RequireAuth bool
	AuthHeader  string
	APIKey      string

	// Telemetry
	LogLevel string
}

// Load reads configuration from the environment, after loading a .env
// file when one is present. Flags in main may override individual
// fields.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Addr:    envStr("VIVA_ADDR", ":8080"),
		MCPPath: envStr("VIVA_MCP_PATH", "/mcp"),

		DataRoot:     envStr("VIVA_DATA_ROOT", "data/assets"),
		DerivedRoot:  envStr("VIVA_DERIVED_ROOT", "data/derived"),
		WriteDerived: envBool("VIVA_WRITE_DERIVED", false),
		RulesPath:    envStr("VIVA_RULES_PATH", "rules.yaml"),

		RequireAuth: envBool("VIVA_REQUIRE_AUTH", true),
		AuthHeader:  envStr("VIVA_AUTH_HEADER", "X-API-Key"),
		APIKey:      envStr("VIVA_MCP_API_KEY", ""),

		LogLevel: envStr("LOG_LEVEL", "info"),
	}
}

// LoadRules reads the league rules file. A missing file yields the
// historical defaults; fields left unset in the file keep their
// defaults too.
func LoadRules(path string) (league.Rules, error) {
	rules := league.DefaultRules()
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return rules, nil
	}
	if err != nil {
		return rules, fmt.Errorf("read rules: %w", err)
	}
	if err := yaml.Unmarshal(raw, &rules); err != nil {
		return rules, fmt.Errorf("parse rules: %w", err)
	}
	return rules, nil
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
