package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Haynesmodel/Viva/internal/league"
)

// Asset file names under the data root.
const (
	GamesFile     = "H2H.json"
	SummariesFile = "SeasonSummary.json"
	RivalriesFile = "Rivalries.json"
)

type JSONStore struct {
	Root string // e.g. "data/assets"
}

func NewJSONStore(root string) *JSONStore {
	return &JSONStore{Root: root}
}

func (s *JSONStore) Path(rel string) string {
	return filepath.Join(s.Root, rel)
}

func (s *JSONStore) Exists(rel string) bool {
	_, err := os.Stat(s.Path(rel))
	return err == nil
}

func (s *JSONStore) WriteRaw(rel string, body []byte, pretty bool) error {
	path := s.Path(rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	if pretty {
		var v any
		if err := json.Unmarshal(body, &v); err == nil {
			buf := &bytes.Buffer{}
			enc := json.NewEncoder(buf)
			enc.SetIndent("", "  ")
			_ = enc.Encode(v)
			body = buf.Bytes()
		}
	}

	return os.WriteFile(path, body, 0o644)
}

func (s *JSONStore) ReadRaw(rel string) ([]byte, error) {
	path := s.Path(rel)
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	return b, err
}

// LoadGames reads the raw game log. Records are returned as-is; the
// engine's Normalize owns deduplication and validation.
func (s *JSONStore) LoadGames() ([]league.Game, error) {
	raw, err := s.ReadRaw(GamesFile)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", GamesFile, err)
	}
	var games []league.Game
	if err := json.Unmarshal(raw, &games); err != nil {
		return nil, fmt.Errorf("parse %s: %w", GamesFile, err)
	}
	return games, nil
}

// LoadSeasonSummaries reads the externally-produced season outcome rows.
func (s *JSONStore) LoadSeasonSummaries() ([]league.SeasonSummary, error) {
	raw, err := s.ReadRaw(SummariesFile)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", SummariesFile, err)
	}
	var summaries []league.SeasonSummary
	if err := json.Unmarshal(raw, &summaries); err != nil {
		return nil, fmt.Errorf("parse %s: %w", SummariesFile, err)
	}
	return summaries, nil
}

// LoadRivalries reads the rivalry grouping metadata. A missing or empty
// file is not an error — rivalry callouts simply stay disabled.
func (s *JSONStore) LoadRivalries() ([]league.Rivalry, error) {
	raw, err := s.ReadRaw(RivalriesFile)
	if errors.Is(err, os.ErrNotExist) {
		return []league.Rivalry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", RivalriesFile, err)
	}
	var rivalries []league.Rivalry
	if err := json.Unmarshal(raw, &rivalries); err != nil {
		return nil, fmt.Errorf("parse %s: %w", RivalriesFile, err)
	}
	if rivalries == nil {
		rivalries = []league.Rivalry{}
	}
	return rivalries, nil
}
