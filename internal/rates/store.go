package rates

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nileshk/paisa/internal/model"
)

// FileStore persists the rate table as a small JSON document:
//
//	{"rates": {"USD": 0.012, ...}, "last_update": "2026-08-28T10:00:00Z"}
type FileStore struct {
	path string
}

type cacheDocument struct {
	Rates      map[string]float64 `json:"rates"`
	LastUpdate time.Time          `json:"last_update"`
}

// NewFileStore creates a store writing to the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the persisted table. A missing file is not an error; it
// returns a nil table so the caller falls back to bootstrap rates.
func (s *FileStore) Load() (map[model.Currency]float64, time.Time, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, time.Time{}, nil
		}
		return nil, time.Time{}, fmt.Errorf("failed to read rate cache: %w", err)
	}

	var doc cacheDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to parse rate cache: %w", err)
	}

	rates := make(map[model.Currency]float64, len(doc.Rates))
	for code, rate := range doc.Rates {
		cur, err := model.ParseCurrency(code)
		if err != nil {
			continue
		}
		rates[cur] = rate
	}
	if len(rates) == 0 {
		return nil, time.Time{}, nil
	}

	return rates, doc.LastUpdate, nil
}

// Save writes the table, creating parent directories as needed.
func (s *FileStore) Save(rates map[model.Currency]float64, lastUpdated time.Time) error {
	doc := cacheDocument{
		Rates:      make(map[string]float64, len(rates)),
		LastUpdate: lastUpdated,
	}
	for code, rate := range rates {
		doc.Rates[string(code)] = rate
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode rate cache: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0750); err != nil {
		return fmt.Errorf("failed to create rate cache directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write rate cache: %w", err)
	}

	return nil
}
