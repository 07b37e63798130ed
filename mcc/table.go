// Package mcc holds the merchant-category-code lookup table. The
// table is loaded once at startup and read-only afterward, so
// concurrent reads need no locking.
package mcc

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"finledger/models"
)

var (
	// ErrNotFound is returned when a code is not in the table.
	ErrNotFound = errors.New("mcc code not found")
	// ErrNotLoaded is returned when the table was never loaded.
	ErrNotLoaded = errors.New("mcc data not loaded")
)

// Table is the in-memory MCC dataset.
type Table struct {
	entries []models.MCCEntry
}

// Load reads and parses the whole MCC dataset from a JSON file. A
// missing or malformed file is a startup-abort condition for the
// caller; there is no lazy retry at request time.
func Load(path string) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading mcc data file %s: %w", path, err)
	}

	var entries []models.MCCEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decoding mcc data file %s: %w", path, err)
	}

	return &Table{entries: entries}, nil
}

// All returns every entry in the table.
func (t *Table) All() ([]models.MCCEntry, error) {
	if t == nil || t.entries == nil {
		return nil, ErrNotLoaded
	}
	return t.entries, nil
}

// ByCode returns the first entry with the given code.
func (t *Table) ByCode(code int) (models.MCCEntry, error) {
	if t == nil || t.entries == nil {
		return models.MCCEntry{}, ErrNotLoaded
	}
	for _, entry := range t.entries {
		if entry.Code == code {
			return entry, nil
		}
	}
	return models.MCCEntry{}, fmt.Errorf("%w: %d", ErrNotFound, code)
}
