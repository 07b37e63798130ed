package mcc

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeDataFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mcc.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAndLookup(t *testing.T) {
	path := writeDataFile(t, `[
		{"code": 5411, "description": "Grocery Stores, Supermarkets"},
		{"code": 5812, "description": "Eating Places, Restaurants"}
	]`)

	table, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	all, err := table.All()
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(all))
	}

	entry, err := table.ByCode(5812)
	if err != nil {
		t.Fatalf("ByCode(5812) failed: %v", err)
	}
	if entry.Description != "Eating Places, Restaurants" {
		t.Errorf("unexpected description: %q", entry.Description)
	}

	_, err = table.ByCode(9999)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown code, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeDataFile(t, `{"not": "a list"`)
	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for malformed file")
	}
}

func TestNilTableReportsNotLoaded(t *testing.T) {
	var table *Table

	if _, err := table.All(); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("All on nil table: expected ErrNotLoaded, got %v", err)
	}
	if _, err := table.ByCode(5411); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("ByCode on nil table: expected ErrNotLoaded, got %v", err)
	}
}
