// Package jsonstore implements a schema-less resource store: named
// collections of arbitrary JSON documents held in one serialized
// database document. Every operation reloads the database and every
// mutation rewrites it wholesale. Concurrent writers race with
// last-write-wins at the file level; that is an accepted limitation of
// the design.
package jsonstore

import (
	"encoding/json"
	"os"
	"sync"
)

// Database is the whole persisted structure: collection name to items.
type Database map[string][]map[string]any

// Storage loads and saves the database document. The engine is
// decoupled from the persistence mechanism so it can be tested against
// the in-memory implementation.
type Storage interface {
	Load() (Database, error)
	Save(Database) error
}

// FileStorage persists the database as one JSON file.
type FileStorage struct {
	path string
}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

// Load reads the whole database file. A missing file yields an empty
// database rather than an error.
func (s *FileStorage) Load() (Database, error) {
	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return Database{}, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var db Database
	if err := json.NewDecoder(f).Decode(&db); err != nil {
		return nil, err
	}
	if db == nil {
		db = Database{}
	}
	return db, nil
}

// Save rewrites the whole database file. The write goes to a temporary
// file first and replaces the real file with a rename, so an
// interrupted write never leaves a half-written database behind.
func (s *FileStorage) Save(db Database) error {
	tmp := s.path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(db); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(tmp, s.path)
}

// MemoryStorage is an in-memory Storage used by tests.
type MemoryStorage struct {
	mu sync.Mutex
	db Database
}

func NewMemoryStorage(db Database) *MemoryStorage {
	if db == nil {
		db = Database{}
	}
	return &MemoryStorage{db: db}
}

func (s *MemoryStorage) Load() (Database, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.db), nil
}

func (s *MemoryStorage) Save(db Database) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.db = clone(db)
	return nil
}

func clone(db Database) Database {
	out := make(Database, len(db))
	for name, items := range db {
		copied := make([]map[string]any, len(items))
		for i, item := range items {
			c := make(map[string]any, len(item))
			for k, v := range item {
				c[k] = v
			}
			copied[i] = c
		}
		out[name] = copied
	}
	return out
}
