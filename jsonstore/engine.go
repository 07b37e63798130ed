package jsonstore

import (
	"errors"
	"fmt"
)

var (
	// ErrCollectionNotFound is returned when a collection was never
	// created.
	ErrCollectionNotFound = errors.New("resource not found")
	// ErrItemNotFound is returned when no item in the collection has
	// the requested id.
	ErrItemNotFound = errors.New("item not found")
)

// Engine implements the CRUD verbs over a Storage. It keeps no state
// between operations: the database is reloaded at the start of every
// call and saved after every mutation.
type Engine struct {
	storage Storage
}

func NewEngine(storage Storage) *Engine {
	return &Engine{storage: storage}
}

// List returns every item in the collection.
func (e *Engine) List(resource string) ([]map[string]any, error) {
	db, err := e.storage.Load()
	if err != nil {
		return nil, err
	}
	items, ok := db[resource]
	if !ok {
		return nil, ErrCollectionNotFound
	}
	return items, nil
}

// Get returns the first item whose id matches.
func (e *Engine) Get(resource, id string) (map[string]any, error) {
	db, err := e.storage.Load()
	if err != nil {
		return nil, err
	}
	items, ok := db[resource]
	if !ok {
		return nil, ErrCollectionNotFound
	}
	idx := findIndexByID(items, id)
	if idx < 0 {
		return nil, ErrItemNotFound
	}
	return items[idx], nil
}

// Create appends the item, creating the collection if it does not
// exist yet. There is no uniqueness check on the item's id. It returns
// the whole updated collection.
func (e *Engine) Create(resource string, item map[string]any) ([]map[string]any, error) {
	db, err := e.storage.Load()
	if err != nil {
		return nil, err
	}
	db[resource] = append(db[resource], item)
	if err := e.storage.Save(db); err != nil {
		return nil, err
	}
	return db[resource], nil
}

// Replace overwrites the first item whose id matches with the new item
// and returns it.
func (e *Engine) Replace(resource, id string, item map[string]any) (map[string]any, error) {
	db, err := e.storage.Load()
	if err != nil {
		return nil, err
	}
	items := db[resource]
	idx := findIndexByID(items, id)
	if idx < 0 {
		return nil, ErrItemNotFound
	}
	items[idx] = item
	db[resource] = items
	if err := e.storage.Save(db); err != nil {
		return nil, err
	}
	return item, nil
}

// Merge shallow-merges the supplied fields into the first item whose
// id matches and returns the merged item. Fields not present in the
// partial item are preserved.
func (e *Engine) Merge(resource, id string, partial map[string]any) (map[string]any, error) {
	db, err := e.storage.Load()
	if err != nil {
		return nil, err
	}
	items := db[resource]
	idx := findIndexByID(items, id)
	if idx < 0 {
		return nil, ErrItemNotFound
	}
	for k, v := range partial {
		items[idx][k] = v
	}
	if err := e.storage.Save(db); err != nil {
		return nil, err
	}
	return items[idx], nil
}

// Delete removes the first item whose id matches.
func (e *Engine) Delete(resource, id string) error {
	db, err := e.storage.Load()
	if err != nil {
		return err
	}
	items := db[resource]
	idx := findIndexByID(items, id)
	if idx < 0 {
		return ErrItemNotFound
	}
	db[resource] = append(items[:idx], items[idx+1:]...)
	return e.storage.Save(db)
}

// findIndexByID compares the canonical string form of each stored id
// against the path parameter, so "17" matches both the number 17 and
// the string "17". One rule for every verb.
func findIndexByID(items []map[string]any, id string) int {
	for i, item := range items {
		stored, ok := item["id"]
		if !ok {
			continue
		}
		if canonicalID(stored) == id {
			return i
		}
	}
	return -1
}

func canonicalID(v any) string {
	// JSON numbers decode as float64; %v renders whole values without
	// a trailing ".0", which is the form path parameters arrive in.
	return fmt.Sprintf("%v", v)
}
