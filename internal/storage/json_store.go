package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Record is a single stored entity. The store does not enforce any schema
// beyond the id and timestamp fields it stamps itself.
type Record = map[string]any

var ErrNotFound = errors.New("record not found")

// Store keeps one collection of records backed by a single JSON array file.
// Every mutation reads the whole array, applies the change in memory and
// rewrites the file. The mutex serializes overlapping read-modify-write
// cycles from concurrent callers; the file write itself is not atomic.
type Store struct {
	mu   sync.Mutex
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file location.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) readData() ([]Record, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Record{}, nil
		}
		return nil, fmt.Errorf("read collection %s: %w", s.path, err)
	}
	if len(raw) == 0 {
		return []Record{}, nil
	}
	var data []Record
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode collection %s: %w", s.path, err)
	}
	if data == nil {
		data = []Record{}
	}
	return data, nil
}

func (s *Store) writeData(data []Record) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
	}
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", s.path, err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("write collection %s: %w", s.path, err)
	}
	return nil
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// ReadAll returns every record in storage order. A missing file is an empty
// collection, not an error.
func (s *Store) ReadAll() ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readData()
}

// Add appends a new record and returns its generated id. The store is the
// sole authority for id and timestamps: caller-supplied id, created_at and
// updated_at values are always overwritten.
func (s *Store) Add(item Record) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.readData()
	if err != nil {
		return "", err
	}

	stored := make(Record, len(item)+3)
	for k, v := range item {
		stored[k] = v
	}
	id := uuid.NewString()
	now := timestamp()
	stored["id"] = id
	stored["created_at"] = now
	stored["updated_at"] = now

	if err := s.writeData(append(data, stored)); err != nil {
		return "", err
	}
	return id, nil
}

// Get performs a linear scan for the record with the given id.
func (s *Store) Get(id string) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.readData()
	if err != nil {
		return nil, err
	}
	for _, item := range data {
		if item["id"] == id {
			return item, nil
		}
	}
	return nil, ErrNotFound
}

// Update merges the supplied fields into the matching record and refreshes
// updated_at. The id and created_at fields are never touched by a merge.
func (s *Store) Update(id string, updates Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.readData()
	if err != nil {
		return err
	}
	for _, item := range data {
		if item["id"] != id {
			continue
		}
		for k, v := range updates {
			if k == "id" || k == "created_at" {
				continue
			}
			item[k] = v
		}
		item["updated_at"] = timestamp()
		return s.writeData(data)
	}
	return ErrNotFound
}

// Delete removes the matching record.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.readData()
	if err != nil {
		return err
	}
	filtered := make([]Record, 0, len(data))
	for _, item := range data {
		if item["id"] != id {
			filtered = append(filtered, item)
		}
	}
	if len(filtered) == len(data) {
		return ErrNotFound
	}
	return s.writeData(filtered)
}

// Find returns the records whose fields equal every key/value pair in
// filters. Equality only: no ranges, no partial matches.
func (s *Store) Find(filters Record) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.readData()
	if err != nil {
		return nil, err
	}
	results := []Record{}
	for _, item := range data {
		if matchesFilters(item, filters) {
			results = append(results, item)
		}
	}
	return results, nil
}

func matchesFilters(item Record, filters Record) bool {
	for k, want := range filters {
		got, ok := item[k]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}
