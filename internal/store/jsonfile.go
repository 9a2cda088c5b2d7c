package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"mapnotes-api/internal/models"
)

// JSONFileStore persists all records as one ordered JSON array in a single
// file, matching the legacy data.json layout. Writes are serialized behind a
// mutex and replace the file atomically, so the file never parses as
// anything but a complete array. Two racing processes still follow
// last-write-wins; that is the accepted contract for this store.
type JSONFileStore struct {
	path string
	mu   sync.Mutex
}

// NewJSONFileStore opens a file-backed store at path. A missing file is
// treated as an empty store and created on the first write.
func NewJSONFileStore(path string) *JSONFileStore {
	return &JSONFileStore{path: path}
}

func (s *JSONFileStore) List(ctx context.Context) ([]models.LocationRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readAll()
}

func (s *JSONFileStore) Get(ctx context.Context, id string) (models.LocationRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readAll()
	if err != nil {
		return models.LocationRecord{}, err
	}
	for _, rec := range records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return models.LocationRecord{}, ErrNotFound
}

func (s *JSONFileStore) Insert(ctx context.Context, rec models.LocationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readAll()
	if err != nil {
		return err
	}
	records = append(records, rec)
	return s.writeAll(records)
}

func (s *JSONFileStore) Update(ctx context.Context, rec models.LocationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readAll()
	if err != nil {
		return err
	}
	for i := range records {
		if records[i].ID == rec.ID {
			records[i] = rec
			return s.writeAll(records)
		}
	}
	return ErrNotFound
}

func (s *JSONFileStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readAll()
	if err != nil {
		return err
	}
	kept := records[:0]
	for _, rec := range records {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}
	if len(kept) == len(records) {
		// Absent id: idempotent no-op, skip the rewrite.
		return nil
	}
	return s.writeAll(kept)
}

func (s *JSONFileStore) readAll() ([]models.LocationRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []models.LocationRecord{}, nil
		}
		return nil, fmt.Errorf("store: failed to read %s: %w", s.path, err)
	}

	var records []models.LocationRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("store: failed to parse %s: %w", s.path, err)
	}
	if records == nil {
		records = []models.LocationRecord{}
	}
	return records, nil
}

// writeAll replaces the file through a rename so a crash mid-write leaves
// the previous contents intact.
func (s *JSONFileStore) writeAll(records []models.LocationRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("store: failed to encode records: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".locations-*.json")
	if err != nil {
		return fmt.Errorf("store: failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("store: failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("store: failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("store: failed to replace %s: %w", s.path, err)
	}
	return nil
}
