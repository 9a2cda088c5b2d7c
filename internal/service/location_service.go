package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mapnotes-api/internal/models"
	"mapnotes-api/internal/store"

	"github.com/google/uuid"
)

// Sentinel errors making up the failure taxonomy surfaced to callers.
var (
	ErrValidation       = errors.New("service: validation failed")
	ErrNotFound         = errors.New("service: location not found")
	ErrStoreUnavailable = errors.New("service: store unavailable")
)

// LocationStore interface for dependency injection
type LocationStore interface {
	List(ctx context.Context) ([]models.LocationRecord, error)
	Get(ctx context.Context, id string) (models.LocationRecord, error)
	Insert(ctx context.Context, rec models.LocationRecord) error
	Update(ctx context.Context, rec models.LocationRecord) error
	Delete(ctx context.Context, id string) error
}

// LocationService owns the record lifecycle: id assignment, creation
// timestamps, field defaults, and merge semantics on update.
type LocationService struct {
	store LocationStore
	now   func() time.Time
	newID func() string
}

// NewLocationService creates a new location service. IDs are UUIDs, which
// stay unique under arbitrarily rapid sequential creation.
func NewLocationService(store LocationStore) *LocationService {
	return &LocationService{
		store: store,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// List returns all records in store order. A failing store degrades to an
// empty collection so callers never crash on a read failure; the wrapped
// ErrStoreUnavailable carries the diagnostic the caller must surface.
func (s *LocationService) List(ctx context.Context) ([]models.LocationRecord, error) {
	records, err := s.store.List(ctx)
	if err != nil {
		return []models.LocationRecord{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return records, nil
}

// Create validates the request, assigns a fresh id and creation timestamp,
// and appends the record to the store. It returns the assigned id.
func (s *LocationService) Create(ctx context.Context, req models.CreateLocationRequest) (string, error) {
	if req.Lat == nil || req.Lng == nil {
		return "", fmt.Errorf("%w: lat and lng are required", ErrValidation)
	}

	videos := []string(req.Video)
	if videos == nil {
		videos = []string{}
	}

	rec := models.LocationRecord{
		ID:          s.newID(),
		Lat:         float64(*req.Lat),
		Lng:         float64(*req.Lng),
		Title:       req.Title,
		Description: req.Description,
		Videos:      videos,
		ImageURL:    req.Image,
		AudioURL:    req.Audio,
		CreatedAt:   s.now().Format(models.TimeLayout),
	}

	if err := s.store.Insert(ctx, rec); err != nil {
		return "", fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return rec.ID, nil
}

// Update merges the provided fields over the existing record. Omitted fields
// are preserved; id and created_at are never touched. An unknown id is an
// explicit failure, never silently ignored.
func (s *LocationService) Update(ctx context.Context, req models.UpdateLocationRequest) error {
	if req.ID == "" {
		return fmt.Errorf("%w: id is required", ErrValidation)
	}

	existing, err := s.store.Get(ctx, string(req.ID))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	merged := mergeRecord(existing, req)
	if err := s.store.Update(ctx, merged); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// Delete removes the record with the exact id. Deleting a nonexistent id
// succeeds: delete is idempotent by design.
func (s *LocationService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: id is required", ErrValidation)
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

func mergeRecord(existing models.LocationRecord, req models.UpdateLocationRequest) models.LocationRecord {
	merged := existing
	if req.Lat != nil {
		merged.Lat = float64(*req.Lat)
	}
	if req.Lng != nil {
		merged.Lng = float64(*req.Lng)
	}
	if req.Title != nil {
		merged.Title = *req.Title
	}
	if req.Description != nil {
		merged.Description = *req.Description
	}
	if req.Image != nil {
		merged.ImageURL = *req.Image
	}
	if req.Audio != nil {
		merged.AudioURL = *req.Audio
	}
	if req.Video != nil {
		videos := []string(*req.Video)
		if videos == nil {
			videos = []string{}
		}
		merged.Videos = videos
	}
	return merged
}
