package store

import (
	"context"
	"errors"

	"mapnotes-api/internal/models"
)

// ErrNotFound is returned by Get and Update when no record carries the id.
var ErrNotFound = errors.New("store: location not found")

// Store is the persistent collection of location records. Implementations
// must keep the backing data structurally valid after every write and must
// preserve append order for List.
type Store interface {
	List(ctx context.Context) ([]models.LocationRecord, error)
	Get(ctx context.Context, id string) (models.LocationRecord, error)
	Insert(ctx context.Context, rec models.LocationRecord) error
	Update(ctx context.Context, rec models.LocationRecord) error
	// Delete removes the record with the exact id. Deleting an absent id is
	// a no-op, not an error.
	Delete(ctx context.Context, id string) error
}
