package client

import (
	"context"
	"errors"
	"fmt"

	"mapnotes-api/internal/models"
	"mapnotes-api/internal/service"
)

// Marker is the presentation handle for one cached location. The cache owns
// the handle lifecycle; the service and store never see it.
type Marker interface {
	Focus()
	Remove()
}

// Presenter turns a normalized location into an on-map marker.
type Presenter interface {
	AddMarker(loc models.ClientLocation) Marker
}

// Notifier surfaces user-visible notices. No failure handled by the cache is
// silently swallowed.
type Notifier interface {
	Notify(message string)
}

// API interface for dependency injection. Both APIClient and the in-process
// LocationService satisfy it.
type API interface {
	List(ctx context.Context) ([]models.LocationRecord, error)
	Create(ctx context.Context, req models.CreateLocationRequest) (string, error)
	Update(ctx context.Context, req models.UpdateLocationRequest) error
	Delete(ctx context.Context, id string) error
}

// Entry pairs a normalized location with its marker.
type Entry struct {
	Location models.ClientLocation
	Marker   Marker
}

// Cache is the in-memory mirror of the store, kept in sync by full reloads
// after every confirmed-successful mutation. It is driven from a single
// event loop and needs no internal locking.
type Cache struct {
	api       API
	presenter Presenter
	notifier  Notifier
	geocoder  Geocoder
	entries   []Entry
}

// NewCache creates a cache over the given service consumer. The geocoder is
// optional and may be nil.
func NewCache(api API, presenter Presenter, notifier Notifier, geocoder Geocoder) *Cache {
	return &Cache{
		api:       api,
		presenter: presenter,
		notifier:  notifier,
		geocoder:  geocoder,
	}
}

// Rebuild resynchronizes the cache from a full List. Every previous marker
// is released before new ones are created, so no visual marker is orphaned
// or duplicated. A degraded (unavailable) store rebuilds to empty with a
// notice; a request that never completed leaves the cache untouched.
func (c *Cache) Rebuild(ctx context.Context) error {
	records, err := c.api.List(ctx)
	if err != nil {
		if !errors.Is(err, service.ErrStoreUnavailable) {
			c.notifier.Notify("Could not load locations. Please try again.")
			return fmt.Errorf("client: failed to load locations: %w", err)
		}
		c.notifier.Notify("The location store is unavailable; showing no records.")
		records = []models.LocationRecord{}
	}

	for _, entry := range c.entries {
		entry.Marker.Remove()
	}
	c.entries = c.entries[:0]

	for _, rec := range records {
		loc := models.Normalize(rec)
		c.entries = append(c.entries, Entry{
			Location: loc,
			Marker:   c.presenter.AddMarker(loc),
		})
	}
	return nil
}

// CreateLocation submits a new record and, on confirmed success, rebuilds.
func (c *Cache) CreateLocation(ctx context.Context, req models.CreateLocationRequest) error {
	if _, err := c.api.Create(ctx, req); err != nil {
		c.notifier.Notify("Could not save the location.")
		return fmt.Errorf("client: create failed: %w", err)
	}
	return c.Rebuild(ctx)
}

// UpdateLocation submits a partial edit and, on confirmed success, rebuilds.
func (c *Cache) UpdateLocation(ctx context.Context, req models.UpdateLocationRequest) error {
	if err := c.api.Update(ctx, req); err != nil {
		c.notifier.Notify("Could not update the location.")
		return fmt.Errorf("client: update failed: %w", err)
	}
	return c.Rebuild(ctx)
}

// DeleteLocation removes a record and, on confirmed success, rebuilds.
func (c *Cache) DeleteLocation(ctx context.Context, id string) error {
	if err := c.api.Delete(ctx, id); err != nil {
		c.notifier.Notify("Could not delete the location.")
		return fmt.Errorf("client: delete failed: %w", err)
	}
	return c.Rebuild(ctx)
}

// Entries returns the cached locations in list order.
func (c *Cache) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Count reports how many records are cached, for the saved-locations stat.
func (c *Cache) Count() int {
	return len(c.entries)
}
