package client

import (
	"context"
	"strings"

	"mapnotes-api/internal/geocode"
	"mapnotes-api/internal/models"
)

// Outcome classifies what the UI should do with a search result.
type Outcome int

const (
	// OutcomeCleared: empty query, close any open result panel.
	OutcomeCleared Outcome = iota
	// OutcomeFocus: exactly one match, pan to it and open its popup.
	OutcomeFocus
	// OutcomeList: multiple matches, show them in cache order.
	OutcomeList
	// OutcomeNone: no local match and no external place.
	OutcomeNone
	// OutcomeExternal: no local match, but the geocoder found a place.
	OutcomeExternal
)

// Geocoder interface for dependency injection
type Geocoder interface {
	Search(ctx context.Context, query string) (*geocode.Place, error)
}

// SearchResult is the outcome of one query against the cache.
type SearchResult struct {
	Outcome Outcome
	Matches []models.ClientLocation
	Place   *geocode.Place
}

// Search resolves a free-text query against the cached titles. Matching is a
// case-insensitive substring test on the title only; descriptions are not
// searched. With zero local matches the optional geocoder runs as a
// best-effort enrichment that never blocks or errors the no-results outcome.
func (c *Cache) Search(ctx context.Context, query string) SearchResult {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return SearchResult{Outcome: OutcomeCleared}
	}

	var matches []Entry
	for _, entry := range c.entries {
		if strings.Contains(strings.ToLower(entry.Location.Title), q) {
			matches = append(matches, entry)
		}
	}

	switch {
	case len(matches) == 1:
		matches[0].Marker.Focus()
		return SearchResult{
			Outcome: OutcomeFocus,
			Matches: []models.ClientLocation{matches[0].Location},
		}
	case len(matches) > 1:
		locs := make([]models.ClientLocation, len(matches))
		for i, m := range matches {
			locs[i] = m.Location
		}
		return SearchResult{Outcome: OutcomeList, Matches: locs}
	}

	if c.geocoder != nil {
		if place, err := c.geocoder.Search(ctx, query); err == nil && place != nil {
			return SearchResult{Outcome: OutcomeExternal, Place: place}
		}
	}

	c.notifier.Notify("No matching records found.")
	return SearchResult{Outcome: OutcomeNone}
}
