package models

import "time"

// UntitledPlaceholder is substituted for an empty title at render time only;
// the stored record keeps its empty title.
const UntitledPlaceholder = "Untitled location"

// UnknownDate is shown when a record carries no parseable creation timestamp.
const UnknownDate = "unknown"

// DateLayout is the display form of the creation date.
const DateLayout = "02.01.2006"

// ClientLocation is the cache-held, render-ready view of a LocationRecord.
// Videos is always a list and Date is always printable.
type ClientLocation struct {
	ID          string
	Lat         float64
	Lng         float64
	Title       string
	Description string
	Videos      []string
	Image       string
	Audio       string
	Date        string
}

// Normalize derives the render-ready view of a record. It is pure and
// idempotent: normalizing the view of an already-normalized record changes
// nothing.
func Normalize(rec LocationRecord) ClientLocation {
	title := rec.Title
	if title == "" {
		title = UntitledPlaceholder
	}

	videos := rec.Videos
	if videos == nil {
		videos = []string{}
	}

	return ClientLocation{
		ID:          rec.ID,
		Lat:         rec.Lat,
		Lng:         rec.Lng,
		Title:       title,
		Description: rec.Description,
		Videos:      videos,
		Image:       rec.ImageURL,
		Audio:       rec.AudioURL,
		Date:        formatDate(rec.CreatedAt),
	}
}

func formatDate(createdAt string) string {
	if createdAt == "" {
		return UnknownDate
	}
	t, err := time.Parse(TimeLayout, createdAt)
	if err != nil {
		return UnknownDate
	}
	return t.Format(DateLayout)
}
