package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// TimeLayout is the storage form of created_at, kept compatible with
// previously stored data files.
const TimeLayout = "2006-01-02 15:04:05"

// LocationRecord is the canonical, server-held form of a saved map annotation.
// The JSON keys match the legacy data file layout, so an existing store reads
// back without migration.
type LocationRecord struct {
	ID          string   `json:"id"`
	Lat         float64  `json:"lat"`
	Lng         float64  `json:"lng"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Videos      []string `json:"video_url"`
	ImageURL    string   `json:"image_url"`
	AudioURL    string   `json:"audio_url"`
	CreatedAt   string   `json:"created_at"`
}

// fieldAliases maps each canonical key to the legacy keys still honored on
// read, in fallback order. Adding a new alias is a data change, not a code
// change.
var fieldAliases = map[string][]string{
	"title":       {"title", "note"},
	"description": {"description", "text"},
	"image_url":   {"image_url", "image"},
	"audio_url":   {"audio_url", "audio"},
	"video_url":   {"video_url", "video"},
}

// UnmarshalJSON accepts both the canonical layout and legacy record shapes:
// alias keys, a scalar video_url, and coordinates stored as numeric strings.
// Decoding is idempotent: a record marshaled by this package decodes to the
// same value.
func (r *LocationRecord) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if v, ok := raw["id"]; ok {
		id, err := decodeFlexString(v)
		if err != nil {
			return fmt.Errorf("models: invalid id: %w", err)
		}
		r.ID = id
	}

	lat, err := decodeCoordinate(raw, "lat")
	if err != nil {
		return err
	}
	lng, err := decodeCoordinate(raw, "lng")
	if err != nil {
		return err
	}
	r.Lat = lat
	r.Lng = lng

	r.Title = firstAliasString(raw, "title")
	r.Description = firstAliasString(raw, "description")
	r.ImageURL = firstAliasString(raw, "image_url")
	r.AudioURL = firstAliasString(raw, "audio_url")
	r.Videos = firstAliasVideos(raw)

	if v, ok := raw["created_at"]; ok {
		created, err := decodeFlexString(v)
		if err != nil {
			return fmt.Errorf("models: invalid created_at: %w", err)
		}
		r.CreatedAt = created
	}

	return nil
}

// MarshalJSON always writes the canonical layout with video_url as a list.
func (r LocationRecord) MarshalJSON() ([]byte, error) {
	videos := r.Videos
	if videos == nil {
		videos = []string{}
	}
	return json.Marshal(struct {
		ID          string   `json:"id"`
		Lat         float64  `json:"lat"`
		Lng         float64  `json:"lng"`
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Videos      []string `json:"video_url"`
		ImageURL    string   `json:"image_url"`
		AudioURL    string   `json:"audio_url"`
		CreatedAt   string   `json:"created_at"`
	}{r.ID, r.Lat, r.Lng, r.Title, r.Description, videos, r.ImageURL, r.AudioURL, r.CreatedAt})
}

func decodeCoordinate(raw map[string]json.RawMessage, key string) (float64, error) {
	v, ok := raw[key]
	if !ok || string(v) == "null" {
		return 0, nil
	}
	var f float64
	if err := json.Unmarshal(v, &f); err == nil {
		return f, nil
	}
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0, fmt.Errorf("models: %s is not numeric: %q", key, s)
		}
		return f, nil
	}
	return 0, fmt.Errorf("models: %s is not numeric: %s", key, string(v))
}

func decodeFlexString(v json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s, nil
	}
	// Legacy ids were numbers built from a timestamp and a random suffix.
	var n json.Number
	if err := json.Unmarshal(v, &n); err == nil {
		return n.String(), nil
	}
	return "", fmt.Errorf("models: expected string, got %s", string(v))
}

func firstAliasString(raw map[string]json.RawMessage, canonical string) string {
	for _, key := range fieldAliases[canonical] {
		v, ok := raw[key]
		if !ok || string(v) == "null" {
			continue
		}
		var s string
		if err := json.Unmarshal(v, &s); err == nil && s != "" {
			return s
		}
	}
	return ""
}

func firstAliasVideos(raw map[string]json.RawMessage) []string {
	for _, key := range fieldAliases["video_url"] {
		v, ok := raw[key]
		if !ok || string(v) == "null" {
			continue
		}
		var list []string
		if err := json.Unmarshal(v, &list); err == nil {
			if len(list) > 0 {
				return list
			}
			continue
		}
		var single string
		if err := json.Unmarshal(v, &single); err == nil && single != "" {
			return []string{single}
		}
	}
	return []string{}
}
