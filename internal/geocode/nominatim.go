package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Place is a single result from the external geocoder.
type Place struct {
	DisplayName string
	Lat         float64
	Lng         float64
}

// Client queries the OpenStreetMap Nominatim search API. It is a best-effort
// enrichment used only when the local cache has no match.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a geocoder client against the given Nominatim base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

type nominatimResult struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// Search returns the best match for the query, or nil when the geocoder has
// none.
func (c *Client) Search(ctx context.Context, query string) (*Place, error) {
	endpoint := c.baseURL + "/search?format=json&q=" + url.QueryEscape(query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("geocode: failed to build request: %w", err)
	}
	// Nominatim's usage policy requires an identifying user agent.
	req.Header.Set("User-Agent", "mapnotes-api")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocode: unexpected status %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("geocode: failed to decode response: %w", err)
	}
	if len(results) == 0 {
		return nil, nil
	}

	first := results[0]
	lat, err := strconv.ParseFloat(first.Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("geocode: invalid latitude %q", first.Lat)
	}
	lng, err := strconv.ParseFloat(first.Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("geocode: invalid longitude %q", first.Lon)
	}

	return &Place{DisplayName: first.DisplayName, Lat: lat, Lng: lng}, nil
}
