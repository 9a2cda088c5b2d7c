package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"mapnotes-api/internal/models"
)

// ErrNetwork marks a request that never completed: the caller's local state
// must stay untouched and no retry is attempted.
var ErrNetwork = errors.New("client: network error")

// ErrRejected marks a request the server completed but refused
// (success:false or a non-2xx status).
var ErrRejected = errors.New("client: request rejected")

// APIClient is the HTTP consumer of the location service, for callers
// running in a separate process from the server.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAPIClient creates a client against the service base URL.
func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type apiResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
	Error   string `json:"error"`
}

// List fetches all records in store order.
func (c *APIClient) List(ctx context.Context) ([]models.LocationRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/locations", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrRejected, resp.StatusCode)
	}

	var records []models.LocationRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	if records == nil {
		records = []models.LocationRecord{}
	}
	return records, nil
}

// Create submits a new location and returns the id the server assigned.
func (c *APIClient) Create(ctx context.Context, req models.CreateLocationRequest) (string, error) {
	result, err := c.send(ctx, http.MethodPost, c.baseURL+"/locations", req)
	if err != nil {
		return "", err
	}
	return result.ID, nil
}

// Update submits a partial edit for an existing location.
func (c *APIClient) Update(ctx context.Context, req models.UpdateLocationRequest) error {
	_, err := c.send(ctx, http.MethodPut, c.baseURL+"/locations", req)
	return err
}

// Delete removes a location by exact id.
func (c *APIClient) Delete(ctx context.Context, id string) error {
	endpoint := c.baseURL + "/locations?id=" + url.QueryEscape(id)
	_, err := c.send(ctx, http.MethodDelete, endpoint, nil)
	return err
}

func (c *APIClient) send(ctx context.Context, method, endpoint string, body interface{}) (apiResponse, error) {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return apiResponse{}, fmt.Errorf("%w: %v", ErrNetwork, err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return apiResponse{}, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apiResponse{}, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	var result apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return apiResponse{}, fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	if !result.Success {
		reason := result.Error
		if reason == "" {
			reason = fmt.Sprintf("unexpected status %d", resp.StatusCode)
		}
		return result, fmt.Errorf("%w: %s", ErrRejected, reason)
	}
	return result, nil
}
