package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Search(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "Mecca", r.URL.Query().Get("q"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"display_name": "Mecca, Saudi Arabia", "lat": "21.4225", "lon": "39.8261"}]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	place, err := client.Search(context.Background(), "Mecca")
	require.NoError(t, err)
	require.NotNil(t, place)

	assert.Equal(t, "Mecca, Saudi Arabia", place.DisplayName)
	assert.Equal(t, 21.4225, place.Lat)
	assert.Equal(t, 39.8261, place.Lng)
}

func TestClient_SearchNoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	place, err := client.Search(context.Background(), "nowhere at all")
	require.NoError(t, err)
	assert.Nil(t, place)
}

func TestClient_SearchServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Search(context.Background(), "Mecca")
	assert.Error(t, err)
}
