package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mapnotes-api/internal/models"
	"mapnotes-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockLocationService is a mock implementation of the LocationService interface
type MockLocationService struct {
	mock.Mock
}

func (m *MockLocationService) List(ctx context.Context) ([]models.LocationRecord, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.LocationRecord), args.Error(1)
}

func (m *MockLocationService) Create(ctx context.Context, req models.CreateLocationRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockLocationService) Update(ctx context.Context, req models.UpdateLocationRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockLocationService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func setupRouter(svc LocationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewLocationHandler(svc).Register(r)
	return r
}

func TestLocationHandler_List(t *testing.T) {
	records := []models.LocationRecord{
		{ID: "a", Lat: 21.4225, Lng: 39.8261, Title: "Merve Tepesi", Videos: []string{}},
	}

	mockSvc := new(MockLocationService)
	mockSvc.On("List", mock.Anything).Return(records, nil)

	r := setupRouter(mockSvc)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/locations", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var got []models.LocationRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, records, got)
	mockSvc.AssertExpectations(t)
}

func TestLocationHandler_ListDegradedStillReturnsArray(t *testing.T) {
	mockSvc := new(MockLocationService)
	mockSvc.On("List", mock.Anything).Return([]models.LocationRecord{}, service.ErrStoreUnavailable)

	r := setupRouter(mockSvc)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/locations", nil))

	// The read path never hard-fails the client
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestLocationHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockID         string
		mockError      error
		expectedStatus int
		expectedBody   map[string]interface{}
	}{
		{
			name:           "successful create",
			body:           `{"lat": 21.4225, "lng": 39.8261, "title": "Merve Tepesi"}`,
			mockID:         "new-id",
			expectedStatus: http.StatusOK,
			expectedBody:   map[string]interface{}{"success": true, "id": "new-id"},
		},
		{
			name:           "scalar video accepted",
			body:           `{"lat": 1, "lng": 2, "video": "http://a"}`,
			mockID:         "new-id",
			expectedStatus: http.StatusOK,
			expectedBody:   map[string]interface{}{"success": true, "id": "new-id"},
		},
		{
			name:           "missing coordinates",
			body:           `{"title": "no coords"}`,
			mockError:      service.ErrValidation,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"success": false, "error": "lat and lng are required"},
		},
		{
			name:           "unparseable coordinates",
			body:           `{"lat": "north", "lng": 2}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"success": false, "error": "invalid request body"},
		},
		{
			name:           "store failure",
			body:           `{"lat": 1, "lng": 2}`,
			mockError:      service.ErrStoreUnavailable,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   map[string]interface{}{"success": false, "error": "internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockLocationService)
			mockSvc.On("Create", mock.Anything, mock.Anything).Return(tt.mockID, tt.mockError).Maybe()

			r := setupRouter(mockSvc)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/locations", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var got map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, tt.expectedBody, got)
		})
	}
}

func TestLocationHandler_Update(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		body           string
		mockError      error
		expectedStatus int
		expectedBody   map[string]interface{}
	}{
		{
			name:           "successful update via PUT",
			method:         http.MethodPut,
			body:           `{"id": "a", "title": "New title"}`,
			expectedStatus: http.StatusOK,
			expectedBody:   map[string]interface{}{"success": true},
		},
		{
			name:           "successful update via PATCH",
			method:         http.MethodPatch,
			body:           `{"id": "a", "title": "New title"}`,
			expectedStatus: http.StatusOK,
			expectedBody:   map[string]interface{}{"success": true},
		},
		{
			name:           "unknown id reported explicitly",
			method:         http.MethodPut,
			body:           `{"id": "missing", "title": "x"}`,
			mockError:      service.ErrNotFound,
			expectedStatus: http.StatusNotFound,
			expectedBody:   map[string]interface{}{"success": false, "error": "id not found"},
		},
		{
			name:           "missing id",
			method:         http.MethodPut,
			body:           `{"title": "x"}`,
			mockError:      service.ErrValidation,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"success": false, "error": "id is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockLocationService)
			mockSvc.On("Update", mock.Anything, mock.Anything).Return(tt.mockError).Maybe()

			r := setupRouter(mockSvc)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, "/locations", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var got map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, tt.expectedBody, got)
		})
	}
}

func TestLocationHandler_Delete(t *testing.T) {
	mockSvc := new(MockLocationService)
	mockSvc.On("Delete", mock.Anything, "a").Return(nil)

	r := setupRouter(mockSvc)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/locations?id=a", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success": true}`, w.Body.String())
	mockSvc.AssertExpectations(t)
}

func TestLocationHandler_DeleteMissingIDParam(t *testing.T) {
	mockSvc := new(MockLocationService)

	r := setupRouter(mockSvc)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/locations", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestLocationHandler_MethodNotAllowed(t *testing.T) {
	mockSvc := new(MockLocationService)

	r := setupRouter(mockSvc)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodHead, "/locations", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.JSONEq(t, `{"error": "method not allowed"}`, w.Body.String())
}
