package handler

import (
	"context"
	"errors"
	"net/http"

	"mapnotes-api/internal/models"
	"mapnotes-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// LocationHandler exposes the location CRUD protocol over HTTP.
type LocationHandler struct {
	service LocationService
}

// Service interface for dependency injection
type LocationService interface {
	List(ctx context.Context) ([]models.LocationRecord, error)
	Create(ctx context.Context, req models.CreateLocationRequest) (string, error)
	Update(ctx context.Context, req models.UpdateLocationRequest) error
	Delete(ctx context.Context, id string) error
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(svc LocationService) *LocationHandler {
	return &LocationHandler{service: svc}
}

// Register mounts the /locations resource. Unsupported methods on the path
// answer 405 with a JSON body.
func (h *LocationHandler) Register(r *gin.Engine) {
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	r.GET("/locations", h.List)
	r.POST("/locations", h.Create)
	r.PUT("/locations", h.Update)
	r.PATCH("/locations", h.Update)
	r.DELETE("/locations", h.Delete)
}

// List handles GET /locations. An unreadable store degrades to an empty
// array so the browser client stays usable; the failure is logged here.
func (h *LocationHandler) List(c *gin.Context) {
	records, err := h.service.List(c.Request.Context())
	if err != nil {
		log.Warn().Err(err).Msg("listing locations degraded to empty result")
	}
	c.JSON(http.StatusOK, records)
}

// Create handles POST /locations.
func (h *LocationHandler) Create(c *gin.Context) {
	var req models.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
		return
	}

	id, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "lat and lng are required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
}

// Update handles PUT and PATCH /locations. The body carries the id plus any
// subset of mutable fields; an unknown id is an explicit failure.
func (h *LocationHandler) Update(c *gin.Context) {
	var req models.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
		return
	}

	err := h.service.Update(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "id is required"})
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "id not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Delete handles DELETE /locations?id=<id>. Deleting an absent id still
// reports success.
func (h *LocationHandler) Delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "missing required query parameter 'id'"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
