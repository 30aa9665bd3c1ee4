package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/adithyavangapandu/moviesstore/internal/geocoder"
	"github.com/adithyavangapandu/moviesstore/internal/models"
	"github.com/adithyavangapandu/moviesstore/internal/repository"

	"github.com/gin-gonic/gin"
)

// ProfileHandler handles profile read and save requests
type ProfileHandler struct {
	service ProfileService
}

// Service interface for dependency injection
type ProfileService interface {
	Save(ctx context.Context, userID int64, lat, lon float64) (*models.Profile, error)
	Get(ctx context.Context, userID int64) (*models.Profile, error)
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(svc ProfileService) *ProfileHandler {
	return &ProfileHandler{service: svc}
}

type saveProfileRequest struct {
	Lat *float64 `json:"lat" binding:"required"`
	Lon *float64 `json:"lon" binding:"required"`
}

// Save handles PUT /api/profile requests. The submitted coordinate is
// reverse-geocoded and validated; the stored city and state come from the
// geocoder, never from the client.
//
//	@Summary	Create or replace the caller's profile
//	@Accept		json
//	@Produce	json
//	@Success	201	{object}	models.Profile
//	@Router		/api/profile [put]
func (h *ProfileHandler) Save(c *gin.Context) {
	userID, _ := currentUserID(c)

	var req saveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "body must contain numeric 'lat' and 'lon'"})
		return
	}

	profile, err := h.service.Save(c.Request.Context(), userID, *req.Lat, *req.Lon)
	if err != nil {
		switch {
		case errors.Is(err, geocoder.ErrMissingAPIKey):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "geocoding is not configured"})
		case errors.Is(err, geocoder.ErrUpstream):
			c.JSON(http.StatusBadGateway, gin.H{"error": "cannot verify location"})
		case errors.Is(err, geocoder.ErrNoResult),
			errors.Is(err, geocoder.ErrOutsideUS),
			errors.Is(err, geocoder.ErrIncompleteResult):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "location could not be validated"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, profile)
}

// Get handles GET /api/profile requests.
//
//	@Summary	The caller's stored profile
//	@Produce	json
//	@Success	200	{object}	models.Profile
//	@Router		/api/profile [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	userID, _ := currentUserID(c)

	profile, err := h.service.Get(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no profile for this user"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, profile)
}
