package handler

import (
	"context"
	"net/http"

	"github.com/adithyavangapandu/moviesstore/internal/models"
	"github.com/adithyavangapandu/moviesstore/internal/service"

	"github.com/gin-gonic/gin"
)

// PopularityHandler handles local popularity map requests
type PopularityHandler struct {
	service PopularityService
}

// Service interface for dependency injection
type PopularityService interface {
	Compute(ctx context.Context, filter models.GeoFilter, requestingUserID int64) (*service.PopularityResult, error)
}

// NewPopularityHandler creates a new popularity handler
func NewPopularityHandler(svc PopularityService) *PopularityHandler {
	return &PopularityHandler{service: svc}
}

// Popularity handles GET /api/popularity requests.
//
//	@Summary	Local popularity map data
//	@Param		region	query	string	false	"Region name"
//	@Param		state	query	string	false	"Two-letter state code"
//	@Param		city	query	string	false	"City name"
//	@Produce	json
//	@Success	200	{object}	service.PopularityResult
//	@Router		/api/popularity [get]
func (h *PopularityHandler) Popularity(c *gin.Context) {
	userID, _ := currentUserID(c)

	filter := models.GeoFilter{
		Region: c.Query("region"),
		State:  c.Query("state"),
		City:   c.Query("city"),
	}

	result, err := h.service.Compute(c.Request.Context(), filter, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, result)
}
