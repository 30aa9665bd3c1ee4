package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/adithyavangapandu/moviesstore/internal/models"
	"github.com/adithyavangapandu/moviesstore/internal/repository"
	"github.com/adithyavangapandu/moviesstore/internal/service"

	"github.com/gin-gonic/gin"
)

// MovieHandler handles movie catalog requests
type MovieHandler struct {
	service MovieService
}

// Service interface for dependency injection
type MovieService interface {
	List(ctx context.Context, search string) ([]models.Movie, error)
	Get(ctx context.Context, id int64) (*service.MovieDetails, error)
}

// NewMovieHandler creates a new movie handler
func NewMovieHandler(svc MovieService) *MovieHandler {
	return &MovieHandler{service: svc}
}

// List handles GET /api/movies requests.
//
//	@Summary	Movie catalog, optionally filtered by name
//	@Param		search	query	string	false	"Name substring"
//	@Produce	json
//	@Success	200	{array}	models.Movie
//	@Router		/api/movies [get]
func (h *MovieHandler) List(c *gin.Context) {
	movies, err := h.service.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if movies == nil {
		movies = []models.Movie{}
	}

	c.JSON(http.StatusOK, movies)
}

// Get handles GET /api/movies/:id requests.
//
//	@Summary	One movie with its visible reviews
//	@Param		id	path	int	true	"Movie id"
//	@Produce	json
//	@Success	200	{object}	service.MovieDetails
//	@Router		/api/movies/{id} [get]
func (h *MovieHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid movie id"})
		return
	}

	details, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "movie not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, details)
}
