package main

import (
	"context"
	"net/http"

	"github.com/adithyavangapandu/moviesstore/internal/config"
	"github.com/adithyavangapandu/moviesstore/internal/geocoder"
	"github.com/adithyavangapandu/moviesstore/internal/handler"
	"github.com/adithyavangapandu/moviesstore/internal/repository"
	"github.com/adithyavangapandu/moviesstore/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title		Movies Store API
//	@version	1.0

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	// Database connection
	conn, err := pgxpool.New(context.Background(), config.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close()

	// Initialize layers
	repo := repository.NewRepository(conn)

	geoClient := geocoder.NewClient(config.GeoapifyURL, config.GeoapifyAPIKey, &http.Client{
		Timeout: config.GeocoderTimeout,
	})

	popularityService := service.NewPopularityService(repo)
	profileService := service.NewProfileService(repo, geoClient)
	movieService := service.NewMovieService(repo)
	reviewService := service.NewReviewService(repo)

	popularityHandler := handler.NewPopularityHandler(popularityService)
	profileHandler := handler.NewProfileHandler(profileService)
	movieHandler := handler.NewMovieHandler(movieService)
	reviewHandler := handler.NewReviewHandler(reviewService)

	r := gin.Default()
	r.Use(handler.RequestLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/api/movies", movieHandler.List)
	r.GET("/api/movies/:id", movieHandler.Get)

	auth := r.Group("/api", handler.RequireUser())
	auth.GET("/popularity", popularityHandler.Popularity)
	auth.GET("/profile", profileHandler.Get)
	auth.PUT("/profile", profileHandler.Save)
	auth.POST("/movies/:id/reviews", reviewHandler.Create)
	auth.PUT("/reviews/:id", reviewHandler.Update)
	auth.DELETE("/reviews/:id", reviewHandler.Delete)
	auth.POST("/reviews/:id/report", reviewHandler.Report)

	r.Run(config.ServerAddress)
}
