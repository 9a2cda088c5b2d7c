package main

import (
	"context"
	"net/http"
	"strings"

	"mapnotes-api/internal/config"
	"mapnotes-api/internal/handler"
	"mapnotes-api/internal/service"
	"mapnotes-api/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	// Store backend
	var locationStore service.LocationStore
	switch config.StoreBackend {
	case "postgres":
		conn, err := pgxpool.New(context.Background(), config.DBSource)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot connect to db")
		}
		defer conn.Close()

		pg := store.NewPostgresStore(conn)
		if err := pg.EnsureSchema(context.Background()); err != nil {
			log.Fatal().Err(err).Msg("cannot ensure db schema")
		}
		locationStore = pg
	default:
		locationStore = store.NewJSONFileStore(config.StoreFile)
	}

	// Initialize layers
	locationService := service.NewLocationService(locationStore)
	locationHandler := handler.NewLocationHandler(locationService)

	r := gin.Default()

	// The map client is served from a different origin than the API.
	corsConfig := cors.DefaultConfig()
	if config.CORSAllowOrigins == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = strings.Split(config.CORSAllowOrigins, ",")
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type"}
	r.Use(cors.New(corsConfig))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	locationHandler.Register(r)

	log.Info().Str("address", config.ServerAddress).Str("backend", config.StoreBackend).Msg("starting server")
	if err := r.Run(config.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
