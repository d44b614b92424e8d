package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/frizeriacentrala/site-api/internal/config"
	dbpkg "github.com/frizeriacentrala/site-api/internal/db"
	"github.com/frizeriacentrala/site-api/internal/routes"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	db := dbpkg.NewDB(cfg)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"context": cfg.Context,
		})
	})

	if err := routes.RegisterRoutes(r, db, cfg); err != nil {
		log.Fatalf("failed to register routes: %v", err)
	}

	log.Printf("Server running on %s (%s context)", cfg.Addr(), cfg.Context)
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
