// Command api serves the profiling HTTP API.
package main

import (
	"context"
	"log"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"tabprof/adapters/api"
	"tabprof/adapters/postgres"
	"tabprof/internal/config"
	"tabprof/ports"
)

func main() {
	// Load environment variables from .env if present
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	var repo ports.ProfileRepository
	if cfg.Database.URL != "" {
		db, err := sqlx.Connect("postgres", cfg.Database.URL)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		defer db.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := postgres.EnsureSchema(ctx, db); err != nil {
			log.Fatalf("failed to prepare database: %v", err)
		}
		repo = postgres.NewProfileRepository(db)
	} else {
		log.Println("DATABASE_URL not set; profiles will not be persisted")
	}

	server := api.NewServer(api.Config{
		Port:           cfg.Server.Port,
		MaxUploadBytes: cfg.Ingest.MaxUploadBytes,
	}, repo)

	if err := server.Start(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
