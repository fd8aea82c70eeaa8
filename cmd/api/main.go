package main

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/mycompany/evento-service/internal/config"
	"github.com/mycompany/evento-service/internal/httpserver"
	"github.com/mycompany/evento-service/internal/store"
)

// main boots the service: config → logger → DB → migrations → HTTP server.
func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// Load runtime config from environment (DB_URL, HTTP_ADDR, LOG_LEVEL).
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	log = log.Level(cfg.LogLevel)

	// Connect to durable storage (Postgres) using a connection pool.
	db, err := store.NewEventoStore(cfg.DBURL)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to postgres")
	}
	defer db.Close()

	// Apply schema migrations so `docker compose up --build` is enough.
	if err := store.MigrateUp(cfg.DBURL); err != nil {
		log.Fatal().Err(err).Msg("apply migrations")
	}

	// Build HTTP router (health/ready/metrics + evento resource).
	router := httpserver.NewRouter(db, log)

	log.Info().Str("addr", cfg.HTTPAddr).Msg("server started")
	if err := router.Run(cfg.HTTPAddr); err != nil {
		log.Fatal().Err(err).Msg("http server stopped")
	}
}
