package main

import (
	"database/sql"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"loadplan-service/internal/adapters/repositories"
	"loadplan-service/internal/api"
	"loadplan-service/internal/platform/db"
	"loadplan-service/internal/platform/obs"
)

// main is the application composition root.
// It wires concrete adapters (SQLite or Postgres) behind ports and starts the HTTP server.
func main() {
	envErr := godotenv.Load()

	logger := obs.NewLogger("server")
	if envErr != nil {
		logger.Info().Msg("No .env file found (using environment variables)")
	}

	dbPath := getEnv("DB_PATH", "data/app.db")
	seedPath := os.Getenv("SEED_PATH")
	port := getEnv("PORT", "8080")

	var (
		conn *sql.DB
		err  error
	)
	if databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL")); databaseURL != "" {
		conn, err = db.OpenPostgres(databaseURL)
	} else {
		conn, err = db.OpenSQLite(dbPath)
	}
	if err != nil {
		logger.Fatal().Err(err).Msg("open database")
	}
	defer conn.Close()

	if err := repositories.InitSchema(conn); err != nil {
		logger.Fatal().Err(err).Msg("initialize schema")
	}
	// Optional demo data for local runs.
	if seedPath != "" {
		if err := repositories.SeedFromJSON(conn, seedPath); err != nil {
			logger.Fatal().Err(err).Str("path", seedPath).Msg("seed cargo items")
		}
	}

	items := repositories.NewSqliteCargoRepository(conn)
	plans := repositories.NewSqlitePlanRepository(conn)
	metrics := obs.NewMetrics(nil)
	router := api.NewRouter(items, plans, metrics, logger)

	logger.Info().Str("addr", ":"+port).Msg("server listening")
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
