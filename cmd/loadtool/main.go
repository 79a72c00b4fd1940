package main

import (
	"database/sql"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"loadplan-service/internal/adapters/repositories"
	"loadplan-service/internal/platform/db"
	"loadplan-service/internal/platform/obs"
)

// loadtool initializes the schema and seeds cargo items, for setting up
// a database outside the server process.
func main() {
	envErr := godotenv.Load()

	logger := obs.NewLogger("loadtool")
	if envErr != nil {
		logger.Info().Msg("No .env file found (using environment variables)")
	}

	var (
		conn *sql.DB
		err  error
	)
	if databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL")); databaseURL != "" {
		conn, err = db.OpenPostgres(databaseURL)
	} else {
		dbPath := os.Getenv("DB_PATH")
		if strings.TrimSpace(dbPath) == "" {
			logger.Fatal().Msg("DATABASE_URL or DB_PATH is required")
		}
		conn, err = db.OpenSQLite(dbPath)
	}
	if err != nil {
		logger.Fatal().Err(err).Msg("open database")
	}
	defer conn.Close()

	logger.Info().Msg("Initializing database schema...")
	if err := repositories.InitSchema(conn); err != nil {
		logger.Fatal().Err(err).Msg("schema initialization failed")
	}
	logger.Info().Msg("Schema ready.")

	seedPath := os.Getenv("SEED_PATH")
	if seedPath == "" {
		seedPath = "data/seeds/cargo.json"
	}
	logger.Info().Str("path", seedPath).Msg("Seeding database...")
	if err := repositories.SeedFromJSON(conn, seedPath); err != nil {
		logger.Fatal().Err(err).Msg("seeding failed")
	}
	logger.Info().Msg("Seeding complete.")
}
