package main

import (
	"context"
	"os"
	"strings"

	"github.com/joho/godotenv"

	_ "github.com/jackc/pgx/v5/stdlib"

	"charter-quote-service/internal/adapters/repositories"
	"charter-quote-service/internal/config"
	"charter-quote-service/internal/platform/db"
	"charter-quote-service/internal/platform/obs"
)

// dbtool initializes the Postgres schema and loads demo quote requests
// from a JSON seed file. Safe to re-run: seeding is skipped when the
// quotes table already has rows.
func main() {
	if err := godotenv.Load(); err != nil {
		obs.Logger().Info("No .env file found (using environment variables)")
	}
	obs.InitLogger()
	defer obs.SyncLogger()
	log := obs.Logger()

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	store, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	if err := repositories.InitSchema(store); err != nil {
		log.Fatal(err)
	}
	log.Info("Schema ready")

	seedPath := config.Get("SEED_PATH", "data/seeds/quotes.json")
	if err := repositories.SeedFromJSON(context.Background(), store, seedPath); err != nil {
		log.Fatal(err)
	}
	log.Infof("Seed complete path=%s", seedPath)
}
