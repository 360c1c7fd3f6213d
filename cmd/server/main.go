package main

import (
	"context"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	_ "github.com/jackc/pgx/v5/stdlib"

	"charter-quote-service/internal/adapters/cache"
	"charter-quote-service/internal/adapters/distance"
	"charter-quote-service/internal/adapters/repositories"
	"charter-quote-service/internal/api"
	"charter-quote-service/internal/config"
	"charter-quote-service/internal/platform/db"
	"charter-quote-service/internal/platform/obs"
	"charter-quote-service/internal/ports"
	"charter-quote-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (Postgres, Redis/SQLite caches, the
// routing provider) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		obs.Logger().Info("No .env file found (using environment variables)")
	}
	obs.InitLogger()
	defer obs.SyncLogger()
	log := obs.Logger()

	port := config.Get("PORT", "8080")
	businessName := config.Get("BUSINESS_NAME", "Bus Charter Services")
	cachePath := config.Get("CACHE_DB_PATH", "data/cache.db")

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	mapsKey := os.Getenv("MAPS_API_KEY")
	if strings.TrimSpace(mapsKey) == "" {
		log.Fatal("MAPS_API_KEY is required")
	}

	callDelay := services.DefaultCallDelay
	if ms := config.Get("CALL_DELAY_MS", ""); ms != "" {
		n, err := strconv.Atoi(ms)
		if err != nil || n < 0 {
			log.Fatalf("CALL_DELAY_MS must be a non-negative integer, got %q", ms)
		}
		callDelay = time.Duration(n) * time.Millisecond
	}

	store, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	if err := repositories.InitSchema(store); err != nil {
		log.Fatal(err)
	}

	// Distance lookups go through a persistent pair cache to avoid
	// repeated routing-API calls: Redis when configured, a local
	// SQLite file otherwise.
	distCache, err := buildDistanceCache(cachePath)
	if err != nil {
		log.Fatal(err)
	}

	provider, err := distance.NewMatrixDistanceProvider(mapsKey)
	if err != nil {
		log.Fatal(err)
	}
	cached := distance.NewCachedDistanceProvider(provider, distCache, log)

	quotes := repositories.NewPgQuoteRepository(store)
	responses := repositories.NewPgResponseRepository(store)
	router := api.NewRouter(quotes, responses, cached, callDelay, businessName)

	// Write timeout is generous: a cold-cache multi-day itinerary
	// means many paced external calls before the response is ready.
	log.Infof("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func buildDistanceCache(sqlitePath string) (ports.DistanceCache, error) {
	if addr := os.Getenv("REDIS_ADDR"); strings.TrimSpace(addr) != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASSWORD"),
		})
		return cache.NewRedisDistanceCache(client, 0), nil
	}

	sqliteDB, err := db.OpenSqlite(sqlitePath)
	if err != nil {
		return nil, err
	}

	sc := cache.NewSqliteDistanceCache(sqliteDB)
	if err := sc.InitSchema(context.Background()); err != nil {
		return nil, err
	}
	return sc, nil
}
