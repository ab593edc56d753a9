package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"appointment-prep-service/internal/adapters/cache"
	"appointment-prep-service/internal/adapters/repositories"
	"appointment-prep-service/internal/api"
	"appointment-prep-service/internal/platform/db"
	"appointment-prep-service/internal/ports"
	"appointment-prep-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, optional Postgres POI catalog, optional
// Redis reveal cache) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := getEnv("DB_PATH", "data/app.db")
	seedPath := getEnv("SEED_PATH", "data/seeds/pois.json")
	port := getEnv("PORT", "8080")

	sqlDB, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer sqlDB.Close()

	// Initialize schema and seed demo POIs on startup for local runs.
	if err := initAndSeed(sqlDB, seedPath); err != nil {
		log.Fatal(err)
	}

	// POI catalog: shared Postgres when configured, local seeded table otherwise.
	var pois ports.PoiCatalog = repositories.NewSQLitePoiRepo(sqlDB)
	if poiURL := strings.TrimSpace(os.Getenv("POI_DATABASE_URL")); poiURL != "" {
		pgDB, err := db.OpenPostgres(poiURL)
		if err != nil {
			log.Fatal(err)
		}
		defer pgDB.Close()
		pois = repositories.NewPostgresPoiRepo(pgDB)
		log.Println("POI catalog: shared postgres")
	}

	// Reveal cache is optional; without REDIS_ADDR every reveal hits the store.
	var revealCache ports.RevealCache
	if addr := strings.TrimSpace(os.Getenv("REDIS_ADDR")); addr != "" {
		client := redis.NewClient(&redis.Options{Addr: addr})
		revealCache = cache.NewRedisRevealCache(client, 10*time.Minute)
		log.Println("Reveal cache: redis")
	}

	appointments := repositories.NewSQLiteAppointmentRepo(sqlDB)
	preps := repositories.NewSQLitePrepRepo(sqlDB)
	candidates := repositories.NewSQLiteCandidateRepo(sqlDB)
	uow := db.NewSQLUnitOfWork(sqlDB)

	appointmentSvc := services.NewAppointmentService(appointments)
	prepSvc := services.NewPrepService(appointments, pois, preps, candidates, uow, revealCache)

	router := api.NewRouter(appointmentSvc, prepSvc)

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server listening addr=:%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutdown signal received; shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Graceful shutdown failed: %v", err)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func initAndSeed(db *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(db); err != nil {
		return err
	}

	if err := repositories.SeedPoisFromJSON(db, seedPath); err != nil {
		return err
	}

	return nil
}
