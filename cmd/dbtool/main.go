package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"appointment-prep-service/internal/adapters/repositories"
	"appointment-prep-service/internal/platform/db"
)

// dbtool bootstraps the shared POI catalog: creates the schema and upserts
// the seed file into Postgres.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	seedPath := os.Getenv("SEED_PATH")
	if seedPath == "" {
		seedPath = "data/seeds/pois.json"
	}

	pgDB, err := db.OpenPostgres(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pgDB.Close()

	log.Println("Initializing POI catalog schema...")
	if err := repositories.InitPoiCatalogSchema(pgDB); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	seeds, err := readSeeds(seedPath)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("Seeding %d POIs...", len(seeds))
	if err := repositories.SeedPoiCatalog(context.Background(), pgDB, seeds); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")
}

func readSeeds(path string) ([]repositories.PoiSeed, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var seeds []repositories.PoiSeed
	if err := json.Unmarshal(bytes, &seeds); err != nil {
		return nil, err
	}
	return seeds, nil
}
