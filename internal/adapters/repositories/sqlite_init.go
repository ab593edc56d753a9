package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
)

// InitSchema creates the SQLite tables and indexes used by the service.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createAppointmentsQuery := `
	CREATE TABLE IF NOT EXISTS appointments (
		id TEXT PRIMARY KEY,
		day_code TEXT NOT NULL,
		time_slot TEXT NOT NULL,
		duration_min INTEGER NOT NULL,
		created_at INTEGER NOT NULL
	);
	`

	createPrepsQuery := `
	CREATE TABLE IF NOT EXISTS preps (
		id TEXT PRIMARY KEY,
		appointment_id TEXT NOT NULL REFERENCES appointments(id),
		travel_mode TEXT NOT NULL,
		origin_lat REAL NOT NULL,
		origin_lng REAL NOT NULL,
		prepared_at INTEGER NOT NULL
	);
	`

	createCandidatesQuery := `
	CREATE TABLE IF NOT EXISTS candidates (
		id TEXT PRIMARY KEY,
		prep_id TEXT NOT NULL REFERENCES preps(id),
		order_index INTEGER NOT NULL,
		dest_lat REAL NOT NULL,
		dest_lng REAL NOT NULL,
		itinerary_lines TEXT NOT NULL,
		travel_summary TEXT NOT NULL,
		travel_lines TEXT NOT NULL,
		travel_total_min INTEGER NOT NULL
	);
	`

	createPoisQuery := `
	CREATE TABLE IF NOT EXISTS pois (
		id TEXT PRIMARY KEY,
		lat REAL NOT NULL,
		lng REAL NOT NULL,
		active INTEGER NOT NULL DEFAULT 1
	);
	`

	createPrepIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_preps_appointment_prepared
	ON preps(appointment_id, prepared_at);
	`

	createCandidateIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_candidates_prep_order
	ON candidates(prep_id, order_index);
	`

	statements := []string{
		createAppointmentsQuery,
		createPrepsQuery,
		createCandidatesQuery,
		createPoisQuery,
		createPrepIndexQuery,
		createCandidateIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type PoiSeed struct {
	ID     string  `json:"id"`
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	Active *bool   `json:"active"`
}

// SeedPoisFromJSON populates the local POI table from a JSON file.
func SeedPoisFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed pois: read %q: %w", jsonPath, err)
	}

	var data []PoiSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed pois: parse json: %w", err)
	}

	return SeedPois(db, data)
}

// SeedPois upserts POI rows. Seeds with no id get a generated one; active
// defaults to true.
func SeedPois(db *sql.DB, data []PoiSeed) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed pois: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT OR REPLACE INTO pois (id, lat, lng, active)
	VALUES (?, ?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed pois: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, p := range data {
		id := p.ID
		if id == "" {
			id = uuid.New().String()
		}

		active := true
		if p.Active != nil {
			active = *p.Active
		}

		if _, err := stmt.Exec(id, p.Lat, p.Lng, boolToInt(active)); err != nil {
			return fmt.Errorf("seed pois: insert item #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed pois: commit tx: %w", err)
	}

	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
