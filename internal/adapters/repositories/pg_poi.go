package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"appointment-prep-service/internal/domain"
)

// Postgres-backed implementation of the PoiCatalog port, for deployments
// where the catalog lives in a shared database maintained outside this
// service.
type PostgresPoiRepo struct {
	DB *sql.DB
}

func NewPostgresPoiRepo(db *sql.DB) *PostgresPoiRepo {
	return &PostgresPoiRepo{DB: db}
}

func (r *PostgresPoiRepo) ListActive(ctx context.Context) ([]domain.PointOfInterest, error) {
	if r.DB == nil {
		return nil, errors.New("poi catalog: DB is nil")
	}

	query := `
	SELECT id, lat, lng, active
	FROM pois
	WHERE active = TRUE
	ORDER BY id;
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list active pois: query pois table: %w", err)
	}
	defer rows.Close()

	out := make([]domain.PointOfInterest, 0, 64)
	for rows.Next() {
		var p domain.PointOfInterest
		if err := rows.Scan(&p.ID, &p.Lat, &p.Lng, &p.Active); err != nil {
			return nil, fmt.Errorf("list active pois: scan row: %w", err)
		}
		out = append(out, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list active pois: row iteration: %w", err)
	}

	return out, nil
}

// InitPoiCatalogSchema creates the pois table in the shared catalog database.
// Used by the dbtool when bootstrapping a new environment.
func InitPoiCatalogSchema(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS pois (
		id TEXT PRIMARY KEY,
		lat DOUBLE PRECISION NOT NULL,
		lng DOUBLE PRECISION NOT NULL,
		active BOOLEAN NOT NULL DEFAULT TRUE
	);
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("init poi catalog schema: %w", err)
	}
	return nil
}

// SeedPoiCatalog upserts POI rows into the shared catalog.
func SeedPoiCatalog(ctx context.Context, db *sql.DB, pois []PoiSeed) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed poi catalog: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO pois (id, lat, lng, active)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (id) DO UPDATE
	SET lat = EXCLUDED.lat,
		lng = EXCLUDED.lng,
		active = EXCLUDED.active;
	`)
	if err != nil {
		return fmt.Errorf("seed poi catalog: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, p := range pois {
		if p.ID == "" {
			return fmt.Errorf("seed poi catalog: item #%d has empty id", i+1)
		}

		active := true
		if p.Active != nil {
			active = *p.Active
		}

		if _, err := stmt.ExecContext(ctx, p.ID, p.Lat, p.Lng, active); err != nil {
			return fmt.Errorf("seed poi catalog: insert id=%q: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed poi catalog: commit tx: %w", err)
	}

	return nil
}
