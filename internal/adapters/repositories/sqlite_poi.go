package repositories

import (
	"context"
	"fmt"

	"appointment-prep-service/internal/domain"
	"appointment-prep-service/internal/platform/db"
)

// SQLite-backed implementation of the PoiCatalog port, used for local runs
// where the catalog is seeded from JSON.
type SQLitePoiRepo struct {
	db db.DBTX
}

func NewSQLitePoiRepo(dbtx db.DBTX) *SQLitePoiRepo {
	return &SQLitePoiRepo{db: dbtx}
}

func (r *SQLitePoiRepo) ListActive(ctx context.Context) ([]domain.PointOfInterest, error) {
	query := `
	SELECT id, lat, lng, active
	FROM pois
	WHERE active = 1
	ORDER BY id;
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list active pois: query pois table: %w", err)
	}
	defer rows.Close()

	out := make([]domain.PointOfInterest, 0, 64)
	for rows.Next() {
		var p domain.PointOfInterest
		var active int
		if err := rows.Scan(&p.ID, &p.Lat, &p.Lng, &active); err != nil {
			return nil, fmt.Errorf("list active pois: scan row: %w", err)
		}
		p.Active = active != 0
		out = append(out, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list active pois: row iteration: %w", err)
	}

	return out, nil
}
