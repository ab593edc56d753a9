package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"appointment-prep-service/internal/domain"
	"appointment-prep-service/internal/platform/db"
)

// SQLite-backed implementation of the PrepRepository port.
type SQLitePrepRepo struct {
	db db.DBTX
}

func NewSQLitePrepRepo(dbtx db.DBTX) *SQLitePrepRepo {
	return &SQLitePrepRepo{db: dbtx}
}

func (r *SQLitePrepRepo) Save(ctx context.Context, p *domain.Prep) error {
	query := `
	INSERT INTO preps (id, appointment_id, travel_mode, origin_lat, origin_lng, prepared_at)
	VALUES (?, ?, ?, ?, ?, ?);
	`
	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.AppointmentID, string(p.TravelMode), p.Origin.Lat, p.Origin.Lng, p.PreparedAt,
	)
	if err != nil {
		return fmt.Errorf("save prep: %w", err)
	}
	return nil
}

// LatestByAppointment resolves the newest prep. The id tie-breaker keeps the
// result deterministic when two preps share a millisecond timestamp.
func (r *SQLitePrepRepo) LatestByAppointment(ctx context.Context, appointmentID string) (*domain.Prep, error) {
	query := `
	SELECT id, appointment_id, travel_mode, origin_lat, origin_lng, prepared_at
	FROM preps
	WHERE appointment_id = ?
	ORDER BY prepared_at DESC, id DESC
	LIMIT 1;
	`
	row := r.db.QueryRowContext(ctx, query, appointmentID)

	var p domain.Prep
	var mode string
	err := row.Scan(&p.ID, &p.AppointmentID, &mode, &p.Origin.Lat, &p.Origin.Lng, &p.PreparedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("prep: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("latest prep: scan row: %w", err)
	}

	p.TravelMode = domain.TravelMode(mode)
	return &p, nil
}
