package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"appointment-prep-service/internal/domain"
	"appointment-prep-service/internal/platform/db"
)

// SQLite-backed implementation of the AppointmentRepository port.
type SQLiteAppointmentRepo struct {
	db db.DBTX
}

func NewSQLiteAppointmentRepo(dbtx db.DBTX) *SQLiteAppointmentRepo {
	return &SQLiteAppointmentRepo{db: dbtx}
}

func (r *SQLiteAppointmentRepo) Save(ctx context.Context, ap *domain.Appointment) error {
	query := `
	INSERT INTO appointments (id, day_code, time_slot, duration_min, created_at)
	VALUES (?, ?, ?, ?, ?);
	`
	_, err := r.db.ExecContext(ctx, query,
		ap.ID, string(ap.Day), string(ap.TimeSlot), ap.DurationMin, ap.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("save appointment: %w", err)
	}
	return nil
}

func (r *SQLiteAppointmentRepo) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	query := `
	SELECT id, day_code, time_slot, duration_min, created_at
	FROM appointments
	WHERE id = ?;
	`
	row := r.db.QueryRowContext(ctx, query, id)

	var ap domain.Appointment
	var day, slot string
	err := row.Scan(&ap.ID, &day, &slot, &ap.DurationMin, &ap.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("appointment: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("get appointment: scan row: %w", err)
	}

	ap.Day = domain.Day(day)
	ap.TimeSlot = domain.TimeSlot(slot)
	return &ap, nil
}
