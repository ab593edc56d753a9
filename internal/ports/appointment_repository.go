package ports

import (
	"context"

	"appointment-prep-service/internal/domain"
)

// Port: a boundary for storing and retrieving Appointment entities.
type AppointmentRepository interface {
	Save(ctx context.Context, ap *domain.Appointment) error
	// GetByID returns the appointment, or an error wrapping the store's
	// not-found sentinel when it does not exist.
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
}
