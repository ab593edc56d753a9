package ports

import (
	"context"

	"appointment-prep-service/internal/domain"
)

// Port: a boundary for storing Prep entities and resolving the latest prep
// of an appointment.
type PrepRepository interface {
	Save(ctx context.Context, p *domain.Prep) error
	// LatestByAppointment returns the most recently prepared prep for the
	// appointment, or an error wrapping the store's not-found sentinel when
	// no prep was ever created.
	LatestByAppointment(ctx context.Context, appointmentID string) (*domain.Prep, error)
}

// Port: a boundary for candidate batches attached to a prep.
type CandidateRepository interface {
	Save(ctx context.Context, c *domain.Candidate) error
	// ListByPrepOrdered returns the prep's candidates ordered by order index
	// ascending.
	ListByPrepOrdered(ctx context.Context, prepID string) ([]*domain.Candidate, error)
	// DeleteByPrep removes every candidate belonging to the prep.
	DeleteByPrep(ctx context.Context, prepID string) error
}
