package ports

import (
	"context"

	"appointment-prep-service/internal/domain"
)

// Port: an optional read-through cache for reveal responses, keyed by
// appointment id. A miss is (nil, nil); cache failures are reported but
// treated as misses by callers.
type RevealCache interface {
	Get(ctx context.Context, appointmentID string) (*domain.PrepWithCandidates, error)
	Put(ctx context.Context, appointmentID string, v *domain.PrepWithCandidates) error
	// Invalidate drops the cached entry after a prep is superseded.
	Invalidate(ctx context.Context, appointmentID string) error
}
