package ports

import (
	"context"

	"appointment-prep-service/internal/domain"
)

// Port: the read-only point-of-interest catalog. The catalog is reference
// data owned externally; implementations may sit on the local store or on a
// shared database.
type PoiCatalog interface {
	// ListActive returns every POI eligible for candidate generation.
	ListActive(ctx context.Context) ([]domain.PointOfInterest, error)
}
