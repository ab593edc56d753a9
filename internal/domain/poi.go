package domain

// PointOfInterest is immutable reference data owned by an external catalog.
// Only active POIs are eligible for candidate generation.
type PointOfInterest struct {
	ID     string
	Lat    float64
	Lng    float64
	Active bool
}
