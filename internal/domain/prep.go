package domain

import (
	"time"

	"github.com/google/uuid"
)

// Prep is a snapshot of travel settings for one appointment. A newer Prep for
// the same appointment supersedes the older one; the older row is kept but no
// longer reachable through the "latest" query, and its candidates are removed.
type Prep struct {
	ID            string
	AppointmentID string
	TravelMode    TravelMode
	Origin        Coordinates
	PreparedAt    int64 // unix milliseconds
}

func NewPrep(appointmentID string, mode TravelMode, origin Coordinates) *Prep {
	return &Prep{
		ID:            uuid.New().String(),
		AppointmentID: appointmentID,
		TravelMode:    mode,
		Origin:        origin,
		PreparedAt:    time.Now().UnixMilli(),
	}
}
