package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	MinAppointmentDurationMin = 20
	MaxAppointmentDurationMin = 480
)

// Appointment is a scheduled real-world meeting. Immutable once created.
type Appointment struct {
	ID          string
	Day         Day
	TimeSlot    TimeSlot
	DurationMin int
	CreatedAt   int64 // unix milliseconds
}

// NewAppointment constructs a valid Appointment or rejects out-of-range input.
func NewAppointment(day Day, slot TimeSlot, durationMin int) (*Appointment, error) {
	if durationMin < MinAppointmentDurationMin || durationMin > MaxAppointmentDurationMin {
		return nil, fmt.Errorf(
			"new appointment: duration_min must be between %d and %d, got %d",
			MinAppointmentDurationMin, MaxAppointmentDurationMin, durationMin,
		)
	}

	return &Appointment{
		ID:          uuid.New().String(),
		Day:         day,
		TimeSlot:    slot,
		DurationMin: durationMin,
		CreatedAt:   time.Now().UnixMilli(),
	}, nil
}
