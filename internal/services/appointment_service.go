package services

import (
	"context"
	"fmt"

	"appointment-prep-service/internal/domain"
	"appointment-prep-service/internal/ports"
)

// AppointmentService creates and loads appointments. Appointments are
// immutable once created; there is no update path.
type AppointmentService struct {
	appointments ports.AppointmentRepository
}

func NewAppointmentService(appointments ports.AppointmentRepository) *AppointmentService {
	return &AppointmentService{appointments: appointments}
}

func (s *AppointmentService) Create(
	ctx context.Context,
	day domain.Day,
	slot domain.TimeSlot,
	durationMin int,
) (*domain.Appointment, error) {
	ap, err := domain.NewAppointment(day, slot, durationMin)
	if err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	if err := s.appointments.Save(ctx, ap); err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	return ap, nil
}

func (s *AppointmentService) Get(ctx context.Context, id string) (*domain.Appointment, error) {
	ap, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return ap, nil
}
