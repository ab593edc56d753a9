package services

import (
	"fmt"
	"math"

	"appointment-prep-service/internal/domain"
)

// ItineraryLines composes the two schedule lines shown for a candidate.
// Travel eats into the appointment window only up to 35 minutes, and at
// least 25 usable minutes are always assumed.
func ItineraryLines(slot domain.TimeSlot, appointmentDurationMin, travelMin int) []string {
	capped := travelMin
	if capped > 35 {
		capped = 35
	}

	usable := appointmentDurationMin - capped
	if usable < 25 {
		usable = 25
	}

	a1 := int(math.Round(float64(usable) * 0.45))
	if a1 < 10 {
		a1 = 10
	}
	a2 := usable - a1
	if a2 < 10 {
		a2 = 10
	}

	return []string{
		fmt.Sprintf("%d min · one %s stop", a1, slotHead(slot)),
		fmt.Sprintf("%d min · note it down and wrap up", a2),
	}
}

// slotHead picks the short activity label for a time slot. Deterministic per
// slot; the exact wording is a display concern.
func slotHead(slot domain.TimeSlot) string {
	switch slot {
	case domain.SlotMorning:
		return "easy"
	case domain.SlotAfternoon:
		return "fresh-air"
	default: // EVENING, NIGHT
		return "unwinding"
	}
}
