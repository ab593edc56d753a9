package domain

import "fmt"

// TravelMode is the closed set of ways a user travels to a candidate.
type TravelMode string

const (
	ModeWalk    TravelMode = "WALK"
	ModeTransit TravelMode = "TRANSIT"
	ModeCar     TravelMode = "CAR"
	ModeBicycle TravelMode = "BICYCLE"
)

// ParseTravelMode converts wire text into a TravelMode.
func ParseTravelMode(s string) (TravelMode, error) {
	switch TravelMode(s) {
	case ModeWalk, ModeTransit, ModeCar, ModeBicycle:
		return TravelMode(s), nil
	}
	return "", fmt.Errorf("parse travel mode: unknown mode %q", s)
}

// TimeSlot is the bucket of day an appointment occupies.
type TimeSlot string

const (
	SlotMorning   TimeSlot = "MORNING"
	SlotAfternoon TimeSlot = "AFTERNOON"
	SlotEvening   TimeSlot = "EVENING"
	SlotNight     TimeSlot = "NIGHT"
)

func ParseTimeSlot(s string) (TimeSlot, error) {
	switch TimeSlot(s) {
	case SlotMorning, SlotAfternoon, SlotEvening, SlotNight:
		return TimeSlot(s), nil
	}
	return "", fmt.Errorf("parse time slot: unknown slot %q", s)
}

// Day is the weekday an appointment falls on.
type Day string

const (
	DayMon Day = "MON"
	DayTue Day = "TUE"
	DayWed Day = "WED"
	DayThu Day = "THU"
	DayFri Day = "FRI"
	DaySat Day = "SAT"
	DaySun Day = "SUN"
)

func ParseDay(s string) (Day, error) {
	switch Day(s) {
	case DayMon, DayTue, DayWed, DayThu, DayFri, DaySat, DaySun:
		return Day(s), nil
	}
	return "", fmt.Errorf("parse day: unknown day %q", s)
}
