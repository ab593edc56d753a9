package services

import (
	"fmt"
	"math"

	"appointment-prep-service/internal/domain"
	"appointment-prep-service/internal/geo"
)

// Average net speeds per mode, meters per minute.
const (
	walkSpeedMpm    = 80.0
	bicycleSpeedMpm = 220.0
	transitSpeedMpm = 350.0
	carSpeedMpm     = 550.0
)

// Fixed per-mode overheads, minutes.
const (
	bicycleWrapUpMin   = 3
	carParkWalkMin     = 8
	transitWaitMin     = 6
	transitTransferMin = 4
)

// TravelPlan is a mode-specific estimate: a labeled minute breakdown, the
// total, and a short human-readable summary. TotalMin always equals the sum
// of the line minutes.
type TravelPlan struct {
	TotalMin int
	Summary  string
	Lines    []domain.TravelLine
}

// EstimateTravel converts a raw distance and travel mode into a TravelPlan.
// Used both for ranking candidates and for display.
func EstimateTravel(mode domain.TravelMode, distanceMeters float64) (TravelPlan, error) {
	speed, err := modeSpeedMpm(mode)
	if err != nil {
		return TravelPlan{}, err
	}

	baseMove := int(math.Round(distanceMeters / speed))
	if baseMove < 1 {
		baseMove = 1
	}

	switch mode {
	case domain.ModeWalk:
		return TravelPlan{
			TotalMin: baseMove,
			Summary:  travelSummary(mode, baseMove),
			Lines:    []domain.TravelLine{{Label: "move", Min: baseMove}},
		}, nil

	case domain.ModeBicycle:
		total := baseMove + bicycleWrapUpMin
		return TravelPlan{
			TotalMin: total,
			Summary:  travelSummary(mode, total),
			Lines: []domain.TravelLine{
				{Label: "move", Min: baseMove},
				{Label: "wrap-up", Min: bicycleWrapUpMin},
			},
		}, nil

	case domain.ModeCar:
		total := baseMove + carParkWalkMin
		return TravelPlan{
			TotalMin: total,
			Summary:  travelSummary(mode, total),
			Lines: []domain.TravelLine{
				{Label: "drive", Min: baseMove},
				{Label: "park/walk", Min: carParkWalkMin},
			},
		}, nil

	case domain.ModeTransit:
		// Final walking leg grows with distance but stays within 4..10 min;
		// the ride absorbs the rest of the base move, never below 3 min.
		lastWalk := geo.ClampInt(int(math.Round(distanceMeters/2500.0))+4, 4, 10)
		ride := baseMove - lastWalk
		if ride < 3 {
			ride = 3
		}
		total := transitWaitMin + transitTransferMin + ride + lastWalk
		return TravelPlan{
			TotalMin: total,
			Summary:  travelSummary(mode, total),
			Lines: []domain.TravelLine{
				{Label: "wait", Min: transitWaitMin},
				{Label: "transfer", Min: transitTransferMin},
				{Label: "ride", Min: ride},
				{Label: "walk", Min: lastWalk},
			},
		}, nil
	}

	return TravelPlan{}, fmt.Errorf("estimate travel: %w: %q", ErrUnknownMode, mode)
}

func modeSpeedMpm(mode domain.TravelMode) (float64, error) {
	switch mode {
	case domain.ModeWalk:
		return walkSpeedMpm, nil
	case domain.ModeBicycle:
		return bicycleSpeedMpm, nil
	case domain.ModeTransit:
		return transitSpeedMpm, nil
	case domain.ModeCar:
		return carSpeedMpm, nil
	}
	return 0, fmt.Errorf("estimate travel: %w: %q", ErrUnknownMode, mode)
}

func travelLabel(mode domain.TravelMode) string {
	switch mode {
	case domain.ModeWalk:
		return "walk"
	case domain.ModeTransit:
		return "transit"
	case domain.ModeCar:
		return "car"
	case domain.ModeBicycle:
		return "bicycle"
	}
	return "travel"
}

func travelSummary(mode domain.TravelMode, totalMin int) string {
	return fmt.Sprintf("%s ~%d min", travelLabel(mode), totalMin)
}
