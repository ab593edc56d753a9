package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"appointment-prep-service/internal/domain"
)

func TestEstimateTravelWalk(t *testing.T) {
	// 800 m at 80 m/min → 10 min, one line.
	plan, err := EstimateTravel(domain.ModeWalk, 800)
	require.NoError(t, err)

	assert.Equal(t, 10, plan.TotalMin)
	require.Len(t, plan.Lines, 1)
	assert.Equal(t, domain.TravelLine{Label: "move", Min: 10}, plan.Lines[0])
}

func TestEstimateTravelCar(t *testing.T) {
	// 5000 m at 550 m/min → round(9.09) = 9 move + 8 park/walk = 17.
	plan, err := EstimateTravel(domain.ModeCar, 5000)
	require.NoError(t, err)

	assert.Equal(t, 17, plan.TotalMin)
	require.Len(t, plan.Lines, 2)
	assert.Equal(t, domain.TravelLine{Label: "drive", Min: 9}, plan.Lines[0])
	assert.Equal(t, domain.TravelLine{Label: "park/walk", Min: 8}, plan.Lines[1])
}

func TestEstimateTravelBicycle(t *testing.T) {
	// 2200 m at 220 m/min → 10 move + 3 wrap-up = 13.
	plan, err := EstimateTravel(domain.ModeBicycle, 2200)
	require.NoError(t, err)

	assert.Equal(t, 13, plan.TotalMin)
	require.Len(t, plan.Lines, 2)
	assert.Equal(t, domain.TravelLine{Label: "move", Min: 10}, plan.Lines[0])
	assert.Equal(t, domain.TravelLine{Label: "wrap-up", Min: 3}, plan.Lines[1])
}

func TestEstimateTravelTransit(t *testing.T) {
	// 3000 m: baseMove = round(3000/350) = 9,
	// lastWalk = clamp(round(3000/2500)+4, 4, 10) = 5,
	// ride = max(3, 9-5) = 4, total = 6+4+4+5 = 19.
	plan, err := EstimateTravel(domain.ModeTransit, 3000)
	require.NoError(t, err)

	assert.Equal(t, 19, plan.TotalMin)
	require.Len(t, plan.Lines, 4)
	assert.Equal(t, domain.TravelLine{Label: "wait", Min: 6}, plan.Lines[0])
	assert.Equal(t, domain.TravelLine{Label: "transfer", Min: 4}, plan.Lines[1])
	assert.Equal(t, domain.TravelLine{Label: "ride", Min: 4}, plan.Lines[2])
	assert.Equal(t, domain.TravelLine{Label: "walk", Min: 5}, plan.Lines[3])
}

func TestEstimateTravelMinimumOneMinuteMove(t *testing.T) {
	// A 10 m hop never rounds down to a zero-minute move.
	plan, err := EstimateTravel(domain.ModeWalk, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, plan.TotalMin)
}

func TestEstimateTravelTransitRideFloor(t *testing.T) {
	// Short transit trips keep ride >= 3 even when lastWalk eats the base.
	plan, err := EstimateTravel(domain.ModeTransit, 500)
	require.NoError(t, err)

	var ride int
	for _, l := range plan.Lines {
		if l.Label == "ride" {
			ride = l.Min
		}
	}
	assert.GreaterOrEqual(t, ride, 3)
}

func TestEstimateTravelTotalEqualsSumOfLines(t *testing.T) {
	modes := []domain.TravelMode{
		domain.ModeWalk, domain.ModeBicycle, domain.ModeTransit, domain.ModeCar,
	}
	distances := []float64{0, 10, 500, 800, 3000, 5000, 12000, 25000, 100000}

	for _, mode := range modes {
		for _, d := range distances {
			plan, err := EstimateTravel(mode, d)
			require.NoError(t, err)

			sum := 0
			for _, l := range plan.Lines {
				sum += l.Min
			}
			assert.Equal(t, plan.TotalMin, sum, "mode=%s distance=%.0f", mode, d)
			assert.NotEmpty(t, plan.Summary)
		}
	}
}

func TestEstimateTravelUnknownMode(t *testing.T) {
	_, err := EstimateTravel(domain.TravelMode("JETPACK"), 1000)
	assert.ErrorIs(t, err, ErrUnknownMode)
}
