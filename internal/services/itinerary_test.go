package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"appointment-prep-service/internal/domain"
)

func TestItineraryLinesAlwaysTwoNonEmptyLines(t *testing.T) {
	slots := []domain.TimeSlot{
		domain.SlotMorning, domain.SlotAfternoon, domain.SlotEvening, domain.SlotNight,
	}

	for _, slot := range slots {
		for _, duration := range []int{20, 60, 90, 240, 480} {
			for _, travel := range []int{1, 15, 35, 40, 120} {
				lines := ItineraryLines(slot, duration, travel)
				require.Len(t, lines, 2)
				assert.NotEmpty(t, lines[0])
				assert.NotEmpty(t, lines[1])
			}
		}
	}
}

func TestItineraryLinesAllocation(t *testing.T) {
	// duration 90, travel 20: usable = 70, a1 = round(31.5) = 32, a2 = 38.
	lines := ItineraryLines(domain.SlotAfternoon, 90, 20)
	assert.True(t, strings.HasPrefix(lines[0], "32 min"), "got %q", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "38 min"), "got %q", lines[1])
}

func TestItineraryLinesTravelCappedAt35(t *testing.T) {
	// Travel beyond 35 min does not shrink the usable window further.
	capped := ItineraryLines(domain.SlotMorning, 120, 35)
	huge := ItineraryLines(domain.SlotMorning, 120, 500)
	assert.Equal(t, capped, huge)
}

func TestItineraryLinesUsableFloor(t *testing.T) {
	// duration 20, travel 35: usable clamps to 25, a1 = round(11.25) = 11, a2 = 14.
	lines := ItineraryLines(domain.SlotNight, 20, 40)
	assert.True(t, strings.HasPrefix(lines[0], "11 min"), "got %q", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "14 min"), "got %q", lines[1])
}

func TestItineraryLinesSlotHeadDeterministic(t *testing.T) {
	morning := ItineraryLines(domain.SlotMorning, 90, 10)
	afternoon := ItineraryLines(domain.SlotAfternoon, 90, 10)
	evening := ItineraryLines(domain.SlotEvening, 90, 10)
	night := ItineraryLines(domain.SlotNight, 90, 10)

	// Each slot maps to a stable head label; evening and night share one.
	assert.Equal(t, morning, ItineraryLines(domain.SlotMorning, 90, 10))
	assert.NotEqual(t, morning[0], afternoon[0])
	assert.NotEqual(t, afternoon[0], evening[0])
	assert.Equal(t, evening[0], night[0])
}
