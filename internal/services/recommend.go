package services

import (
	"fmt"
	"math/rand"
	"slices"

	"appointment-prep-service/internal/domain"
	"appointment-prep-service/internal/geo"
)

// Per-mode base distance thresholds, meters. Scaled by appointment duration.
const (
	walkBaseThresholdM    = 2500.0
	bicycleBaseThresholdM = 6500.0
	transitBaseThresholdM = 14000.0
	carBaseThresholdM     = 22000.0
)

// Per-mode threshold floors, meters. Applied after scaling, and in practice
// they dominate for low-to-mid durations, neutralizing the scale factor.
// That matches observed production behavior; downstream ranking depends on
// it, so keep the floor-after-scale order.
const (
	walkFloorM    = 3500.0
	bicycleFloorM = 7000.0
	transitFloorM = 12000.0
	carFloorM     = 16000.0
)

const maxCandidates = 5

// CandidateDraft is a ranked destination before persistence: coordinates,
// the two itinerary lines, and the travel breakdown it was ranked by.
type CandidateDraft struct {
	Dest           domain.Coordinates
	ItineraryLines []string
	TravelSummary  string
	TravelLines    []domain.TravelLine
	TotalMin       int
}

// Recommend runs the primary recommendation pass: filter POIs by the
// mode/duration-scaled distance threshold, estimate travel for each, and rank
// ascending by total travel minutes. POI traversal is shuffled with the
// caller's rng so equal totals tie-break randomly; the sort is stable, so the
// shuffle order is the only tie-breaker. May return an empty list.
func Recommend(
	ap *domain.Appointment,
	prep *domain.Prep,
	pois []domain.PointOfInterest,
	rng *rand.Rand,
) ([]CandidateDraft, error) {
	maxDistanceM, err := maxDistanceMeters(prep.TravelMode, ap.DurationMin)
	if err != nil {
		return nil, fmt.Errorf("recommend: %w", err)
	}

	shuffled := slices.Clone(pois)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	out := make([]CandidateDraft, 0, len(shuffled))
	for _, poi := range shuffled {
		d := geo.DistanceMeters(prep.Origin.Lat, prep.Origin.Lng, poi.Lat, poi.Lng)
		if d > maxDistanceM {
			continue
		}

		draft, err := draftForPoi(ap, prep, poi, d)
		if err != nil {
			return nil, fmt.Errorf("recommend: %w", err)
		}
		out = append(out, draft)
	}

	slices.SortStableFunc(out, func(a, b CandidateDraft) int {
		return a.TotalMin - b.TotalMin
	})
	return out, nil
}

// FallbackNearest guarantees a non-empty result whenever the POI set is
// non-empty. Triggered only when Recommend comes back empty: take the `limit`
// nearest POIs with no distance cap, then rank that bounded set by total
// travel minutes.
func FallbackNearest(
	ap *domain.Appointment,
	prep *domain.Prep,
	pois []domain.PointOfInterest,
	limit int,
) ([]CandidateDraft, error) {
	sorted := slices.Clone(pois)
	slices.SortFunc(sorted, func(a, b domain.PointOfInterest) int {
		da := geo.DistanceMeters(prep.Origin.Lat, prep.Origin.Lng, a.Lat, a.Lng)
		db := geo.DistanceMeters(prep.Origin.Lat, prep.Origin.Lng, b.Lat, b.Lng)
		if da < db {
			return -1
		}
		if da > db {
			return 1
		}
		return 0
	})

	out := make([]CandidateDraft, 0, limit)
	for _, poi := range sorted {
		d := geo.DistanceMeters(prep.Origin.Lat, prep.Origin.Lng, poi.Lat, poi.Lng)

		draft, err := draftForPoi(ap, prep, poi, d)
		if err != nil {
			return nil, fmt.Errorf("fallback nearest: %w", err)
		}
		out = append(out, draft)

		if len(out) >= limit {
			break
		}
	}

	slices.SortStableFunc(out, func(a, b CandidateDraft) int {
		return a.TotalMin - b.TotalMin
	})
	return out, nil
}

func draftForPoi(
	ap *domain.Appointment,
	prep *domain.Prep,
	poi domain.PointOfInterest,
	distanceM float64,
) (CandidateDraft, error) {
	plan, err := EstimateTravel(prep.TravelMode, distanceM)
	if err != nil {
		return CandidateDraft{}, err
	}

	return CandidateDraft{
		Dest:           domain.Coordinates{Lat: poi.Lat, Lng: poi.Lng},
		ItineraryLines: ItineraryLines(ap.TimeSlot, ap.DurationMin, plan.TotalMin),
		TravelSummary:  plan.Summary,
		TravelLines:    plan.Lines,
		TotalMin:       plan.TotalMin,
	}, nil
}

func maxDistanceMeters(mode domain.TravelMode, durationMin int) (float64, error) {
	scale := geo.ClampFloat(float64(durationMin)/90.0, 0.6, 1.6)

	var base, floor float64
	switch mode {
	case domain.ModeWalk:
		base, floor = walkBaseThresholdM, walkFloorM
	case domain.ModeBicycle:
		base, floor = bicycleBaseThresholdM, bicycleFloorM
	case domain.ModeTransit:
		base, floor = transitBaseThresholdM, transitFloorM
	case domain.ModeCar:
		base, floor = carBaseThresholdM, carFloorM
	default:
		return 0, fmt.Errorf("max distance: %w: %q", ErrUnknownMode, mode)
	}

	maxDistance := base * scale
	if maxDistance < floor {
		maxDistance = floor
	}
	return maxDistance, nil
}
