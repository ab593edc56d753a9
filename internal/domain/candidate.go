package domain

import "github.com/google/uuid"

// TravelLine is one labeled minute-count component of a travel estimate
// (e.g. wait, transfer, ride, walk).
type TravelLine struct {
	Label string `json:"label"`
	Min   int    `json:"min"`
}

// Candidate is one ranked destination option attached to a prep. Candidates
// are written in a batch alongside their prep and never mutated afterwards.
//
// Invariant: TravelTotalMin equals the sum of TravelLines minutes, and
// OrderIndex values within a prep are exactly 0..n-1.
type Candidate struct {
	ID             string
	PrepID         string
	OrderIndex     int
	Dest           Coordinates
	ItineraryLines []string
	TravelSummary  string
	TravelLines    []TravelLine
	TravelTotalMin int
}

func NewCandidate(
	prepID string,
	orderIndex int,
	dest Coordinates,
	itineraryLines []string,
	travelSummary string,
	travelLines []TravelLine,
	totalMin int,
) *Candidate {
	return &Candidate{
		ID:             uuid.New().String(),
		PrepID:         prepID,
		OrderIndex:     orderIndex,
		Dest:           dest,
		ItineraryLines: itineraryLines,
		TravelSummary:  travelSummary,
		TravelLines:    travelLines,
		TravelTotalMin: totalMin,
	}
}
