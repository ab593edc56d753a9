package dto

// Origin coordinates are pointers so "missing" and "zero" stay
// distinguishable; lat/lng 0 are valid inputs.
type CreatePrepRequest struct {
	TravelMode string   `json:"travel_mode" validate:"required,oneof=WALK TRANSIT CAR BICYCLE"`
	OriginLat  *float64 `json:"origin_lat" validate:"required,latitude"`
	OriginLng  *float64 `json:"origin_lng" validate:"required,longitude"`
}

type PointResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type TravelLineResponse struct {
	Label string `json:"label"`
	Min   int    `json:"min"`
}

type TravelBreakdownResponse struct {
	TotalMin int                  `json:"total_min"`
	Summary  string               `json:"summary"`
	Lines    []TravelLineResponse `json:"lines"`
}

type CandidateResponse struct {
	ID             string                  `json:"id"`
	OrderIndex     int                     `json:"order_index"`
	Point          PointResponse           `json:"point"`
	ItineraryLines []string                `json:"itinerary_lines"`
	Travel         TravelBreakdownResponse `json:"travel"`
}

type PrepResponse struct {
	ID            string  `json:"id"`
	AppointmentID string  `json:"appointment_id"`
	TravelMode    string  `json:"travel_mode"`
	OriginLat     float64 `json:"origin_lat"`
	OriginLng     float64 `json:"origin_lng"`
	PreparedAt    int64   `json:"prepared_at"`
}

type PrepWithCandidatesResponse struct {
	Prep       PrepResponse        `json:"prep"`
	Candidates []CandidateResponse `json:"candidates"`
}
