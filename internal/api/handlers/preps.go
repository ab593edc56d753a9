package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/julienschmidt/httprouter"

	"appointment-prep-service/internal/api/dto"
	"appointment-prep-service/internal/domain"
	"appointment-prep-service/internal/services"
)

// PrepHandler exposes the two orchestrator operations: prepare the day
// before, reveal on the day.
type PrepHandler struct {
	Service  *services.PrepService
	Validate *validator.Validate
}

func (h *PrepHandler) CreatePrep(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	appointmentID := ps.ByName("id")

	var req dto.CreatePrepRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	mode, err := domain.ParseTravelMode(req.TravelMode)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "unknown travel_mode")
		return
	}

	result, err := h.Service.CreatePrepAndCandidates(
		r.Context(),
		appointmentID,
		mode,
		domain.Coordinates{Lat: *req.OriginLat, Lng: *req.OriginLng},
	)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeData(w, r, http.StatusOK, toPrepWithCandidatesResponse(result))
}

func (h *PrepHandler) Reveal(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	appointmentID := ps.ByName("id")

	result, err := h.Service.Reveal(r.Context(), appointmentID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeData(w, r, http.StatusOK, toPrepWithCandidatesResponse(result))
}

func toPrepWithCandidatesResponse(v *domain.PrepWithCandidates) dto.PrepWithCandidatesResponse {
	res := dto.PrepWithCandidatesResponse{
		Prep: dto.PrepResponse{
			ID:            v.Prep.ID,
			AppointmentID: v.Prep.AppointmentID,
			TravelMode:    string(v.Prep.TravelMode),
			OriginLat:     v.Prep.Origin.Lat,
			OriginLng:     v.Prep.Origin.Lng,
			PreparedAt:    v.Prep.PreparedAt,
		},
		Candidates: make([]dto.CandidateResponse, 0, len(v.Candidates)),
	}

	for _, c := range v.Candidates {
		lines := make([]dto.TravelLineResponse, 0, len(c.TravelLines))
		for _, l := range c.TravelLines {
			lines = append(lines, dto.TravelLineResponse{Label: l.Label, Min: l.Min})
		}

		res.Candidates = append(res.Candidates, dto.CandidateResponse{
			ID:             c.ID,
			OrderIndex:     c.OrderIndex,
			Point:          dto.PointResponse{Lat: c.Dest.Lat, Lng: c.Dest.Lng},
			ItineraryLines: c.ItineraryLines,
			Travel: dto.TravelBreakdownResponse{
				TotalMin: c.TravelTotalMin,
				Summary:  c.TravelSummary,
				Lines:    lines,
			},
		})
	}

	return res
}
