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

// AppointmentHandler exposes appointment creation.
type AppointmentHandler struct {
	Service  *services.AppointmentService
	Validate *validator.Validate
}

func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req dto.CreateAppointmentRequest

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

	ap, err := h.Service.Create(
		r.Context(),
		domain.Day(req.Day),
		domain.TimeSlot(req.TimeSlot),
		req.DurationMin,
	)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeData(w, r, http.StatusOK, dto.AppointmentResponse{
		ID:          ap.ID,
		Day:         string(ap.Day),
		TimeSlot:    string(ap.TimeSlot),
		DurationMin: ap.DurationMin,
		CreatedAt:   ap.CreatedAt,
	})
}
