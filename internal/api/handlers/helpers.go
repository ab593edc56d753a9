package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"appointment-prep-service/internal/adapters/repositories"
	"appointment-prep-service/internal/services"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

// writeData wraps successful payloads in the {"data": ...} envelope.
func writeData(w http.ResponseWriter, r *http.Request, status int, v any) {
	writeJSON(w, r, status, map[string]any{"data": v})
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// writeServiceError maps the core error taxonomy onto HTTP statuses:
// absent entities are 404, invalid system state (empty catalog, nothing to
// recommend) is 409, everything else is an opaque 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "not found")
	case errors.Is(err, services.ErrInvalidState):
		writeError(w, r, http.StatusConflict, err.Error())
	default:
		log.Printf("request failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}
