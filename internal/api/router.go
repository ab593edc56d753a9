package api

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"

	"appointment-prep-service/internal/api/handlers"
	"appointment-prep-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay unaware of
// concrete adapters).
func NewRouter(
	appointmentSvc *services.AppointmentService,
	prepSvc *services.PrepService,
) http.Handler {
	validate := validator.New()

	appointmentHandler := &handlers.AppointmentHandler{
		Service:  appointmentSvc,
		Validate: validate,
	}
	prepHandler := &handlers.PrepHandler{
		Service:  prepSvc,
		Validate: validate,
	}

	rl := NewRateLimiter()

	router := httprouter.New()
	router.GET("/health", handlers.Health)
	router.POST("/api/v1/appointments", rl.Limit(appointmentHandler.Create))
	router.POST("/api/v1/appointments/:id/prep", rl.Limit(prepHandler.CreatePrep))
	router.GET("/api/v1/appointments/:id/reveal", prepHandler.Reveal)

	// The frontend runs on local dev hosts or the same LAN as a real device;
	// credentials are never used.
	corsHandler := cors.New(cors.Options{
		AllowOriginFunc: func(origin string) bool {
			for _, prefix := range []string{
				"http://localhost:", "http://127.0.0.1:", "http://192.168.", "http://10.",
			} {
				if strings.HasPrefix(origin, prefix) {
					return true
				}
			}
			return false
		},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           3600,
	}).Handler(router)

	return loggingMiddleware(corsHandler)
}
