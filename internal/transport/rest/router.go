package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/alpha-code/activity-service/internal/transport/middleware"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Health    *HealthHandler
	Behaviors *BehaviorHandler
	Joysticks *JoystickHandler
	Cards     *OsmoCardHandler
	QrCodes   *QrCodeHandler
	Activity  *ActivityHandler
}

// NewRouter assembles the HTTP mux. All resource routes live under
// /api/v1; probes stay at the root for orchestrators.
func NewRouter(h Handlers, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery(logger))

	r.Get("/health/live", h.Health.Live)
	r.Get("/health/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/behaviors/{kind}", func(r chi.Router) {
			r.Get("/", h.Behaviors.Search)
			r.Post("/", h.Behaviors.Create)
			r.Get("/by-name/{name}", h.Behaviors.GetByName)
			r.Get("/by-code/{code}", h.Behaviors.GetByCode)
			r.Get("/{id}", h.Behaviors.Get)
			r.Put("/{id}", h.Behaviors.Update)
			r.Patch("/{id}", h.Behaviors.Patch)
			r.Put("/{id}/status", h.Behaviors.ChangeStatus)
			r.Delete("/{id}", h.Behaviors.Delete)
		})

		r.Route("/bindings/joystick", func(r chi.Router) {
			r.Get("/", h.Joysticks.List)
			r.Post("/", h.Joysticks.Create)
			r.Get("/{id}", h.Joysticks.Get)
			r.Put("/{id}", h.Joysticks.Update)
			r.Patch("/{id}", h.Joysticks.Patch)
			r.Delete("/{id}", h.Joysticks.Delete)
		})

		r.Route("/bindings/card", func(r chi.Router) {
			r.Get("/", h.Cards.List)
			r.Post("/", h.Cards.Create)
			r.Get("/{id}", h.Cards.Get)
			r.Put("/{id}", h.Cards.Update)
			r.Patch("/{id}", h.Cards.Patch)
			r.Delete("/{id}", h.Cards.Delete)
		})

		r.Route("/qr-codes", func(r chi.Router) {
			r.Get("/", h.QrCodes.List)
			r.Post("/", h.QrCodes.Create)
			r.Post("/by-image", h.QrCodes.ResolveImage)
			r.Get("/by-code/{code}", h.QrCodes.GetByCode)
			r.Get("/{id}", h.QrCodes.Get)
			r.Put("/{id}", h.QrCodes.Update)
			r.Patch("/{id}", h.QrCodes.Patch)
			r.Put("/{id}/status", h.QrCodes.ChangeStatus)
			r.Post("/{id}/disable", h.QrCodes.Disable)
			r.Delete("/{id}", h.QrCodes.Delete)
		})

		r.Route("/activities", func(r chi.Router) {
			r.Get("/", h.Activity.Search)
			r.Post("/", h.Activity.Create)
			r.Get("/{id}", h.Activity.Get)
			r.Delete("/{id}", h.Activity.Delete)
		})
	})

	return r
}
