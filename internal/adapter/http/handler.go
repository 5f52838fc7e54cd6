package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"adsmarket/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP that turns requests into use-case commands carrying the caller's
// principal.
type Handler struct {
	campaigns  port.CampaignUseCase
	platforms  port.PlatformUseCase
	placements port.PlacementUseCase
	logger     *slog.Logger
	router     chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(campaigns port.CampaignUseCase, platforms port.PlatformUseCase, placements port.PlacementUseCase, logger *slog.Logger) *Handler {
	h := &Handler{campaigns: campaigns, platforms: platforms, placements: placements, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(h.principal)

		r.Route("/campaigns", func(r chi.Router) {
			r.Post("/", h.handleCreateCampaign)
			r.Get("/", h.handleListCampaigns)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.handleGetCampaign)
				r.Patch("/", h.handleUpdateCampaign)
				r.Delete("/", h.handleDeleteCampaign)
				r.Post("/status", h.handleCampaignStatus)
				r.Post("/moderation", h.handleModerateCampaign)
				r.Get("/progress", h.handleCampaignProgress)
				r.Post("/spend", h.handleApplySpend)
				r.Post("/refund", h.handleRefundSpend)
			})
		})

		r.Route("/platforms", func(r chi.Router) {
			r.Post("/", h.handleCreatePlatform)
			r.Get("/", h.handleListPlatforms)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.handleGetPlatform)
				r.Patch("/", h.handleUpdatePlatform)
				r.Delete("/", h.handleDeletePlatform)
				r.Post("/status", h.handlePlatformStatus)
				r.Post("/moderation", h.handleModeratePlatform)
				r.Post("/resync", h.handleResyncCounters)
			})
		})

		r.Route("/placements", func(r chi.Router) {
			r.Post("/", h.handleCreatePlacement)
			r.Get("/", h.handleListPlacements)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.handleGetPlacement)
				r.Post("/status", h.handlePlacementStatus)
				r.Post("/metrics", h.handlePlacementMetrics)
				r.Post("/payments", h.handlePlacementPayment)
			})
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
