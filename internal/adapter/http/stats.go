package httpadapter

import (
	"net/http"

	"adsmarket/internal/core/domain"
)

// handleCampaignProgress returns budget consumption and the completion rate
// of a campaign.
func (h *Handler) handleCampaignProgress(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	progress, err := h.campaigns.CampaignProgress(r.Context(), principalFrom(r.Context()), id)
	respond(h, w, r, http.StatusOK, progress, err)
}

// handlePlacementMetrics adds an impressions/clicks/conversions delta
// reported by the platform owner.
func (h *Handler) handlePlacementMetrics(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var delta domain.Metrics
	if err = decode(w, r, &delta); err != nil {
		h.writeError(w, r, err)
		return
	}
	p, err := h.placements.RecordPlacementMetrics(r.Context(), principalFrom(r.Context()), id, delta)
	respond(h, w, r, http.StatusOK, p, err)
}
