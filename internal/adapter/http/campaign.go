package httpadapter

import (
	"net/http"

	"github.com/shopspring/decimal"

	"adsmarket/internal/core/domain"
	"adsmarket/internal/core/port"
)

type amountRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// respond writes v with status, or the error when err is non-nil.
func respond[T any](h *Handler, w http.ResponseWriter, r *http.Request, status int, v T, err error) {
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, status, v)
}

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var in port.CreateCampaignInput
	if err := decode(w, r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.campaigns.CreateCampaign(r.Context(), principalFrom(r.Context()), in)
	respond(h, w, r, http.StatusCreated, c, err)
}

func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	spec, err := listSpec(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	page, err := h.campaigns.ListCampaigns(r.Context(), principalFrom(r.Context()), spec)
	respond(h, w, r, http.StatusOK, page, err)
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.campaigns.GetCampaign(r.Context(), principalFrom(r.Context()), id)
	respond(h, w, r, http.StatusOK, c, err)
}

func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var in port.UpdateCampaignFields
	if err = decode(w, r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.campaigns.UpdateCampaign(r.Context(), principalFrom(r.Context()), id, in)
	respond(h, w, r, http.StatusOK, c, err)
}

func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.campaigns.DeleteCampaign(r.Context(), principalFrom(r.Context()), id)
	respond(h, w, r, http.StatusOK, c, err)
}

func (h *Handler) handleCampaignStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var in port.StatusChange[domain.CampaignStatus]
	if err = decode(w, r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.campaigns.TransitionCampaignStatus(r.Context(), principalFrom(r.Context()), id, in)
	respond(h, w, r, http.StatusOK, c, err)
}

func (h *Handler) handleModerateCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var in port.ModerationInput
	if err = decode(w, r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.campaigns.ModerateCampaign(r.Context(), principalFrom(r.Context()), id, in)
	respond(h, w, r, http.StatusOK, c, err)
}

func (h *Handler) handleApplySpend(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var in amountRequest
	if err = decode(w, r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.campaigns.ApplySpend(r.Context(), principalFrom(r.Context()), id, in.Amount)
	respond(h, w, r, http.StatusOK, c, err)
}

func (h *Handler) handleRefundSpend(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var in amountRequest
	if err = decode(w, r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.campaigns.RefundSpend(r.Context(), principalFrom(r.Context()), id, in.Amount)
	respond(h, w, r, http.StatusOK, c, err)
}
