package httpadapter

import (
	"net/http"

	"adsmarket/internal/core/domain"
	"adsmarket/internal/core/port"
)

func (h *Handler) handleCreatePlacement(w http.ResponseWriter, r *http.Request) {
	var in port.CreatePlacementInput
	if err := decode(w, r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	p, err := h.placements.CreatePlacement(r.Context(), principalFrom(r.Context()), in)
	respond(h, w, r, http.StatusCreated, p, err)
}

func (h *Handler) handleListPlacements(w http.ResponseWriter, r *http.Request) {
	spec, err := listSpec(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	page, err := h.placements.ListPlacements(r.Context(), principalFrom(r.Context()), spec)
	respond(h, w, r, http.StatusOK, page, err)
}

func (h *Handler) handleGetPlacement(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	p, err := h.placements.GetPlacement(r.Context(), principalFrom(r.Context()), id)
	respond(h, w, r, http.StatusOK, p, err)
}

func (h *Handler) handlePlacementStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var in port.StatusChange[domain.PlacementStatus]
	if err = decode(w, r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	p, err := h.placements.TransitionPlacementStatus(r.Context(), principalFrom(r.Context()), id, in)
	respond(h, w, r, http.StatusOK, p, err)
}

func (h *Handler) handlePlacementPayment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var in port.PaymentInput
	if err = decode(w, r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	p, err := h.placements.RecordPlacementPayment(r.Context(), principalFrom(r.Context()), id, in)
	respond(h, w, r, http.StatusOK, p, err)
}
