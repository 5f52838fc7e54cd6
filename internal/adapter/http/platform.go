package httpadapter

import (
	"net/http"

	"adsmarket/internal/core/domain"
	"adsmarket/internal/core/port"
)

func (h *Handler) handleCreatePlatform(w http.ResponseWriter, r *http.Request) {
	var in port.CreatePlatformInput
	if err := decode(w, r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	pl, err := h.platforms.CreatePlatform(r.Context(), principalFrom(r.Context()), in)
	respond(h, w, r, http.StatusCreated, pl, err)
}

func (h *Handler) handleListPlatforms(w http.ResponseWriter, r *http.Request) {
	spec, err := listSpec(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	page, err := h.platforms.ListPlatforms(r.Context(), principalFrom(r.Context()), spec)
	respond(h, w, r, http.StatusOK, page, err)
}

func (h *Handler) handleGetPlatform(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	pl, err := h.platforms.GetPlatform(r.Context(), principalFrom(r.Context()), id)
	respond(h, w, r, http.StatusOK, pl, err)
}

func (h *Handler) handleDeletePlatform(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	pl, err := h.platforms.DeletePlatform(r.Context(), principalFrom(r.Context()), id)
	respond(h, w, r, http.StatusOK, pl, err)
}

func (h *Handler) handleUpdatePlatform(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var in port.UpdatePlatformFields
	if err = decode(w, r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	pl, err := h.platforms.UpdatePlatform(r.Context(), principalFrom(r.Context()), id, in)
	respond(h, w, r, http.StatusOK, pl, err)
}

func (h *Handler) handlePlatformStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var in port.StatusChange[domain.PlatformStatus]
	if err = decode(w, r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	pl, err := h.platforms.TransitionPlatformStatus(r.Context(), principalFrom(r.Context()), id, in)
	respond(h, w, r, http.StatusOK, pl, err)
}

func (h *Handler) handleModeratePlatform(w http.ResponseWriter, r *http.Request) {
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
	pl, err := h.platforms.ModeratePlatform(r.Context(), principalFrom(r.Context()), id, in)
	respond(h, w, r, http.StatusOK, pl, err)
}

// handleResyncCounters lives under platforms because the recount is scoped
// to one platform and the campaigns booked on it.
func (h *Handler) handleResyncCounters(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	pl, err := h.placements.ResyncCounters(r.Context(), principalFrom(r.Context()), id)
	respond(h, w, r, http.StatusOK, pl, err)
}
