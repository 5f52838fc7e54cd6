package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"adsmarket/internal/core/domain"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

var kindStatus = map[domain.Kind]int{
	domain.KindValidation:             http.StatusBadRequest,
	domain.KindUnsupportedFilter:      http.StatusBadRequest,
	domain.KindNotFound:               http.StatusNotFound,
	domain.KindUnauthorized:           http.StatusForbidden,
	domain.KindInvalidTransition:      http.StatusConflict,
	domain.KindNotModerable:           http.StatusConflict,
	domain.KindDuplicateBooking:       http.StatusConflict,
	domain.KindImmutableState:         http.StatusConflict,
	domain.KindConcurrentModification: http.StatusConflict,
	domain.KindOverBudget:             http.StatusUnprocessableEntity,
	domain.KindStorageUnavailable:     http.StatusServiceUnavailable,
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps a domain error onto its status code. Anything that is not
// a domain error is logged and reported as a bare 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var de *domain.Error
	if !errors.As(err, &de) {
		h.logger.ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError, errorBody{Code: "INTERNAL", Message: "internal error"})
		return
	}
	status, ok := kindStatus[de.Kind]
	if !ok {
		status = http.StatusInternalServerError
	}
	if status >= http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.Any("error", err))
	}
	code := de.Code
	if code == "" {
		code = string(de.Kind)
	}
	msg := de.Message
	if msg == "" {
		msg = de.Error()
	}
	h.writeJSON(w, status, errorBody{Code: code, Message: msg})
}
