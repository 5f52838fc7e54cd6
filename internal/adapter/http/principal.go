package httpadapter

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"adsmarket/internal/core/domain"
)

// Headers set by the upstream auth gateway.
const (
	headerUserID    = "X-User-ID"
	headerUserRoles = "X-User-Roles"
)

type principalKey struct{}

// principal reads the caller identity from gateway headers. A request
// without X-User-ID runs as the anonymous principal; commands that need an
// identity reject it themselves.
func (h *Handler) principal(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var p domain.Principal
		if raw := strings.TrimSpace(r.Header.Get(headerUserID)); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				h.writeError(w, r, domain.Validation("PRINCIPAL_INVALID", "%s is not a uuid", headerUserID))
				return
			}
			p.ID = id
		}
		for _, role := range strings.Split(r.Header.Get(headerUserRoles), ",") {
			switch strings.ToLower(strings.TrimSpace(role)) {
			case "admin":
				p.IsAdmin = true
			case "moderator":
				p.IsModerator = true
			}
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), principalKey{}, p)))
	})
}

func principalFrom(ctx context.Context) domain.Principal {
	p, _ := ctx.Value(principalKey{}).(domain.Principal)
	return p
}
