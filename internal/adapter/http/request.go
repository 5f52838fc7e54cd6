package httpadapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"adsmarket/internal/core/domain"
	"adsmarket/internal/core/query"
)

const maxBodyBytes = 1 << 20

// decode reads a JSON body into v. Unknown fields are rejected so a typo in
// a field name never turns into a silent no-op.
func decode(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return domain.Validation("BODY_INVALID", "invalid JSON body: %v", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return domain.Validation("BODY_INVALID", "body must contain a single JSON object")
	}
	return nil
}

func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, domain.Validation("ID_INVALID", "path id is not a uuid")
	}
	return id, nil
}

// listSpec reads a list request from the query string:
//
//	?filter={"status":{"eq":"active"}}&sort=created_at:desc&page=2&limit=50
func listSpec(r *http.Request) (query.Spec, error) {
	var (
		q    = r.URL.Query()
		spec = query.Spec{Sort: q.Get("sort")}
		err  error
	)
	if raw := q.Get("filter"); raw != "" {
		dec := json.NewDecoder(bytes.NewBufferString(raw))
		dec.UseNumber()
		if err = dec.Decode(&spec.Filter); err != nil {
			return query.Spec{}, domain.UnsupportedFilter("filter is not a JSON object of field operators: %v", err)
		}
	}
	if raw := q.Get("page"); raw != "" {
		if spec.Page, err = strconv.Atoi(raw); err != nil {
			return query.Spec{}, domain.UnsupportedFilter("invalid page %q", raw)
		}
	}
	if raw := q.Get("limit"); raw != "" {
		if spec.Limit, err = strconv.Atoi(raw); err != nil {
			return query.Spec{}, domain.UnsupportedFilter("invalid limit %q", raw)
		}
	}
	return spec, nil
}
