package postgres

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adsmarket/internal/core/query"
)

func TestBuilderPredicates(t *testing.T) {
	owner := uuid.New()
	q, err := query.Campaigns.Compile(query.Spec{
		Filter: map[string]map[string]any{
			"owner_id": {"eq": owner.String()},
			"status":   {"in": []any{"active", "paused"}},
			"title":    {"like": "50%_off"},
		},
		Sort:  "budget_total:desc",
		Page:  3,
		Limit: 10,
	})
	require.NoError(t, err)

	b := &builder{}
	b.where("deleted_at IS NULL")
	require.NoError(t, b.predicates(q))

	assert.Equal(t,
		` WHERE deleted_at IS NULL AND "owner_id" = $1 AND "status" IN ($2, $3) AND "title" ILIKE $4 ESCAPE '\'`,
		b.whereClause())
	assert.Equal(t, ` ORDER BY "budget_total" DESC, "id" ASC LIMIT $5 OFFSET $6`, b.page(q))
	assert.Equal(t, []any{owner, "active", "paused", `%50\%\_off%`, 10, 20}, b.args)
}

func TestBuilderWithoutLimit(t *testing.T) {
	q := query.Query{Order: []query.OrderField{{Column: "created_at", Desc: true}}}
	b := &builder{}
	require.NoError(t, b.predicates(q))
	assert.Empty(t, b.whereClause())
	assert.Equal(t, ` ORDER BY "created_at" DESC`, b.page(q))
	assert.Empty(t, b.args)
}

func TestBuilderRejectsMalformedPredicates(t *testing.T) {
	tests := []struct {
		name string
		p    query.Predicate
	}{
		{name: "empty in", p: query.Predicate{Column: "status", Op: query.OpIn, Value: []any{}}},
		{name: "like on number", p: query.Predicate{Column: "title", Op: query.OpLike, Value: 3}},
		{name: "unknown op", p: query.Predicate{Column: "title", Op: "regex", Value: "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &builder{}
			assert.Error(t, b.predicates(query.Query{Predicates: []query.Predicate{tt.p}}))
		})
	}
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `a\\b\%c\_d`, escapeLike(`a\b%c_d`))
}
