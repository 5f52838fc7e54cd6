package query

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adsmarket/internal/core/domain"
)

func TestCompileDefaults(t *testing.T) {
	q, err := Campaigns.Compile(Spec{})
	require.NoError(t, err)
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, DefaultLimit, q.Limit)
	assert.Equal(t, 0, q.Offset)
	assert.Empty(t, q.Predicates)
	assert.Equal(t, []OrderField{{Column: "created_at", Desc: true}, {Column: "id"}}, q.Order)
}

func TestCompileCapsLimit(t *testing.T) {
	q, err := Platforms.Compile(Spec{Page: 3, Limit: 1000})
	require.NoError(t, err)
	assert.Equal(t, MaxLimit, q.Limit)
	assert.Equal(t, 200, q.Offset)
}

func TestCompileCoercesValues(t *testing.T) {
	owner := uuid.New()
	q, err := Campaigns.Compile(Spec{
		Filter: map[string]map[string]any{
			"budget_total":          {"gte": json.Number("500.25")},
			"owner_id":              {"eq": owner.String()},
			"start_date":            {"lt": "2025-02-01"},
			"total_platforms_count": {"gt": 2.0},
			"status":                {"in": []any{"active", "paused"}},
		},
		Sort: "budget_total:desc, title",
	})
	require.NoError(t, err)
	require.Len(t, q.Predicates, 5)

	byColumn := map[string]Predicate{}
	for _, p := range q.Predicates {
		byColumn[p.Column] = p
	}
	assert.True(t, decimal.RequireFromString("500.25").Equal(byColumn["budget_total"].Value.(decimal.Decimal)))
	assert.Equal(t, owner, byColumn["owner_id"].Value)
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), byColumn["start_date"].Value)
	assert.Equal(t, int64(2), byColumn["total_platforms_count"].Value)
	assert.Equal(t, []any{"active", "paused"}, byColumn["status"].Value)

	assert.Equal(t, []OrderField{
		{Column: "budget_total", Desc: true},
		{Column: "title"},
		{Column: "id"},
	}, q.Order)
}

func TestCompileFailsClosed(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
	}{
		{"unknown field", Spec{Filter: map[string]map[string]any{"password": {"eq": "x"}}}},
		{"unknown operator", Spec{Filter: map[string]map[string]any{"title": {"regex": ".*"}}}},
		{"operator on wrong kind", Spec{Filter: map[string]map[string]any{"status": {"like": "act"}}}},
		{"enum value", Spec{Filter: map[string]map[string]any{"status": {"eq": "running"}}}},
		{"uuid value", Spec{Filter: map[string]map[string]any{"owner_id": {"eq": "42"}}}},
		{"empty in", Spec{Filter: map[string]map[string]any{"status": {"in": []any{}}}}},
		{"no operator", Spec{Filter: map[string]map[string]any{"status": {}}}},
		{"fractional int", Spec{Filter: map[string]map[string]any{"total_platforms_count": {"gt": 1.5}}}},
		{"unknown sort", Spec{Filter: map[string]map[string]any{"status": {"eq": "active"}}, Sort: "unknown_field:asc"}},
		{"unsortable field", Spec{Sort: "owner_id"}},
		{"bad direction", Spec{Sort: "title:sideways"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Campaigns.Compile(tt.spec)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrUnsupportedFilter)
		})
	}
}

func TestWith(t *testing.T) {
	base, err := Placements.Compile(Spec{Filter: map[string]map[string]any{"status": {"eq": "active"}}})
	require.NoError(t, err)
	id := uuid.New()

	scoped := base.With("created_by", KindUUID, id)
	assert.Len(t, base.Predicates, 1)
	require.Len(t, scoped.Predicates, 2)
	assert.Equal(t, Predicate{Column: "created_by", Kind: KindUUID, Op: OpEq, Value: id}, scoped.Predicates[1])
}

type row map[string]any

func (r row) Value(column string) any { return r[column] }

func TestMatchesAndCmp(t *testing.T) {
	q, err := Platforms.Compile(Spec{
		Filter: map[string]map[string]any{
			"name":          {"like": "TECH"},
			"audience_size": {"gte": 100},
		},
		Sort: "last_campaign_date:desc",
	})
	require.NoError(t, err)

	assert.True(t, q.Matches(row{"name": "Daily tech news", "audience_size": int64(100)}))
	assert.False(t, q.Matches(row{"name": "Daily tech news", "audience_size": int64(99)}))
	assert.False(t, q.Matches(row{"name": "Cooking", "audience_size": int64(500)}))
	assert.False(t, q.Matches(row{"name": nil, "audience_size": int64(500)}), "NULL never matches")

	older := row{"id": uuid.MustParse("00000000-0000-0000-0000-000000000001"), "last_campaign_date": time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	newer := row{"id": uuid.MustParse("00000000-0000-0000-0000-000000000002"), "last_campaign_date": time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)}
	never := row{"id": uuid.MustParse("00000000-0000-0000-0000-000000000003"), "last_campaign_date": nil}

	assert.Negative(t, q.Cmp(never, newer), "NULL first when descending")
	assert.Negative(t, q.Cmp(newer, older))
	assert.Zero(t, q.Cmp(older, older))
}

func TestCompare(t *testing.T) {
	c, ok := Compare(decimal.NewFromInt(2), decimal.RequireFromString("2.00"))
	assert.True(t, ok)
	assert.Zero(t, c)

	_, ok = Compare("1", int64(1))
	assert.False(t, ok)

	c, ok = Compare(false, true)
	assert.True(t, ok)
	assert.Equal(t, -1, c)
}
