package query

import (
	"bytes"
	"cmp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Row exposes column values of an entity for in-process evaluation. A nil
// value stands for SQL NULL.
type Row interface {
	Value(column string) any
}

// Matches reports whether r satisfies every predicate of q. NULL never
// matches, as in SQL.
func (q Query) Matches(r Row) bool {
	for _, p := range q.Predicates {
		if !p.matches(r.Value(p.Column)) {
			return false
		}
	}
	return true
}

func (p Predicate) matches(v any) bool {
	if v == nil {
		return false
	}
	switch p.Op {
	case OpIn:
		for _, candidate := range p.Value.([]any) {
			if c, ok := Compare(v, candidate); ok && c == 0 {
				return true
			}
		}
		return false
	case OpLike:
		s, ok1 := v.(string)
		pattern, ok2 := p.Value.(string)
		return ok1 && ok2 && strings.Contains(strings.ToLower(s), strings.ToLower(pattern))
	}
	c, ok := Compare(v, p.Value)
	if !ok {
		return false
	}
	switch p.Op {
	case OpEq:
		return c == 0
	case OpNe:
		return c != 0
	case OpGt:
		return c > 0
	case OpGte:
		return c >= 0
	case OpLt:
		return c < 0
	case OpLte:
		return c <= 0
	}
	return false
}

// Cmp orders rows by q.Order for slices.SortFunc. NULL sorts after every
// value ascending and before every value descending, matching PostgreSQL
// defaults.
func (q Query) Cmp(a, b Row) int {
	for _, o := range q.Order {
		c := compareNullable(a.Value(o.Column), b.Value(o.Column))
		if o.Desc {
			c = -c
		}
		if c != 0 {
			return c
		}
	}
	return 0
}

func compareNullable(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	c, _ := Compare(a, b)
	return c
}

// Compare compares two canonical values of the same kind. ok is false when
// the types differ.
func Compare(a, b any) (int, bool) {
	switch x := a.(type) {
	case string:
		y, ok := b.(string)
		return strings.Compare(x, y), ok
	case int64:
		y, ok := b.(int64)
		return cmp.Compare(x, y), ok
	case float64:
		y, ok := b.(float64)
		return cmp.Compare(x, y), ok
	case decimal.Decimal:
		y, ok := b.(decimal.Decimal)
		return x.Cmp(y), ok
	case time.Time:
		y, ok := b.(time.Time)
		return x.Compare(y), ok
	case bool:
		y, ok := b.(bool)
		switch {
		case x == y:
			return 0, ok
		case !x:
			return -1, ok
		default:
			return 1, ok
		}
	case uuid.UUID:
		y, ok := b.(uuid.UUID)
		return bytes.Compare(x[:], y[:]), ok
	}
	return 0, false
}
