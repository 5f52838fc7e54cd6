// Package query translates a declarative filter, sort and page specification
// into a typed, parameterized query. Unknown fields, operators and sort keys
// fail closed with an UnsupportedFilter error instead of being ignored.
package query

import (
	"slices"
	"sort"
	"strings"

	"go.einride.tech/aip/ordering"

	"adsmarket/internal/core/domain"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Op is a comparison operator accepted in a filter.
type Op string

const (
	OpEq   Op = "eq"
	OpNe   Op = "ne"
	OpGt   Op = "gt"
	OpGte  Op = "gte"
	OpLt   Op = "lt"
	OpLte  Op = "lte"
	OpIn   Op = "in"
	OpLike Op = "like"
)

// Spec is the client-facing list request:
//
//	{"filter": {"status": {"eq": "active"}}, "sort": "created_at:desc", "page": 1, "limit": 20}
type Spec struct {
	Filter map[string]map[string]any `json:"filter,omitempty"`
	Sort   string                    `json:"sort,omitempty"`
	Page   int                       `json:"page,omitempty"`
	Limit  int                       `json:"limit,omitempty"`
}

// Predicate is one compiled condition. Value holds a canonical Go value
// (see Kind); for OpIn it holds a []any of canonical values.
type Predicate struct {
	Column string
	Kind   Kind
	Op     Op
	Value  any
}

// OrderField is one compiled sort key.
type OrderField struct {
	Column string
	Desc   bool
}

// Query is the compiled, storage-neutral form of a Spec.
type Query struct {
	Predicates []Predicate
	Order      []OrderField
	Page       int
	Limit      int
	Offset     int
}

// Page is one page of results plus the total matching the same predicate.
type Page[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

// Field declares a filterable column.
type Field struct {
	Column   string
	Kind     Kind
	Sortable bool
	// Enum lists accepted values for KindEnum fields.
	Enum []string
}

// Schema is the allow-list of fields for one entity.
type Schema struct {
	Entity      domain.EntityKind
	Fields      map[string]Field
	DefaultSort string
}

// With returns a copy of q with an extra equality predicate. Use cases use
// it to scope listings (e.g. placements of one campaign) after compiling
// client input.
func (q Query) With(column string, kind Kind, value any) Query {
	q.Predicates = append(slices.Clone(q.Predicates), Predicate{Column: column, Kind: kind, Op: OpEq, Value: value})
	return q
}

// Compile validates spec against the schema and builds a Query.
func (s Schema) Compile(spec Spec) (Query, error) {
	q := Query{Page: spec.Page, Limit: spec.Limit}
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.Limit <= 0 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	q.Offset = (q.Page - 1) * q.Limit

	names := make([]string, 0, len(spec.Filter))
	for name := range spec.Filter {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		field, ok := s.Fields[name]
		if !ok {
			return Query{}, domain.UnsupportedFilter("%s has no filterable field %q", strings.ToLower(string(s.Entity)), name)
		}
		conds := spec.Filter[name]
		if len(conds) == 0 {
			return Query{}, domain.UnsupportedFilter("field %q has no operator", name)
		}
		ops := make([]string, 0, len(conds))
		for op := range conds {
			ops = append(ops, op)
		}
		sort.Strings(ops)
		for _, rawOp := range ops {
			p, err := field.predicate(name, Op(rawOp), conds[rawOp])
			if err != nil {
				return Query{}, err
			}
			q.Predicates = append(q.Predicates, p)
		}
	}

	order, err := s.order(spec.Sort)
	if err != nil {
		return Query{}, err
	}
	q.Order = order
	return q, nil
}

func (f Field) predicate(name string, op Op, raw any) (Predicate, error) {
	if !slices.Contains(f.Kind.ops(), op) {
		return Predicate{}, domain.UnsupportedFilter("operator %q is not supported on field %q", op, name)
	}
	p := Predicate{Column: f.Column, Kind: f.Kind, Op: op}
	if op == OpIn {
		items, ok := raw.([]any)
		if !ok || len(items) == 0 {
			return Predicate{}, domain.UnsupportedFilter("operator in on field %q needs a non-empty list", name)
		}
		values := make([]any, 0, len(items))
		for _, item := range items {
			v, err := f.coerce(name, item)
			if err != nil {
				return Predicate{}, err
			}
			values = append(values, v)
		}
		p.Value = values
		return p, nil
	}
	v, err := f.coerce(name, raw)
	if err != nil {
		return Predicate{}, err
	}
	p.Value = v
	return p, nil
}

func (f Field) coerce(name string, raw any) (any, error) {
	v, err := f.Kind.coerce(raw)
	if err != nil {
		return nil, domain.UnsupportedFilter("field %q: %v", name, err)
	}
	if f.Kind == KindEnum && !slices.Contains(f.Enum, v.(string)) {
		return nil, domain.UnsupportedFilter("field %q does not accept value %q", name, v)
	}
	return v, nil
}

// order parses "field:asc,other:desc" and validates it against the sortable
// allow-list. The id column is always appended as a tie-breaker so offset
// pagination is stable.
func (s Schema) order(raw string) ([]OrderField, error) {
	if strings.TrimSpace(raw) == "" {
		raw = s.DefaultSort
	}
	parts := strings.Split(raw, ",")
	aip := make([]string, 0, len(parts))
	for _, part := range parts {
		name, dir, _ := strings.Cut(strings.TrimSpace(part), ":")
		dir = strings.ToLower(strings.TrimSpace(dir))
		switch dir {
		case "", "asc", "desc":
		default:
			return nil, domain.UnsupportedFilter("invalid sort direction %q", dir)
		}
		aip = append(aip, strings.TrimSpace(name+" "+dir))
	}

	var orderBy ordering.OrderBy
	if err := orderBy.UnmarshalString(strings.Join(aip, ", ")); err != nil {
		return nil, domain.UnsupportedFilter("invalid sort %q: %v", raw, err)
	}
	if err := orderBy.ValidateForPaths(s.sortable()...); err != nil {
		return nil, domain.UnsupportedFilter("invalid sort %q: %v", raw, err)
	}

	out := make([]OrderField, 0, len(orderBy.Fields)+1)
	hasID := false
	for _, of := range orderBy.Fields {
		col := s.Fields[of.Path].Column
		hasID = hasID || col == "id"
		out = append(out, OrderField{Column: col, Desc: of.Desc})
	}
	if !hasID {
		out = append(out, OrderField{Column: "id"})
	}
	return out, nil
}

func (s Schema) sortable() []string {
	var paths []string
	for name, f := range s.Fields {
		if f.Sortable {
			paths = append(paths, name)
		}
	}
	return paths
}
