package postgres

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lib/pq"

	"adsmarket/internal/core/query"
)

// builder accumulates positional arguments while a statement is rendered.
type builder struct {
	conds []string
	args  []any
}

func (b *builder) arg(v any) string {
	b.args = append(b.args, v)
	return "$" + strconv.Itoa(len(b.args))
}

func (b *builder) where(cond string) {
	b.conds = append(b.conds, cond)
}

var comparators = map[query.Op]string{
	query.OpEq:  "=",
	query.OpNe:  "<>",
	query.OpGt:  ">",
	query.OpGte: ">=",
	query.OpLt:  "<",
	query.OpLte: "<=",
}

// predicates renders q's predicates. Column names come from a query.Schema
// allow-list and are still quoted; values always travel as parameters.
func (b *builder) predicates(q query.Query) error {
	for _, p := range q.Predicates {
		col := pq.QuoteIdentifier(p.Column)
		switch p.Op {
		case query.OpIn:
			values, ok := p.Value.([]any)
			if !ok || len(values) == 0 {
				return fmt.Errorf("predicate %s in: want non-empty []any, got %T", p.Column, p.Value)
			}
			params := make([]string, len(values))
			for i, v := range values {
				params[i] = b.arg(v)
			}
			b.where(col + " IN (" + strings.Join(params, ", ") + ")")
		case query.OpLike:
			s, ok := p.Value.(string)
			if !ok {
				return fmt.Errorf("predicate %s like: want string, got %T", p.Column, p.Value)
			}
			b.where(col + ` ILIKE ` + b.arg("%"+escapeLike(s)+"%") + ` ESCAPE '\'`)
		default:
			cmp, ok := comparators[p.Op]
			if !ok {
				return fmt.Errorf("predicate %s: unsupported operator %q", p.Column, p.Op)
			}
			b.where(col + " " + cmp + " " + b.arg(p.Value))
		}
	}
	return nil
}

func (b *builder) whereClause() string {
	if len(b.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.conds, " AND ")
}

// page renders ORDER BY and, when q has a limit, LIMIT/OFFSET. NULL
// placement follows PostgreSQL defaults, which the memory store mirrors.
func (b *builder) page(q query.Query) string {
	var sb strings.Builder
	for i, o := range q.Order {
		if i == 0 {
			sb.WriteString(" ORDER BY ")
		} else {
			sb.WriteString(", ")
		}
		sb.WriteString(pq.QuoteIdentifier(o.Column))
		if o.Desc {
			sb.WriteString(" DESC")
		} else {
			sb.WriteString(" ASC")
		}
	}
	if q.Limit > 0 {
		sb.WriteString(" LIMIT " + b.arg(q.Limit) + " OFFSET " + b.arg(q.Offset))
	}
	return sb.String()
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
