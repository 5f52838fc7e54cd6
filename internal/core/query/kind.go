package query

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind is the value type of a field. It decides which operators apply and
// the canonical Go type predicate values are coerced into.
type Kind int

const (
	KindString  Kind = iota + 1 // string
	KindEnum                    // string, restricted to Field.Enum
	KindInt                     // int64
	KindFloat                   // float64
	KindDecimal                 // decimal.Decimal
	KindTime                    // time.Time
	KindBool                    // bool
	KindUUID                    // uuid.UUID
)

var (
	orderedOps = []Op{OpEq, OpNe, OpGt, OpGte, OpLt, OpLte, OpIn}
	equalOps   = []Op{OpEq, OpNe, OpIn}
)

func (k Kind) ops() []Op {
	switch k {
	case KindString:
		return []Op{OpEq, OpNe, OpIn, OpLike}
	case KindEnum, KindUUID:
		return equalOps
	case KindBool:
		return []Op{OpEq, OpNe}
	case KindInt, KindFloat, KindDecimal, KindTime:
		return orderedOps
	default:
		return nil
	}
}

func (k Kind) coerce(raw any) (any, error) {
	switch k {
	case KindString, KindEnum:
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("expected string, got %T", raw)
		}
		return s, nil
	case KindInt:
		return toInt(raw)
	case KindFloat:
		d, err := toDecimal(raw)
		if err != nil {
			return nil, err
		}
		return d.InexactFloat64(), nil
	case KindDecimal:
		return toDecimal(raw)
	case KindTime:
		return toTime(raw)
	case KindBool:
		b, ok := raw.(bool)
		if !ok {
			return nil, fmt.Errorf("expected bool, got %T", raw)
		}
		return b, nil
	case KindUUID:
		switch v := raw.(type) {
		case uuid.UUID:
			return v, nil
		case string:
			id, err := uuid.Parse(v)
			if err != nil {
				return nil, fmt.Errorf("invalid uuid %q", v)
			}
			return id, nil
		}
		return nil, fmt.Errorf("expected uuid string, got %T", raw)
	default:
		return nil, fmt.Errorf("unknown field kind %d", k)
	}
}

func toInt(raw any) (int64, error) {
	switch v := raw.(type) {
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case float64:
		if v != math.Trunc(v) || math.Abs(v) > 1<<53 {
			return 0, fmt.Errorf("expected integer, got %v", v)
		}
		return int64(v), nil
	case json.Number:
		return v.Int64()
	case string:
		return strconv.ParseInt(v, 10, 64)
	}
	return 0, fmt.Errorf("expected integer, got %T", raw)
}

func toDecimal(raw any) (decimal.Decimal, error) {
	switch v := raw.(type) {
	case decimal.Decimal:
		return v, nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return decimal.Zero, fmt.Errorf("expected finite number, got %v", v)
		}
		return decimal.NewFromFloat(v), nil
	case json.Number:
		return decimal.NewFromString(v.String())
	case string:
		return decimal.NewFromString(v)
	}
	return decimal.Zero, fmt.Errorf("expected number, got %T", raw)
}

func toTime(raw any) (time.Time, error) {
	switch v := raw.(type) {
	case time.Time:
		return v.UTC(), nil
	case string:
		if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
			return t.UTC(), nil
		}
		if t, err := time.Parse(time.DateOnly, v); err == nil {
			return t, nil
		}
		return time.Time{}, fmt.Errorf("invalid timestamp %q, want RFC3339 or YYYY-MM-DD", v)
	}
	return time.Time{}, fmt.Errorf("expected timestamp string, got %T", raw)
}
