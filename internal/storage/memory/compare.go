package memory

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/household-ledger/internal/period"
	"github.com/carson-networks/household-ledger/internal/storage/sqlconfig"
)

func matchesAll(row sqlconfig.Values, filters []sqlconfig.Filter) (bool, error) {
	for _, f := range filters {
		ok, err := matches(row, f)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

// matches follows SQL null semantics: a null cell only satisfies IS NULL.
func matches(row sqlconfig.Values, f sqlconfig.Filter) (bool, error) {
	cell := deref(row[f.Column])

	if f.Op == sqlconfig.OpIsNull {
		return cell == nil, nil
	}
	if cell == nil {
		return false, nil
	}

	switch f.Op {
	case sqlconfig.OpEquals:
		return equal(cell, f.Value)
	case sqlconfig.OpGreaterOrEqual:
		c, err := compare(cell, deref(f.Value))
		return err == nil && c >= 0, err
	case sqlconfig.OpLessOrEqual:
		c, err := compare(cell, deref(f.Value))
		return err == nil && c <= 0, err
	case sqlconfig.OpIn:
		for _, v := range f.Values {
			ok, err := equal(cell, v)
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}
		return false, nil
	default:
		return false, fmt.Errorf("unsupported filter operator %d on %s", f.Op, f.Column)
	}
}

func equal(cell, value any) (bool, error) {
	value = deref(value)
	if value == nil {
		return false, nil
	}
	c, err := compare(cell, value)
	return err == nil && c == 0, err
}

// compareNullable orders nulls last, as Postgres does for ascending sorts.
func compareNullable(a, b any) (int, error) {
	a, b = deref(a), deref(b)
	switch {
	case a == nil && b == nil:
		return 0, nil
	case a == nil:
		return 1, nil
	case b == nil:
		return -1, nil
	}
	return compare(a, b)
}

func compare(a, b any) (int, error) {
	switch x := a.(type) {
	case time.Time:
		if y, ok := asTime(b); ok {
			return x.Compare(y), nil
		}
	case uuid.UUID:
		switch y := b.(type) {
		case uuid.UUID:
			return bytes.Compare(x.Bytes(), y.Bytes()), nil
		case string:
			return strings.Compare(x.String(), strings.ToLower(y)), nil
		}
	case decimal.Decimal:
		if y, ok := asDecimal(b); ok {
			return x.Cmp(y), nil
		}
	case bool:
		if y, ok := b.(bool); ok {
			switch {
			case x == y:
				return 0, nil
			case !x:
				return -1, nil
			default:
				return 1, nil
			}
		}
	case string:
		switch y := b.(type) {
		case string:
			return strings.Compare(x, y), nil
		case time.Time:
			if xt, ok := asTime(x); ok {
				return xt.Compare(y), nil
			}
		case uuid.UUID:
			return strings.Compare(strings.ToLower(x), y.String()), nil
		}
	default:
		if xd, ok := asDecimal(a); ok {
			if yd, ok := asDecimal(b); ok {
				return xd.Cmp(yd), nil
			}
		}
	}
	return 0, fmt.Errorf("cannot compare %T with %T", a, b)
}

func asTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case string:
		if parsed, err := time.Parse(period.DateLayout, t); err == nil {
			return parsed, true
		}
		if parsed, err := time.Parse(time.RFC3339Nano, t); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

func asDecimal(v any) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case decimal.Decimal:
		return n, true
	case int:
		return decimal.NewFromInt(int64(n)), true
	case int32:
		return decimal.NewFromInt32(n), true
	case int64:
		return decimal.NewFromInt(n), true
	case float32:
		return decimal.NewFromFloat32(n), true
	case float64:
		return decimal.NewFromFloat(n), true
	case string:
		d, err := decimal.NewFromString(n)
		return d, err == nil
	}
	return decimal.Decimal{}, false
}

// deref unwraps typed pointers so *T cells compare like T and typed nils
// read as null.
func deref(v any) any {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	return rv.Interface()
}
