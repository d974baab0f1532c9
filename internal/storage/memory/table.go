// Package memory is an in-process implementation of the storage port. It backs
// local development (STORAGE_BACKEND=memory) and the service scenario tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/go-viper/mapstructure/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/household-ledger/internal/period"
	"github.com/carson-networks/household-ledger/internal/storage/sqlconfig"
)

var (
	_ sqlconfig.ITable[sqlconfig.CategoryRow]    = (*Table[sqlconfig.CategoryRow])(nil)
	_ sqlconfig.ITable[sqlconfig.ProfileRow]     = (*Table[sqlconfig.ProfileRow])(nil)
	_ sqlconfig.ITable[sqlconfig.TransactionRow] = (*Table[sqlconfig.TransactionRow])(nil)
)

// Table keeps rows as column maps in insertion order, which doubles as the
// natural row order used to break ordering ties.
type Table[T any] struct {
	mu   sync.RWMutex
	name string
	rows []sqlconfig.Values
}

// NewTable creates an empty table.
func NewTable[T any](name string) *Table[T] {
	return &Table[T]{name: name}
}

// Name returns the table name.
func (t *Table[T]) Name() string {
	return t.name
}

// Seed appends rows verbatim (an id is generated when missing). It bypasses
// the audit pipeline, so fixtures can carry arbitrary timestamps.
func (t *Table[T]) Seed(rows ...sqlconfig.Values) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, row := range rows {
		t.rows = append(t.rows, withID(row))
	}
}

// Len returns the number of stored rows, soft-deleted ones included.
func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}

func (t *Table[T]) Select(ctx context.Context, q *sqlconfig.Query) ([]T, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	if q == nil {
		q = sqlconfig.NewQuery()
	}

	t.mu.RLock()
	matched, err := t.match(q.Filters)
	t.mu.RUnlock()
	if err != nil {
		return nil, 0, err
	}

	if err := sortRows(matched, q.Orders); err != nil {
		return nil, 0, fmt.Errorf("select %s: %w", t.name, err)
	}

	total := len(matched)
	if q.Window != nil {
		matched = window(matched, *q.Window)
	}

	result, err := decodeAll[T](matched)
	if err != nil {
		return nil, 0, fmt.Errorf("select %s: %w", t.name, err)
	}
	return result, total, nil
}

func (t *Table[T]) Insert(ctx context.Context, values sqlconfig.Values) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	if len(values) == 0 {
		return zero, fmt.Errorf("insert into %s: no values", t.name)
	}

	row := withID(values)
	out, err := decode[T](row)
	if err != nil {
		return zero, fmt.Errorf("insert into %s: %w", t.name, err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	for _, existing := range t.rows {
		if existing[sqlconfig.ColumnID] == row[sqlconfig.ColumnID] {
			return zero, fmt.Errorf("insert into %s: duplicate key value violates unique constraint on id", t.name)
		}
	}
	t.rows = append(t.rows, row)
	return out, nil
}

func (t *Table[T]) Update(ctx context.Context, q *sqlconfig.Query, values sqlconfig.Values) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("update %s: no values", t.name)
	}
	if q == nil {
		q = sqlconfig.NewQuery()
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	var updated []sqlconfig.Values
	for i, row := range t.rows {
		ok, err := matchesAll(row, q.Filters)
		if err != nil {
			return nil, fmt.Errorf("update %s: %w", t.name, err)
		}
		if !ok {
			continue
		}
		next := cloneRow(row)
		for column, value := range values {
			next[column] = value
		}
		if _, err := decode[T](next); err != nil {
			return nil, fmt.Errorf("update %s: %w", t.name, err)
		}
		t.rows[i] = next
		updated = append(updated, next)
	}

	return decodeAll[T](updated)
}

// match returns copies of the rows satisfying every filter. Callers hold mu.
func (t *Table[T]) match(filters []sqlconfig.Filter) ([]sqlconfig.Values, error) {
	var out []sqlconfig.Values
	for _, row := range t.rows {
		ok, err := matchesAll(row, filters)
		if err != nil {
			return nil, fmt.Errorf("select %s: %w", t.name, err)
		}
		if ok {
			out = append(out, cloneRow(row))
		}
	}
	return out, nil
}

func sortRows(rows []sqlconfig.Values, orders []sqlconfig.Order) error {
	if len(orders) == 0 {
		return nil
	}
	var sortErr error
	sort.SliceStable(rows, func(i, j int) bool {
		for _, o := range orders {
			c, err := compareNullable(rows[i][o.Column], rows[j][o.Column])
			if err != nil {
				sortErr = err
				return false
			}
			if c == 0 {
				continue
			}
			if o.Desc {
				return c > 0
			}
			return c < 0
		}
		return false
	})
	return sortErr
}

func window(rows []sqlconfig.Values, r sqlconfig.RowRange) []sqlconfig.Values {
	if r.From < 0 || r.From >= len(rows) || r.To < r.From {
		return nil
	}
	end := r.To + 1
	if end > len(rows) {
		end = len(rows)
	}
	return rows[r.From:end]
}

func withID(values sqlconfig.Values) sqlconfig.Values {
	row := cloneRow(values)
	if id, ok := row[sqlconfig.ColumnID]; !ok || id == nil {
		row[sqlconfig.ColumnID] = uuid.Must(uuid.NewV4())
	}
	return row
}

func cloneRow(row sqlconfig.Values) sqlconfig.Values {
	out := make(sqlconfig.Values, len(row))
	for k, v := range row {
		out[k] = v
	}
	return out
}

func decodeAll[T any](rows []sqlconfig.Values) ([]T, error) {
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		v, err := decode[T](row)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func decode[T any](row sqlconfig.Values) (T, error) {
	var out T
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:    "db",
		Result:     &out,
		DecodeHook: mapstructure.StringToTimeHookFunc(period.DateLayout),
	})
	if err != nil {
		return out, err
	}
	if err := decoder.Decode(map[string]any(row)); err != nil {
		return out, err
	}
	return out, nil
}
