package sqlconfig

import (
	"context"
	"fmt"
	"sort"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

// Ensure SQLTable implements ITable at compile time.
var (
	_ ITable[CategoryRow]    = (*SQLTable[CategoryRow])(nil)
	_ ITable[ProfileRow]     = (*SQLTable[ProfileRow])(nil)
	_ ITable[TransactionRow] = (*SQLTable[TransactionRow])(nil)
)

// SQLTable provides access to one Postgres table through Bob.
type SQLTable[T any] struct {
	exec bob.Executor
	name string
}

// NewSQLTable creates an SQLTable for the named table.
func NewSQLTable[T any](exec bob.Executor, name string) *SQLTable[T] {
	return &SQLTable[T]{exec: exec, name: name}
}

// Name returns the table name.
func (t *SQLTable[T]) Name() string {
	return t.name
}

// totalCountColumn carries count(*) OVER () on windowed reads.
const totalCountColumn = "total_count"

// Select runs q. A windowed read returns its rows and the filtered total in
// one statement through a window count; otherwise the total is the number of
// rows read.
func (t *SQLTable[T]) Select(ctx context.Context, q *Query) ([]T, int, error) {
	if q == nil {
		q = NewQuery()
	}
	where := whereExpressions(q.Filters)

	if q.Window == nil {
		rows, err := bob.All(ctx, t.exec, psql.Select(t.selectMods("*", where, q)...), scan.StructMapper[T]())
		if err != nil {
			return nil, 0, err
		}
		return rows, len(rows), nil
	}

	queryMods := t.selectMods(`*, count(*) OVER () AS "`+totalCountColumn+`"`, where, q)
	queryMods = append(queryMods,
		sm.Limit(q.Window.Limit()),
		sm.Offset(q.Window.From),
	)
	counted, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.Mapper[countedRow[T]](countedMapper[T]))
	if err != nil {
		return nil, 0, err
	}
	if len(counted) == 0 && q.Window.From > 0 {
		// Past the last row the window count has no row to ride on.
		total, err := t.count(ctx, where)
		return nil, total, err
	}

	rows := make([]T, len(counted))
	total := 0
	for i, c := range counted {
		rows[i] = c.row
		total = int(c.total)
	}
	return rows, total, nil
}

func (t *SQLTable[T]) selectMods(columns string, where []bob.Expression, q *Query) []bob.Mod[*dialect.SelectQuery] {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(columns),
		sm.From(psql.Quote(t.name)),
	}
	for _, w := range where {
		queryMods = append(queryMods, sm.Where(w))
	}
	for _, o := range q.Orders {
		if o.Desc {
			queryMods = append(queryMods, sm.OrderBy(psql.Quote(o.Column)).Desc())
		} else {
			queryMods = append(queryMods, sm.OrderBy(psql.Quote(o.Column)).Asc())
		}
	}
	return queryMods
}

func (t *SQLTable[T]) count(ctx context.Context, where []bob.Expression) (int, error) {
	countMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(psql.Raw("count(*)")),
		sm.From(psql.Quote(t.name)),
	}
	for _, w := range where {
		countMods = append(countMods, sm.Where(w))
	}
	total, err := bob.One(ctx, t.exec, psql.Select(countMods...), scan.SingleColumnMapper[int64])
	if err != nil {
		return 0, err
	}
	return int(total), nil
}

// countedRow is one scanned row plus the window count riding on it.
type countedRow[T any] struct {
	row   T
	total int64
}

type countedLink struct {
	row   any
	total *int64
}

// countedMapper maps every column except totalCountColumn onto T and reads
// the window count on the side. totalCountColumn is selected last, so the
// remaining columns keep their positions.
func countedMapper[T any](ctx context.Context, cols []string) (func(*scan.Row) (any, error), func(any) (countedRow[T], error)) {
	rowCols := make([]string, 0, len(cols))
	for _, c := range cols {
		if c != totalCountColumn {
			rowCols = append(rowCols, c)
		}
	}
	before, after := scan.StructMapper[T]()(ctx, rowCols)

	return func(r *scan.Row) (any, error) {
			total := new(int64)
			r.ScheduleScanByName(totalCountColumn, total)
			link, err := before(r)
			if err != nil {
				return nil, err
			}
			return countedLink{row: link, total: total}, nil
		}, func(v any) (countedRow[T], error) {
			link := v.(countedLink)
			row, err := after(link.row)
			if err != nil {
				return countedRow[T]{}, err
			}
			return countedRow[T]{row: row, total: *link.total}, nil
		}
}

// Insert creates a row and returns it with database defaults applied.
func (t *SQLTable[T]) Insert(ctx context.Context, values Values) (T, error) {
	var zero T
	if len(values) == 0 {
		return zero, fmt.Errorf("insert into %s: no values", t.name)
	}

	columns := sortedColumns(values)
	args := make([]bob.Expression, len(columns))
	for i, column := range columns {
		args[i] = psql.Arg(values[column])
	}

	query := psql.Insert(
		im.Into(psql.Quote(t.name), columns...),
		im.Values(args...),
		im.Returning("*"),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[T]())
	if err != nil {
		return zero, err
	}
	return row, nil
}

// Update sets values on every row matching q's filters, returning the new rows.
func (t *SQLTable[T]) Update(ctx context.Context, q *Query, values Values) ([]T, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("update %s: no values", t.name)
	}
	if q == nil {
		q = NewQuery()
	}

	queryMods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table(psql.Quote(t.name)),
	}
	for _, column := range sortedColumns(values) {
		queryMods = append(queryMods, um.SetCol(column).ToArg(values[column]))
	}
	for _, w := range whereExpressions(q.Filters) {
		queryMods = append(queryMods, um.Where(w))
	}
	queryMods = append(queryMods, um.Returning("*"))

	return bob.All(ctx, t.exec, psql.Update(queryMods...), scan.StructMapper[T]())
}

func whereExpressions(filters []Filter) []bob.Expression {
	exprs := make([]bob.Expression, 0, len(filters))
	for _, f := range filters {
		column := psql.Quote(f.Column)
		switch f.Op {
		case OpEquals:
			exprs = append(exprs, column.EQ(psql.Arg(f.Value)))
		case OpIsNull:
			exprs = append(exprs, column.IsNull())
		case OpGreaterOrEqual:
			exprs = append(exprs, column.GTE(psql.Arg(f.Value)))
		case OpLessOrEqual:
			exprs = append(exprs, column.LTE(psql.Arg(f.Value)))
		case OpIn:
			if len(f.Values) == 0 {
				exprs = append(exprs, psql.Raw("FALSE"))
				continue
			}
			args := make([]bob.Expression, len(f.Values))
			for i, v := range f.Values {
				args[i] = psql.Arg(v)
			}
			exprs = append(exprs, column.In(args...))
		}
	}
	return exprs
}

// sortedColumns keeps generated SQL stable across map iteration orders.
func sortedColumns(values Values) []string {
	columns := make([]string, 0, len(values))
	for column := range values {
		columns = append(columns, column)
	}
	sort.Strings(columns)
	return columns
}
