package sqlconfig

// FilterOp is the comparison a Filter applies to its column.
type FilterOp int8

const (
	OpEquals FilterOp = iota
	OpIsNull
	OpGreaterOrEqual
	OpLessOrEqual
	OpIn
)

// Filter is a single predicate. All filters in a Query are ANDed.
type Filter struct {
	Column string
	Op     FilterOp
	Value  any
	Values []any
}

// Order sorts by Column, descending when Desc is set.
type Order struct {
	Column string
	Desc   bool
}

// RowRange is an inclusive, zero-based row window applied after filtering and ordering.
type RowRange struct {
	From int
	To   int
}

// Query describes a filtered, ordered and optionally windowed read (or the
// row scope of an update). It is a plain value so any backend can interpret it.
type Query struct {
	Filters []Filter
	Orders  []Order
	Window  *RowRange
}

// NewQuery starts an empty query matching every row.
func NewQuery() *Query {
	return &Query{}
}

// FilterEquals adds column = value.
func (q *Query) FilterEquals(column string, value any) *Query {
	q.Filters = append(q.Filters, Filter{Column: column, Op: OpEquals, Value: value})
	return q
}

// FilterNull adds column IS NULL.
func (q *Query) FilterNull(column string) *Query {
	q.Filters = append(q.Filters, Filter{Column: column, Op: OpIsNull})
	return q
}

// FilterRange adds low <= column <= high.
func (q *Query) FilterRange(column string, low, high any) *Query {
	q.Filters = append(q.Filters,
		Filter{Column: column, Op: OpGreaterOrEqual, Value: low},
		Filter{Column: column, Op: OpLessOrEqual, Value: high},
	)
	return q
}

// FilterIn adds column IN (values...). An empty list matches nothing.
func (q *Query) FilterIn(column string, values ...any) *Query {
	q.Filters = append(q.Filters, Filter{Column: column, Op: OpIn, Values: values})
	return q
}

// OrderBy appends a sort key.
func (q *Query) OrderBy(column string, desc bool) *Query {
	q.Orders = append(q.Orders, Order{Column: column, Desc: desc})
	return q
}

// Range limits the read to rows [from, to].
func (q *Query) Range(from, to int) *Query {
	q.Window = &RowRange{From: from, To: to}
	return q
}

// Limit is the number of rows the window spans, zero when unwindowed.
func (r *RowRange) Limit() int {
	if r == nil {
		return 0
	}
	return r.To - r.From + 1
}
