package sqlconfig

import (
	"context"
)

// Values maps column names to the values written by an insert or update.
type Values map[string]any

// ITable is the read/write port every backend implements for one table.
// Rows are decoded into T using `db` struct tags.
//
//go:generate mockery --name ITable --inpackage --with-expecter --filename mock_ITable.go
type ITable[T any] interface {
	// Name is the backing table name.
	Name() string
	// Select returns the rows matching q and the exact number of rows matching
	// q's filters ignoring its window.
	Select(ctx context.Context, q *Query) ([]T, int, error)
	// Insert writes one row and returns it as stored, generated columns included.
	Insert(ctx context.Context, values Values) (T, error)
	// Update applies values to every row matching q's filters and returns the
	// updated rows. No matching rows is not an error: the slice is empty.
	Update(ctx context.Context, q *Query, values Values) ([]T, error)
}
