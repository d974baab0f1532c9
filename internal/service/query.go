package service

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/household-ledger/internal/paging"
	"github.com/carson-networks/household-ledger/internal/period"
	"github.com/carson-networks/household-ledger/internal/record"
	"github.com/carson-networks/household-ledger/internal/storage/sqlconfig"
)

func pageWindow(page, perPage int) (paging.Window, error) {
	w, err := paging.Compute(page, perPage)
	switch {
	case errors.Is(err, paging.ErrInvalidPage) && page >= 1:
		return w, invalid("page", "is past the last addressable row")
	case errors.Is(err, paging.ErrInvalidPage):
		return w, invalid("page", "must be at least 1")
	case errors.Is(err, paging.ErrInvalidPerPage):
		return w, invalid("perPage", "must be at least 1")
	}
	return w, err
}

func monthRange(month, year int) (*period.MonthRange, error) {
	r, err := period.Month(month, year)
	switch {
	case errors.Is(err, period.ErrInvalidMonth):
		return nil, invalid("month", "must be between 1 and 12")
	case errors.Is(err, period.ErrInvalidYear):
		return nil, invalid("year", "must be positive")
	}
	return r, err
}

// liveByID scopes a write to the row with id that is not soft-deleted.
func liveByID(id uuid.UUID) *sqlconfig.Query {
	return sqlconfig.NewQuery().
		FilterEquals(sqlconfig.ColumnID, id).
		FilterNull(sqlconfig.ColumnDeletedAt)
}

// findByID looks a row up regardless of its soft-delete state.
func findByID[T any](ctx context.Context, table sqlconfig.ITable[T], name string, id uuid.UUID) (T, error) {
	var zero T
	rows, _, err := table.Select(ctx, sqlconfig.NewQuery().FilterEquals(sqlconfig.ColumnID, id))
	if err != nil {
		return zero, storageFailure("get", name, err)
	}
	if len(rows) == 0 {
		return zero, &NotFoundError{Table: name, ID: id}
	}
	return rows[0], nil
}

// updateLive applies payload to the live row with id. Zero rows back means the
// row is missing or already soft-deleted.
func updateLive[T any](ctx context.Context, table sqlconfig.ITable[T], name, op string, id uuid.UUID, payload record.Payload) (T, error) {
	var zero T
	rows, err := table.Update(ctx, liveByID(id), sqlconfig.Values(payload))
	if err != nil {
		return zero, storageFailure(op, name, err)
	}
	if len(rows) == 0 {
		return zero, &NotFoundError{Table: name, ID: id}
	}
	return rows[0], nil
}

func mapRows[R, T any](rows []R, convert func(R) T) []T {
	out := make([]T, len(rows))
	for i, row := range rows {
		out[i] = convert(row)
	}
	return out
}
