// Package paging turns page numbers into row windows and row counts into page counts.
package paging

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidPage    = errors.New("page must be at least 1")
	ErrInvalidPerPage = errors.New("perPage must be at least 1")
)

// Window is an inclusive, zero-based row index range.
type Window struct {
	From int
	To   int
}

// Size is the number of rows the window spans.
func (w Window) Size() int {
	return w.To - w.From + 1
}

// Compute returns the window for a one-based page of perPage rows.
func Compute(page, perPage int) (Window, error) {
	if perPage < 1 {
		return Window{}, fmt.Errorf("%w: got %d", ErrInvalidPerPage, perPage)
	}
	if page < 1 {
		return Window{}, fmt.Errorf("%w: got %d", ErrInvalidPage, page)
	}
	if page > math.MaxInt/perPage {
		return Window{}, fmt.Errorf("%w: page %d of %d rows is out of range", ErrInvalidPage, page, perPage)
	}
	return Window{
		From: (page - 1) * perPage,
		To:   page*perPage - 1,
	}, nil
}

// TotalPages returns ceil(totalRows / perPage). Zero rows is zero pages;
// callers render page 1 of 0 as an empty state.
func TotalPages(totalRows, perPage int) (int, error) {
	if perPage < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidPerPage, perPage)
	}
	if totalRows <= 0 {
		return 0, nil
	}
	return (totalRows + perPage - 1) / perPage, nil
}

// Page is one page of rows plus the counts needed to render a pager.
type Page[T any] struct {
	Rows       []T
	TotalCount int
	TotalPages int
	Page       int
	PerPage    int
}

// NewPage assembles a Page. perPage is assumed to have passed Compute already.
func NewPage[T any](rows []T, totalCount, page, perPage int) *Page[T] {
	totalPages, _ := TotalPages(totalCount, perPage)
	return &Page[T]{
		Rows:       rows,
		TotalCount: totalCount,
		TotalPages: totalPages,
		Page:       page,
		PerPage:    perPage,
	}
}
