package service

import (
	"strings"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/household-ledger/internal/storage/sqlconfig"
)

// CategoryType is whether a category books money going out or coming in.
type CategoryType int8

const (
	CategoryTypeExpense CategoryType = iota
	CategoryTypeIncome
)

func (t CategoryType) String() string {
	return categoryTypeToStorage(t)
}

// ParseCategoryType accepts EXPENSE or INCOME in any case. Empty means EXPENSE.
func ParseCategoryType(s string) (CategoryType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", sqlconfig.CategoryTypeExpense:
		return CategoryTypeExpense, nil
	case sqlconfig.CategoryTypeIncome:
		return CategoryTypeIncome, nil
	default:
		return 0, invalid("type", "must be EXPENSE or INCOME")
	}
}

// Category represents a category in the service layer.
type Category struct {
	ID        uuid.UUID
	Name      string
	Type      CategoryType
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
	CreatedBy *uuid.UUID
	UpdatedBy *uuid.UUID
	DeletedBy *uuid.UUID
}

// IsLive reports whether the category has not been soft-deleted.
func (c Category) IsLive() bool {
	return c.DeletedAt == nil
}

// CategoryInput is the payload for creating a category.
type CategoryInput struct {
	Name string
	Type CategoryType
}

// CategoryUpdate carries only the fields being changed.
type CategoryUpdate struct {
	Name omit.Val[string]
	Type omit.Val[CategoryType]
}

func categoryTypeToStorage(t CategoryType) string {
	if t == CategoryTypeIncome {
		return sqlconfig.CategoryTypeIncome
	}
	return sqlconfig.CategoryTypeExpense
}

func categoryTypeFromStorage(s string) CategoryType {
	if strings.EqualFold(s, sqlconfig.CategoryTypeIncome) {
		return CategoryTypeIncome
	}
	return CategoryTypeExpense
}

func categoryFromRow(row sqlconfig.CategoryRow) Category {
	return Category{
		ID:        row.ID,
		Name:      row.Name,
		Type:      categoryTypeFromStorage(row.Type),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
		DeletedAt: row.DeletedAt,
		CreatedBy: row.CreatedBy,
		UpdatedBy: row.UpdatedBy,
		DeletedBy: row.DeletedBy,
	}
}
