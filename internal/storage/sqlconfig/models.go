package sqlconfig

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Table names.
const (
	TableCategories   = "categories"
	TableProfiles     = "profiles"
	TableTransactions = "transactions"
)

// Column names used in filters and orderings.
const (
	ColumnID              = "id"
	ColumnName            = "name"
	ColumnType            = "type"
	ColumnFullName        = "full_name"
	ColumnCategoryID      = "category_id"
	ColumnAmount          = "amount"
	ColumnTransactionDate = "transaction_date"
	ColumnDescription     = "description"
	ColumnPaidBy          = "paid_by"
	ColumnIsReimbursed    = "is_reimbursed"
	ColumnCreatedAt       = "created_at"
	ColumnDeletedAt       = "deleted_at"
)

// CategoryRow is a row of the categories table.
type CategoryRow struct {
	ID        uuid.UUID  `db:"id"`
	Name      string     `db:"name"`
	Type      string     `db:"type"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
	CreatedBy *uuid.UUID `db:"created_by"`
	UpdatedBy *uuid.UUID `db:"updated_by"`
	DeletedBy *uuid.UUID `db:"deleted_by"`
}

// ProfileRow is a row of the profiles table.
type ProfileRow struct {
	ID        uuid.UUID `db:"id"`
	FullName  string    `db:"full_name"`
	CreatedAt time.Time `db:"created_at"`
}

// TransactionRow is a row of the transactions table.
type TransactionRow struct {
	ID              uuid.UUID       `db:"id"`
	CategoryID      *uuid.UUID      `db:"category_id"`
	Amount          decimal.Decimal `db:"amount"`
	TransactionDate time.Time       `db:"transaction_date"`
	Description     *string         `db:"description"`
	PaidBy          *uuid.UUID      `db:"paid_by"`
	IsReimbursed    bool            `db:"is_reimbursed"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
	DeletedAt       *time.Time      `db:"deleted_at"`
	CreatedBy       *uuid.UUID      `db:"created_by"`
	UpdatedBy       *uuid.UUID      `db:"updated_by"`
	DeletedBy       *uuid.UUID      `db:"deleted_by"`
}
