package service

import (
	"strings"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/aarondl/opt/omitnull"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/household-ledger/internal/storage/sqlconfig"
)

// AllCategories is the category filter value meaning "no category filter".
const AllCategories = "ALL"

// PayerRef says who paid: a household member, or the household as a whole.
// The zero value is Shared.
type PayerRef struct {
	member uuid.UUID
	valid  bool
}

// SharedPayer is the household-expense payer.
func SharedPayer() PayerRef {
	return PayerRef{}
}

// MemberPayer is a payment made by the profile with id.
func MemberPayer(id uuid.UUID) PayerRef {
	return PayerRef{member: id, valid: true}
}

func (p PayerRef) IsShared() bool {
	return !p.valid
}

// Member returns the paying profile id, or false for a shared expense.
func (p PayerRef) Member() (uuid.UUID, bool) {
	return p.member, p.valid
}

func (p PayerRef) String() string {
	if !p.valid {
		return "SHARED"
	}
	return p.member.String()
}

func payerFromColumn(paidBy *uuid.UUID) PayerRef {
	if paidBy == nil {
		return SharedPayer()
	}
	return MemberPayer(*paidBy)
}

// columnValue is the paid_by cell: NULL encodes Shared.
func (p PayerRef) columnValue() any {
	if !p.valid {
		return nil
	}
	return p.member
}

// DateOrder is the transaction_date direction of a list.
type DateOrder int8

const (
	NewestFirst DateOrder = iota
	OldestFirst
)

// ParseDateOrder maps "desc"/"newest" and "asc"/"oldest"; empty is NewestFirst.
func ParseDateOrder(s string) (DateOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "desc", "newest":
		return NewestFirst, nil
	case "asc", "oldest":
		return OldestFirst, nil
	default:
		return 0, invalid("order", "must be asc or desc")
	}
}

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID              uuid.UUID
	CategoryID      *uuid.UUID
	Amount          decimal.Decimal
	TransactionDate time.Time
	Description     *string
	PaidBy          PayerRef
	IsReimbursed    bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       *time.Time
	CreatedBy       *uuid.UUID
	UpdatedBy       *uuid.UUID
	DeletedBy       *uuid.UUID
}

// TransactionInput is the payload for creating a transaction. The caller is
// expected to have checked Amount > 0 and that the date and category are set.
type TransactionInput struct {
	CategoryID      uuid.NullUUID
	Amount          decimal.Decimal
	TransactionDate time.Time
	Description     *string
	PaidBy          PayerRef
	IsReimbursed    bool
}

// TransactionUpdate carries only the fields being changed. The nullable
// columns use omitnull so "set to NULL" differs from "leave alone".
type TransactionUpdate struct {
	CategoryID      omitnull.Val[uuid.UUID]
	Amount          omit.Val[decimal.Decimal]
	TransactionDate omit.Val[time.Time]
	Description     omitnull.Val[string]
	PaidBy          omit.Val[PayerRef]
	IsReimbursed    omit.Val[bool]
}

// TransactionListParams filters and pages a transaction list. Month and Year
// filter only when both are set; Category filters unless empty or ALL.
type TransactionListParams struct {
	Page     int
	PerPage  int
	Month    int
	Year     int
	Category string
	Order    DateOrder
}

func transactionFromRow(row sqlconfig.TransactionRow) Transaction {
	return Transaction{
		ID:              row.ID,
		CategoryID:      row.CategoryID,
		Amount:          row.Amount,
		TransactionDate: row.TransactionDate,
		Description:     row.Description,
		PaidBy:          payerFromColumn(row.PaidBy),
		IsReimbursed:    row.IsReimbursed,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
		DeletedAt:       row.DeletedAt,
		CreatedBy:       row.CreatedBy,
		UpdatedBy:       row.UpdatedBy,
		DeletedBy:       row.DeletedBy,
	}
}
