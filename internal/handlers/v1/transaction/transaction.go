package transaction

import (
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/household-ledger/internal/period"
	"github.com/carson-networks/household-ledger/internal/service"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID              string  `json:"id" doc:"Transaction UUID"`
	CategoryID      *string `json:"categoryId,omitempty" doc:"Category UUID"`
	Amount          string  `json:"amount" doc:"Decimal amount"`
	TransactionDate string  `json:"transactionDate" doc:"Calendar date, YYYY-MM-DD"`
	Description     *string `json:"description,omitempty" doc:"Upper-cased description"`
	PaidBy          string  `json:"paidBy" doc:"Paying profile UUID, or SHARED"`
	IsReimbursed    bool    `json:"isReimbursed" doc:"Whether the payer has been paid back"`
	CreatedAt       string  `json:"createdAt" doc:"RFC3339 creation time"`
	UpdatedAt       string  `json:"updatedAt" doc:"RFC3339 last update time"`
	DeletedAt       *string `json:"deletedAt,omitempty" doc:"RFC3339 soft-delete time, absent while live"`
}

func fromService(tx *service.Transaction) Transaction {
	out := Transaction{
		ID:              tx.ID.String(),
		Amount:          tx.Amount.StringFixed(2),
		TransactionDate: tx.TransactionDate.Format(period.DateLayout),
		Description:     tx.Description,
		PaidBy:          tx.PaidBy.String(),
		IsReimbursed:    tx.IsReimbursed,
		CreatedAt:       tx.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       tx.UpdatedAt.Format(time.RFC3339),
	}
	if tx.CategoryID != nil {
		categoryID := tx.CategoryID.String()
		out.CategoryID = &categoryID
	}
	if tx.DeletedAt != nil {
		deletedAt := tx.DeletedAt.Format(time.RFC3339)
		out.DeletedAt = &deletedAt
	}
	return out
}

func parseAmount(value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Decimal{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}
	if !amount.IsPositive() {
		return decimal.Decimal{}, huma.NewError(http.StatusBadRequest, "amount must be greater than zero")
	}
	return amount, nil
}

func parseDate(value string) (time.Time, error) {
	date, err := time.Parse(period.DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, huma.NewError(http.StatusBadRequest, "invalid transactionDate", err)
	}
	return date, nil
}

// parsePayer accepts a profile UUID, or SHARED / empty for a household expense.
func parsePayer(value string) (service.PayerRef, error) {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, service.SharedPayer().String()) {
		return service.SharedPayer(), nil
	}
	id, err := uuid.FromString(value)
	if err != nil {
		return service.PayerRef{}, huma.NewError(http.StatusBadRequest, "invalid paidBy", err)
	}
	return service.MemberPayer(id), nil
}
