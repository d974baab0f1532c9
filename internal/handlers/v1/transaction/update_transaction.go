package transaction

import (
	"context"
	"net/http"

	"github.com/aarondl/opt/omit"
	"github.com/aarondl/opt/omitnull"
	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/household-ledger/internal/handlers/apierr"
	"github.com/carson-networks/household-ledger/internal/service"
)

// UpdateTransactionBody is the request body for updating a transaction.
// Absent fields are left unchanged. The clear flags null out the optional
// columns and win over a value sent alongside them.
type UpdateTransactionBody struct {
	CategoryID       *string `json:"categoryId,omitempty" doc:"New category UUID"`
	ClearCategory    bool    `json:"clearCategory,omitempty" doc:"Remove the category"`
	Amount           *string `json:"amount,omitempty" doc:"New positive decimal amount"`
	TransactionDate  *string `json:"transactionDate,omitempty" doc:"New calendar date, YYYY-MM-DD"`
	Description      *string `json:"description,omitempty" maxLength:"255" doc:"New description"`
	ClearDescription bool    `json:"clearDescription,omitempty" doc:"Remove the description"`
	PaidBy           *string `json:"paidBy,omitempty" doc:"New paying profile UUID, or SHARED"`
	IsReimbursed     *bool   `json:"isReimbursed,omitempty" doc:"New reimbursement state"`
}

// UpdateTransactionInput is the Huma input for updating a transaction.
type UpdateTransactionInput struct {
	ID      string `path:"id" doc:"Transaction UUID"`
	ActorID string `header:"X-Actor-ID" doc:"UUID of the acting household member"`
	Body    UpdateTransactionBody
}

type transactionUpdater interface {
	Update(ctx context.Context, id uuid.UUID, update service.TransactionUpdate, actor uuid.NullUUID) (*service.Transaction, error)
}

// UpdateTransactionHandler handles PATCH /v1/transaction/{id}.
type UpdateTransactionHandler struct {
	TransactionService transactionUpdater
}

// NewUpdateTransactionHandler creates a new UpdateTransactionHandler.
func NewUpdateTransactionHandler(svc transactionUpdater) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{TransactionService: svc}
}

// Register registers the update transaction endpoint with the Huma API.
func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-transaction",
		Method:      http.MethodPatch,
		Path:        "/v1/transaction/{id}",
		Summary:     "Update transaction",
		Description: "Changes the given fields of a live transaction.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseUpdateTransactionInput(input *UpdateTransactionInput) (uuid.UUID, service.TransactionUpdate, uuid.NullUUID, error) {
	var update service.TransactionUpdate
	id, err := apierr.ParseID("id", input.ID)
	if err != nil {
		return id, update, uuid.NullUUID{}, err
	}
	actor, err := apierr.ParseActor(input.ActorID)
	if err != nil {
		return id, update, actor, err
	}
	body := input.Body

	switch {
	case body.ClearCategory:
		update.CategoryID = omitnull.FromPtr[uuid.UUID](nil)
	case body.CategoryID != nil:
		categoryID, err := apierr.ParseID("categoryId", *body.CategoryID)
		if err != nil {
			return id, update, actor, err
		}
		update.CategoryID = omitnull.From(categoryID)
	}

	if body.Amount != nil {
		amount, err := parseAmount(*body.Amount)
		if err != nil {
			return id, update, actor, err
		}
		update.Amount = omit.From(amount)
	}

	if body.TransactionDate != nil {
		date, err := parseDate(*body.TransactionDate)
		if err != nil {
			return id, update, actor, err
		}
		update.TransactionDate = omit.From(date)
	}

	switch {
	case body.ClearDescription:
		update.Description = omitnull.FromPtr[string](nil)
	case body.Description != nil:
		update.Description = omitnull.From(*body.Description)
	}

	if body.PaidBy != nil {
		payer, err := parsePayer(*body.PaidBy)
		if err != nil {
			return id, update, actor, err
		}
		update.PaidBy = omit.From(payer)
	}

	if body.IsReimbursed != nil {
		update.IsReimbursed = omit.From(*body.IsReimbursed)
	}
	return id, update, actor, nil
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*TransactionOutput, error) {
	id, update, actor, err := parseUpdateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	tx, err := h.TransactionService.Update(ctx, id, update, actor)
	if err != nil {
		return nil, apierr.FromService(err)
	}
	return &TransactionOutput{Status: http.StatusOK, Body: fromService(tx)}, nil
}
