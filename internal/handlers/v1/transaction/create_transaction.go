package transaction

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/household-ledger/internal/handlers/apierr"
	"github.com/carson-networks/household-ledger/internal/logging"
	"github.com/carson-networks/household-ledger/internal/service"
)

// CreateTransactionBody is the request body for creating a transaction.
// Missing fields are reported as 400s by the handler rather than by schema
// validation so the messages name the field.
type CreateTransactionBody struct {
	CategoryID      string  `json:"categoryId,omitempty" doc:"Category UUID"`
	Amount          string  `json:"amount,omitempty" doc:"Positive decimal amount"`
	TransactionDate string  `json:"transactionDate,omitempty" doc:"Calendar date, YYYY-MM-DD"`
	Description     *string `json:"description,omitempty" maxLength:"255" doc:"Free-text description"`
	PaidBy          string  `json:"paidBy,omitempty" doc:"Paying profile UUID, or SHARED (default)"`
	IsReimbursed    bool    `json:"isReimbursed,omitempty" doc:"Whether the payer has been paid back"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	ActorID string `header:"X-Actor-ID" doc:"UUID of the acting household member"`
	Body    CreateTransactionBody
}

// transactionCreator is the interface for creating transactions.
type transactionCreator interface {
	Create(ctx context.Context, input service.TransactionInput, actor uuid.NullUUID) (*service.Transaction, error)
}

// CreateTransactionHandler handles POST /v1/transaction.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/v1/transaction",
		Summary:       "Create transaction",
		Description:   "Creates a new transaction.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

// parseCreateTransactionInput parses and validates the API input. The service
// stores what it is given, so amount, date and category are checked here.
func parseCreateTransactionInput(input *CreateTransactionInput) (service.TransactionInput, uuid.NullUUID, error) {
	var create service.TransactionInput
	actor, err := apierr.ParseActor(input.ActorID)
	if err != nil {
		return create, actor, err
	}

	if strings.TrimSpace(input.Body.CategoryID) == "" {
		return create, actor, huma.NewError(http.StatusBadRequest, "categoryId is required")
	}
	categoryID, err := apierr.ParseID("categoryId", strings.TrimSpace(input.Body.CategoryID))
	if err != nil {
		return create, actor, err
	}
	create.CategoryID = uuid.NullUUID{UUID: categoryID, Valid: true}

	if create.Amount, err = parseAmount(input.Body.Amount); err != nil {
		return create, actor, err
	}

	if strings.TrimSpace(input.Body.TransactionDate) == "" {
		return create, actor, huma.NewError(http.StatusBadRequest, "transactionDate is required")
	}
	if create.TransactionDate, err = parseDate(input.Body.TransactionDate); err != nil {
		return create, actor, err
	}

	if create.PaidBy, err = parsePayer(input.Body.PaidBy); err != nil {
		return create, actor, err
	}
	create.Description = input.Body.Description
	create.IsReimbursed = input.Body.IsReimbursed
	return create, actor, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*TransactionOutput, error) {
	logData := logging.GetLogData(ctx)
	create, actor, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createTransactionMs")
	}
	tx, err := h.TransactionService.Create(ctx, create, actor)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierr.FromService(err)
	}

	if logData != nil {
		logData.AddData("transactionID", tx.ID.String())
	}
	return &TransactionOutput{Status: http.StatusCreated, Body: fromService(tx)}, nil
}
