package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/household-ledger/internal/handlers/apierr"
)

// DeleteTransactionInput is the Huma input for soft-deleting a transaction.
type DeleteTransactionInput struct {
	ID      string `path:"id" doc:"Transaction UUID"`
	ActorID string `header:"X-Actor-ID" doc:"UUID of the acting household member"`
}

type transactionDeleter interface {
	SoftDelete(ctx context.Context, id uuid.UUID, actor uuid.NullUUID) error
}

// DeleteTransactionHandler handles DELETE /v1/transaction/{id}.
type DeleteTransactionHandler struct {
	TransactionService transactionDeleter
}

// NewDeleteTransactionHandler creates a new DeleteTransactionHandler.
func NewDeleteTransactionHandler(svc transactionDeleter) *DeleteTransactionHandler {
	return &DeleteTransactionHandler{TransactionService: svc}
}

// Register registers the delete transaction endpoint with the Huma API.
func (h *DeleteTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-transaction",
		Method:        http.MethodDelete,
		Path:          "/v1/transaction/{id}",
		Summary:       "Delete transaction",
		Description:   "Soft-deletes a live transaction.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteTransactionHandler) handle(ctx context.Context, input *DeleteTransactionInput) (*struct{}, error) {
	id, err := apierr.ParseID("id", input.ID)
	if err != nil {
		return nil, err
	}
	actor, err := apierr.ParseActor(input.ActorID)
	if err != nil {
		return nil, err
	}

	if err := h.TransactionService.SoftDelete(ctx, id, actor); err != nil {
		return nil, apierr.FromService(err)
	}
	return nil, nil
}
