package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/household-ledger/internal/handlers/apierr"
)

// DeleteCategoryInput is the Huma input for soft-deleting a category.
type DeleteCategoryInput struct {
	ID      string `path:"id" doc:"Category UUID"`
	ActorID string `header:"X-Actor-ID" doc:"UUID of the acting household member"`
}

type categoryDeleter interface {
	SoftDelete(ctx context.Context, id uuid.UUID, actor uuid.NullUUID) error
}

// DeleteCategoryHandler handles DELETE /v1/category/{id}.
type DeleteCategoryHandler struct {
	CategoryService categoryDeleter
}

// NewDeleteCategoryHandler creates a new DeleteCategoryHandler.
func NewDeleteCategoryHandler(svc categoryDeleter) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{CategoryService: svc}
}

// Register registers the delete category endpoint with the Huma API.
func (h *DeleteCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-category",
		Method:        http.MethodDelete,
		Path:          "/v1/category/{id}",
		Summary:       "Delete category",
		Description:   "Soft-deletes a live category. Transactions keep referencing it.",
		Tags:          []string{"Categories"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteCategoryHandler) handle(ctx context.Context, input *DeleteCategoryInput) (*struct{}, error) {
	id, err := apierr.ParseID("id", input.ID)
	if err != nil {
		return nil, err
	}
	actor, err := apierr.ParseActor(input.ActorID)
	if err != nil {
		return nil, err
	}

	if err := h.CategoryService.SoftDelete(ctx, id, actor); err != nil {
		return nil, apierr.FromService(err)
	}
	return nil, nil
}
