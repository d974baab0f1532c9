package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/household-ledger/internal/handlers/apierr"
	"github.com/carson-networks/household-ledger/internal/service"
)

// GetCategoryInput is the Huma input for fetching one category.
type GetCategoryInput struct {
	ID string `path:"id" doc:"Category UUID"`
}

// CategoryOutput is the Huma output for endpoints returning one category.
type CategoryOutput struct {
	Status int
	Body   Category
}

type categoryGetter interface {
	Get(ctx context.Context, id uuid.UUID) (*service.Category, error)
}

// GetCategoryHandler handles GET /v1/category/{id}.
type GetCategoryHandler struct {
	CategoryService categoryGetter
}

// NewGetCategoryHandler creates a new GetCategoryHandler.
func NewGetCategoryHandler(svc categoryGetter) *GetCategoryHandler {
	return &GetCategoryHandler{CategoryService: svc}
}

// Register registers the get category endpoint with the Huma API.
func (h *GetCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-category",
		Method:      http.MethodGet,
		Path:        "/v1/category/{id}",
		Summary:     "Get category",
		Description: "Returns a category by id, including soft-deleted ones.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *GetCategoryHandler) handle(ctx context.Context, input *GetCategoryInput) (*CategoryOutput, error) {
	id, err := apierr.ParseID("id", input.ID)
	if err != nil {
		return nil, err
	}

	category, err := h.CategoryService.Get(ctx, id)
	if err != nil {
		return nil, apierr.FromService(err)
	}
	return &CategoryOutput{Status: http.StatusOK, Body: fromService(category)}, nil
}
