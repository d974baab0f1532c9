package category

import (
	"context"
	"net/http"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/household-ledger/internal/handlers/apierr"
	"github.com/carson-networks/household-ledger/internal/service"
)

// UpdateCategoryBody is the request body for updating a category. Absent
// fields are left unchanged.
type UpdateCategoryBody struct {
	Name *string `json:"name,omitempty" minLength:"1" maxLength:"100" doc:"New display name"`
	Type *string `json:"type,omitempty" doc:"EXPENSE or INCOME"`
}

// UpdateCategoryInput is the Huma input for updating a category.
type UpdateCategoryInput struct {
	ID      string `path:"id" doc:"Category UUID"`
	ActorID string `header:"X-Actor-ID" doc:"UUID of the acting household member"`
	Body    UpdateCategoryBody
}

type categoryUpdater interface {
	Update(ctx context.Context, id uuid.UUID, update service.CategoryUpdate, actor uuid.NullUUID) (*service.Category, error)
}

// UpdateCategoryHandler handles PATCH /v1/category/{id}.
type UpdateCategoryHandler struct {
	CategoryService categoryUpdater
}

// NewUpdateCategoryHandler creates a new UpdateCategoryHandler.
func NewUpdateCategoryHandler(svc categoryUpdater) *UpdateCategoryHandler {
	return &UpdateCategoryHandler{CategoryService: svc}
}

// Register registers the update category endpoint with the Huma API.
func (h *UpdateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-category",
		Method:      http.MethodPatch,
		Path:        "/v1/category/{id}",
		Summary:     "Update category",
		Description: "Renames or retypes a live category.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func parseUpdateCategoryInput(input *UpdateCategoryInput) (uuid.UUID, service.CategoryUpdate, uuid.NullUUID, error) {
	var update service.CategoryUpdate
	id, err := apierr.ParseID("id", input.ID)
	if err != nil {
		return id, update, uuid.NullUUID{}, err
	}
	actor, err := apierr.ParseActor(input.ActorID)
	if err != nil {
		return id, update, actor, err
	}
	if input.Body.Name != nil {
		update.Name = omit.From(*input.Body.Name)
	}
	if input.Body.Type != nil {
		categoryType, err := service.ParseCategoryType(*input.Body.Type)
		if err != nil {
			return id, update, actor, apierr.FromService(err)
		}
		update.Type = omit.From(categoryType)
	}
	return id, update, actor, nil
}

func (h *UpdateCategoryHandler) handle(ctx context.Context, input *UpdateCategoryInput) (*CategoryOutput, error) {
	id, update, actor, err := parseUpdateCategoryInput(input)
	if err != nil {
		return nil, err
	}

	category, err := h.CategoryService.Update(ctx, id, update, actor)
	if err != nil {
		return nil, apierr.FromService(err)
	}
	return &CategoryOutput{Status: http.StatusOK, Body: fromService(category)}, nil
}
