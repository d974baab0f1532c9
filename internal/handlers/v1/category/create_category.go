package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/household-ledger/internal/handlers/apierr"
	"github.com/carson-networks/household-ledger/internal/logging"
	"github.com/carson-networks/household-ledger/internal/service"
)

// CreateCategoryBody is the request body for creating a category.
type CreateCategoryBody struct {
	Name string `json:"name" minLength:"1" maxLength:"100" doc:"Display name, stored upper-cased"`
	Type string `json:"type,omitempty" doc:"EXPENSE (default) or INCOME"`
}

// CreateCategoryInput is the Huma input for creating a category.
type CreateCategoryInput struct {
	ActorID string `header:"X-Actor-ID" doc:"UUID of the acting household member"`
	Body    CreateCategoryBody
}

type categoryCreator interface {
	Create(ctx context.Context, input service.CategoryInput, actor uuid.NullUUID) (*service.Category, error)
}

// CreateCategoryHandler handles POST /v1/category.
type CreateCategoryHandler struct {
	CategoryService categoryCreator
}

// NewCreateCategoryHandler creates a new CreateCategoryHandler.
func NewCreateCategoryHandler(svc categoryCreator) *CreateCategoryHandler {
	return &CreateCategoryHandler{CategoryService: svc}
}

// Register registers the create category endpoint with the Huma API.
func (h *CreateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-category",
		Method:        http.MethodPost,
		Path:          "/v1/category",
		Summary:       "Create category",
		Description:   "Creates a new category.",
		Tags:          []string{"Categories"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

// parseCreateCategoryInput parses and validates the API input.
func parseCreateCategoryInput(input *CreateCategoryInput) (service.CategoryInput, uuid.NullUUID, error) {
	actor, err := apierr.ParseActor(input.ActorID)
	if err != nil {
		return service.CategoryInput{}, actor, err
	}
	categoryType, err := service.ParseCategoryType(input.Body.Type)
	if err != nil {
		return service.CategoryInput{}, actor, apierr.FromService(err)
	}
	return service.CategoryInput{Name: input.Body.Name, Type: categoryType}, actor, nil
}

func (h *CreateCategoryHandler) handle(ctx context.Context, input *CreateCategoryInput) (*CategoryOutput, error) {
	logData := logging.GetLogData(ctx)
	create, actor, err := parseCreateCategoryInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createCategoryMs")
	}
	category, err := h.CategoryService.Create(ctx, create, actor)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierr.FromService(err)
	}

	if logData != nil {
		logData.AddData("categoryID", category.ID.String())
	}
	return &CategoryOutput{Status: http.StatusCreated, Body: fromService(category)}, nil
}
