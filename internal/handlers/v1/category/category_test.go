package category

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/household-ledger/internal/paging"
	"github.com/carson-networks/household-ledger/internal/service"
)

type mockCategoryService struct {
	mock.Mock
}

func (m *mockCategoryService) List(ctx context.Context, page, perPage int) (*paging.Page[service.Category], error) {
	args := m.Called(ctx, page, perPage)
	p, _ := args.Get(0).(*paging.Page[service.Category])
	return p, args.Error(1)
}

func (m *mockCategoryService) Get(ctx context.Context, id uuid.UUID) (*service.Category, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*service.Category)
	return c, args.Error(1)
}

func (m *mockCategoryService) Create(ctx context.Context, input service.CategoryInput, actor uuid.NullUUID) (*service.Category, error) {
	args := m.Called(ctx, input, actor)
	c, _ := args.Get(0).(*service.Category)
	return c, args.Error(1)
}

func (m *mockCategoryService) Update(ctx context.Context, id uuid.UUID, update service.CategoryUpdate, actor uuid.NullUUID) (*service.Category, error) {
	args := m.Called(ctx, id, update, actor)
	c, _ := args.Get(0).(*service.Category)
	return c, args.Error(1)
}

func (m *mockCategoryService) SoftDelete(ctx context.Context, id uuid.UUID, actor uuid.NullUUID) error {
	args := m.Called(ctx, id, actor)
	return args.Error(0)
}

func newTestAPI(t *testing.T, svc *mockCategoryService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewListCategoriesHandler(svc).Register(api)
	NewGetCategoryHandler(svc).Register(api)
	NewCreateCategoryHandler(svc).Register(api)
	NewUpdateCategoryHandler(svc).Register(api)
	NewDeleteCategoryHandler(svc).Register(api)
	return api
}

var created = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

func food() *service.Category {
	return &service.Category{
		ID:        uuid.Must(uuid.NewV4()),
		Name:      "FOOD",
		Type:      service.CategoryTypeExpense,
		CreatedAt: created,
		UpdatedAt: created,
	}
}

// -- parse unit tests --

func TestParseCreateCategoryInput_DefaultsType(t *testing.T) {
	input := &CreateCategoryInput{Body: CreateCategoryBody{Name: "food"}}

	create, actor, err := parseCreateCategoryInput(input)

	require.NoError(t, err)
	assert.False(t, actor.Valid)
	assert.Equal(t, service.CategoryInput{Name: "food", Type: service.CategoryTypeExpense}, create)
}

func TestParseUpdateCategoryInput_OnlyPresentFields(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	income := "income"

	gotID, update, _, err := parseUpdateCategoryInput(&UpdateCategoryInput{ID: id.String(), Body: UpdateCategoryBody{Type: &income}})

	require.NoError(t, err)
	assert.Equal(t, id, gotID)
	assert.True(t, update.Name.IsUnset())
	assert.Equal(t, service.CategoryTypeIncome, update.Type.GetOrZero())
}

// -- HTTP tests --

func TestHTTP_ListCategories_Defaults(t *testing.T) {
	svc := new(mockCategoryService)
	c := food()
	svc.On("List", mock.Anything, 1, 10).
		Return(paging.NewPage([]service.Category{*c}, 1, 1, 10), nil)

	resp := newTestAPI(t, svc).Get("/v1/categories")

	require.Equal(t, http.StatusOK, resp.Code)
	var body ListCategoriesResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 1, body.TotalPages)
	require.Len(t, body.Categories, 1)
	assert.Equal(t, c.ID.String(), body.Categories[0].ID)
	assert.Equal(t, "EXPENSE", body.Categories[0].Type)
	assert.Equal(t, "2024-01-02T03:04:05Z", body.Categories[0].CreatedAt)
	svc.AssertExpectations(t)
}

func TestHTTP_ListCategories_PerPageOutOfRange(t *testing.T) {
	svc := new(mockCategoryService)

	resp := newTestAPI(t, svc).Get("/v1/categories?perPage=0")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	svc.AssertNotCalled(t, "List")
}

func TestHTTP_GetCategory_NotFound(t *testing.T) {
	svc := new(mockCategoryService)
	id := uuid.Must(uuid.NewV4())
	svc.On("Get", mock.Anything, id).Return(nil, &service.NotFoundError{Table: "categories", ID: id})

	resp := newTestAPI(t, svc).Get("/v1/category/" + id.String())

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_GetCategory_BadID(t *testing.T) {
	svc := new(mockCategoryService)

	resp := newTestAPI(t, svc).Get("/v1/category/abc")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	svc.AssertNotCalled(t, "Get")
}

func TestHTTP_CreateCategory_PassesActor(t *testing.T) {
	svc := new(mockCategoryService)
	actor := uuid.Must(uuid.NewV4())
	c := food()
	svc.On("Create", mock.Anything,
		service.CategoryInput{Name: "food", Type: service.CategoryTypeExpense},
		uuid.NullUUID{UUID: actor, Valid: true},
	).Return(c, nil)

	resp := newTestAPI(t, svc).Post("/v1/category", "X-Actor-ID: "+actor.String(), CreateCategoryBody{Name: "food"})

	require.Equal(t, http.StatusCreated, resp.Code)
	var body Category
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "FOOD", body.Name)
	svc.AssertExpectations(t)
}

func TestHTTP_CreateCategory_BadType(t *testing.T) {
	svc := new(mockCategoryService)

	resp := newTestAPI(t, svc).Post("/v1/category", CreateCategoryBody{Name: "food", Type: "transfer"})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	svc.AssertNotCalled(t, "Create")
}

func TestHTTP_CreateCategory_BadActor(t *testing.T) {
	svc := new(mockCategoryService)

	resp := newTestAPI(t, svc).Post("/v1/category", "X-Actor-ID: somebody", CreateCategoryBody{Name: "food"})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	svc.AssertNotCalled(t, "Create")
}

func TestHTTP_CreateCategory_ValidationFromService(t *testing.T) {
	svc := new(mockCategoryService)
	svc.On("Create", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, &service.ValidationError{Field: "name", Reason: "is required"})

	resp := newTestAPI(t, svc).Post("/v1/category", CreateCategoryBody{Name: " "})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "name: is required")
}

func TestHTTP_UpdateCategory(t *testing.T) {
	svc := new(mockCategoryService)
	c := food()
	svc.On("Update", mock.Anything, c.ID, mock.MatchedBy(func(u service.CategoryUpdate) bool {
		return u.Name.GetOrZero() == "groceries" && u.Type.IsUnset()
	}), uuid.NullUUID{}).Return(c, nil)

	name := "groceries"
	resp := newTestAPI(t, svc).Patch("/v1/category/"+c.ID.String(), UpdateCategoryBody{Name: &name})

	assert.Equal(t, http.StatusOK, resp.Code)
	svc.AssertExpectations(t)
}

func TestHTTP_DeleteCategory(t *testing.T) {
	svc := new(mockCategoryService)
	id := uuid.Must(uuid.NewV4())
	svc.On("SoftDelete", mock.Anything, id, uuid.NullUUID{}).Return(nil)

	resp := newTestAPI(t, svc).Delete("/v1/category/" + id.String())

	assert.Equal(t, http.StatusNoContent, resp.Code)
	svc.AssertExpectations(t)
}

func TestHTTP_DeleteCategory_AlreadyDeleted(t *testing.T) {
	svc := new(mockCategoryService)
	id := uuid.Must(uuid.NewV4())
	svc.On("SoftDelete", mock.Anything, id, uuid.NullUUID{}).Return(&service.NotFoundError{Table: "categories", ID: id})

	resp := newTestAPI(t, svc).Delete("/v1/category/" + id.String())

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
