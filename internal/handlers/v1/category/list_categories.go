package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/household-ledger/internal/handlers/apierr"
	"github.com/carson-networks/household-ledger/internal/logging"
	"github.com/carson-networks/household-ledger/internal/paging"
	"github.com/carson-networks/household-ledger/internal/service"
)

// ListCategoriesInput is the Huma input for listing categories.
type ListCategoriesInput struct {
	Page    int `query:"page" default:"1" minimum:"1" doc:"One-based page number"`
	PerPage int `query:"perPage" default:"10" minimum:"1" maximum:"1000" doc:"Rows per page"`
}

// ListCategoriesResponseBody is the response body for listing categories.
type ListCategoriesResponseBody struct {
	Categories []Category `json:"categories" doc:"Page of live categories, oldest first"`
	TotalCount int        `json:"totalCount" doc:"Live categories across all pages"`
	TotalPages int        `json:"totalPages" doc:"Number of pages at this page size"`
	Page       int        `json:"page" doc:"This page"`
	PerPage    int        `json:"perPage" doc:"Page size"`
}

// ListCategoriesOutput is the Huma output for listing categories.
type ListCategoriesOutput struct {
	Body ListCategoriesResponseBody
}

type categoryLister interface {
	List(ctx context.Context, page, perPage int) (*paging.Page[service.Category], error)
}

// ListCategoriesHandler handles GET /v1/categories.
type ListCategoriesHandler struct {
	CategoryService categoryLister
}

// NewListCategoriesHandler creates a new ListCategoriesHandler.
func NewListCategoriesHandler(svc categoryLister) *ListCategoriesHandler {
	return &ListCategoriesHandler{CategoryService: svc}
}

// Register registers the list categories endpoint with the Huma API.
func (h *ListCategoriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/v1/categories",
		Summary:     "List categories",
		Description: "Returns a page of live categories ordered by creation time.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *ListCategoriesHandler) handle(ctx context.Context, input *ListCategoriesInput) (*ListCategoriesOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listCategoriesMs")
	}
	page, err := h.CategoryService.List(ctx, input.Page, input.PerPage)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierr.FromService(err)
	}

	if logData != nil {
		logData.AddData("categoryCount", len(page.Rows))
	}

	resp := ListCategoriesResponseBody{
		Categories: make([]Category, len(page.Rows)),
		TotalCount: page.TotalCount,
		TotalPages: page.TotalPages,
		Page:       page.Page,
		PerPage:    page.PerPage,
	}
	for i := range page.Rows {
		resp.Categories[i] = fromService(&page.Rows[i])
	}
	return &ListCategoriesOutput{Body: resp}, nil
}
