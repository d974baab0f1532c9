package overview

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/household-ledger/internal/handlers/apierr"
	"github.com/carson-networks/household-ledger/internal/logging"
	"github.com/carson-networks/household-ledger/internal/service"
)

// CategoryOverviewBody is the response body for the per-category totals.
type CategoryOverviewBody struct {
	Totals []CategoryTotal `json:"totals" doc:"Spend per category, largest first"`
}

// CategoryOverviewOutput is the Huma output for the per-category totals.
type CategoryOverviewOutput struct {
	Body CategoryOverviewBody
}

type categoryAggregator interface {
	ByCategory(ctx context.Context, month, year int) ([]service.CategoryTotal, error)
}

// CategoryOverviewHandler handles GET /v1/overview/category.
type CategoryOverviewHandler struct {
	OverviewService categoryAggregator
}

// NewCategoryOverviewHandler creates a new CategoryOverviewHandler.
func NewCategoryOverviewHandler(svc categoryAggregator) *CategoryOverviewHandler {
	return &CategoryOverviewHandler{OverviewService: svc}
}

// Register registers the category overview endpoint with the Huma API.
func (h *CategoryOverviewHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-category-overview",
		Method:      http.MethodGet,
		Path:        "/v1/overview/category",
		Summary:     "Spend by category",
		Tags:        []string{"Overview"},
	}, h.handle)
}

func (h *CategoryOverviewHandler) handle(ctx context.Context, input *MonthInput) (*CategoryOverviewOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("categoryOverviewMs")
	}
	totals, err := h.OverviewService.ByCategory(ctx, input.Month, input.Year)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierr.FromService(err)
	}

	return &CategoryOverviewOutput{Body: CategoryOverviewBody{Totals: categoryTotals(totals)}}, nil
}
