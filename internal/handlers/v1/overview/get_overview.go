package overview

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/household-ledger/internal/handlers/apierr"
	"github.com/carson-networks/household-ledger/internal/logging"
	"github.com/carson-networks/household-ledger/internal/service"
)

// MonthOverviewBody is the response body for the combined month overview.
type MonthOverviewBody struct {
	Month      int             `json:"month"`
	Year       int             `json:"year"`
	ByCategory []CategoryTotal `json:"byCategory" doc:"Spend per category, largest first"`
	ByPayer    []PayerTotal    `json:"byPayer" doc:"Spend per paying member, largest first. Shared expenses are excluded."`
}

// MonthOverviewOutput is the Huma output for the combined month overview.
type MonthOverviewOutput struct {
	Body MonthOverviewBody
}

type monthOverviewer interface {
	Month(ctx context.Context, month, year int) (*service.MonthOverview, error)
}

// MonthOverviewHandler handles GET /v1/overview.
type MonthOverviewHandler struct {
	OverviewService monthOverviewer
}

// NewMonthOverviewHandler creates a new MonthOverviewHandler.
func NewMonthOverviewHandler(svc monthOverviewer) *MonthOverviewHandler {
	return &MonthOverviewHandler{OverviewService: svc}
}

// Register registers the month overview endpoint with the Huma API.
func (h *MonthOverviewHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-month-overview",
		Method:      http.MethodGet,
		Path:        "/v1/overview",
		Summary:     "Month overview",
		Description: "Returns the month's spend broken down by category and by payer.",
		Tags:        []string{"Overview"},
	}, h.handle)
}

func (h *MonthOverviewHandler) handle(ctx context.Context, input *MonthInput) (*MonthOverviewOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("monthOverviewMs")
	}
	overview, err := h.OverviewService.Month(ctx, input.Month, input.Year)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierr.FromService(err)
	}

	return &MonthOverviewOutput{Body: MonthOverviewBody{
		Month:      overview.Month,
		Year:       overview.Year,
		ByCategory: categoryTotals(overview.ByCategory),
		ByPayer:    payerTotals(overview.ByPayer),
	}}, nil
}
