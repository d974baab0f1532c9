package overview

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/household-ledger/internal/handlers/apierr"
	"github.com/carson-networks/household-ledger/internal/logging"
	"github.com/carson-networks/household-ledger/internal/service"
)

// PayerOverviewBody is the response body for the per-payer totals.
type PayerOverviewBody struct {
	Totals []PayerTotal `json:"totals" doc:"Spend per paying member, largest first"`
}

// PayerOverviewOutput is the Huma output for the per-payer totals.
type PayerOverviewOutput struct {
	Body PayerOverviewBody
}

type payerAggregator interface {
	ByPayer(ctx context.Context, month, year int) ([]service.PayerTotal, error)
}

// PayerOverviewHandler handles GET /v1/overview/payer.
type PayerOverviewHandler struct {
	OverviewService payerAggregator
}

// NewPayerOverviewHandler creates a new PayerOverviewHandler.
func NewPayerOverviewHandler(svc payerAggregator) *PayerOverviewHandler {
	return &PayerOverviewHandler{OverviewService: svc}
}

// Register registers the payer overview endpoint with the Huma API.
func (h *PayerOverviewHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-payer-overview",
		Method:      http.MethodGet,
		Path:        "/v1/overview/payer",
		Summary:     "Spend by payer",
		Description: "Shared household expenses have no payer and are not counted.",
		Tags:        []string{"Overview"},
	}, h.handle)
}

func (h *PayerOverviewHandler) handle(ctx context.Context, input *MonthInput) (*PayerOverviewOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("payerOverviewMs")
	}
	totals, err := h.OverviewService.ByPayer(ctx, input.Month, input.Year)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierr.FromService(err)
	}

	return &PayerOverviewOutput{Body: PayerOverviewBody{Totals: payerTotals(totals)}}, nil
}
