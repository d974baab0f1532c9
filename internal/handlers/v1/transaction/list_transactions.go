package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/household-ledger/internal/handlers/apierr"
	"github.com/carson-networks/household-ledger/internal/logging"
	"github.com/carson-networks/household-ledger/internal/paging"
	"github.com/carson-networks/household-ledger/internal/service"
)

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct {
	Page     int    `query:"page" default:"1" minimum:"1" doc:"One-based page number"`
	PerPage  int    `query:"perPage" default:"10" minimum:"1" maximum:"1000" doc:"Rows per page"`
	Month    int    `query:"month" minimum:"0" maximum:"12" doc:"Calendar month, applied together with year"`
	Year     int    `query:"year" minimum:"0" doc:"Calendar year, applied together with month"`
	Category string `query:"category" doc:"Category UUID, or ALL for every category"`
	Order    string `query:"order" enum:"asc,desc" default:"desc" doc:"transactionDate direction"`
}

// ListTransactionsResponseBody is the response body for listing transactions.
type ListTransactionsResponseBody struct {
	Transactions []Transaction `json:"transactions" doc:"Page of live transactions"`
	TotalCount   int           `json:"totalCount" doc:"Matching transactions across all pages"`
	TotalPages   int           `json:"totalPages" doc:"Number of pages at this page size"`
	Page         int           `json:"page" doc:"This page"`
	PerPage      int           `json:"perPage" doc:"Page size"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	List(ctx context.Context, params service.TransactionListParams) (*paging.Page[service.Transaction], error)
}

// ListTransactionsHandler handles GET /v1/transactions.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/transactions",
		Summary:     "List transactions",
		Description: "Returns a page of live transactions, optionally for one month and one category, newest first unless order=asc.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseListTransactionsInput parses and validates the API input.
func parseListTransactionsInput(input *ListTransactionsInput) (service.TransactionListParams, error) {
	order, err := service.ParseDateOrder(input.Order)
	if err != nil {
		return service.TransactionListParams{}, apierr.FromService(err)
	}
	return service.TransactionListParams{
		Page:     input.Page,
		PerPage:  input.PerPage,
		Month:    input.Month,
		Year:     input.Year,
		Category: input.Category,
		Order:    order,
	}, nil
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)
	params, err := parseListTransactionsInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	page, err := h.TransactionService.List(ctx, params)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierr.FromService(err)
	}

	if logData != nil {
		logData.AddData("transactionCount", len(page.Rows))
	}

	resp := ListTransactionsResponseBody{
		Transactions: make([]Transaction, len(page.Rows)),
		TotalCount:   page.TotalCount,
		TotalPages:   page.TotalPages,
		Page:         page.Page,
		PerPage:      page.PerPage,
	}
	for i := range page.Rows {
		resp.Transactions[i] = fromService(&page.Rows[i])
	}

	return &ListTransactionsOutput{Body: resp}, nil
}
