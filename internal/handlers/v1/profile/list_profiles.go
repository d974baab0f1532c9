package profile

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/household-ledger/internal/handlers/apierr"
	"github.com/carson-networks/household-ledger/internal/logging"
	"github.com/carson-networks/household-ledger/internal/paging"
	"github.com/carson-networks/household-ledger/internal/service"
)

// ListProfilesInput is the Huma input for listing profiles.
type ListProfilesInput struct {
	Page    int `query:"page" default:"1" minimum:"1" doc:"One-based page number"`
	PerPage int `query:"perPage" default:"1000" minimum:"1" maximum:"1000" doc:"Rows per page"`
}

// ListProfilesResponseBody is the response body for listing profiles.
type ListProfilesResponseBody struct {
	Profiles   []Profile `json:"profiles" doc:"Page of profiles, oldest first"`
	TotalCount int       `json:"totalCount" doc:"Profiles across all pages"`
	TotalPages int       `json:"totalPages" doc:"Number of pages at this page size"`
}

// ListProfilesOutput is the Huma output for listing profiles.
type ListProfilesOutput struct {
	Body ListProfilesResponseBody
}

type profileLister interface {
	List(ctx context.Context, page, perPage int) (*paging.Page[service.Profile], error)
}

// ListProfilesHandler handles GET /v1/profiles.
type ListProfilesHandler struct {
	ProfileService profileLister
}

// NewListProfilesHandler creates a new ListProfilesHandler.
func NewListProfilesHandler(svc profileLister) *ListProfilesHandler {
	return &ListProfilesHandler{ProfileService: svc}
}

// Register registers the list profiles endpoint with the Huma API.
func (h *ListProfilesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-profiles",
		Method:      http.MethodGet,
		Path:        "/v1/profiles",
		Summary:     "List profiles",
		Description: "Returns household members, oldest first. Used to fill payer pickers.",
		Tags:        []string{"Profiles"},
	}, h.handle)
}

func (h *ListProfilesHandler) handle(ctx context.Context, input *ListProfilesInput) (*ListProfilesOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listProfilesMs")
	}
	page, err := h.ProfileService.List(ctx, input.Page, input.PerPage)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierr.FromService(err)
	}

	resp := ListProfilesResponseBody{
		Profiles:   make([]Profile, len(page.Rows)),
		TotalCount: page.TotalCount,
		TotalPages: page.TotalPages,
	}
	for i := range page.Rows {
		resp.Profiles[i] = fromService(&page.Rows[i])
	}
	return &ListProfilesOutput{Body: resp}, nil
}
