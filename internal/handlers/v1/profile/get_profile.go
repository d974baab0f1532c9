package profile

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/household-ledger/internal/handlers/apierr"
	"github.com/carson-networks/household-ledger/internal/service"
)

// GetProfileInput is the Huma input for fetching one profile.
type GetProfileInput struct {
	ID string `path:"id" doc:"Profile UUID"`
}

// GetProfileOutput is the Huma output for fetching one profile.
type GetProfileOutput struct {
	Body Profile
}

type profileGetter interface {
	Get(ctx context.Context, id uuid.UUID) (*service.Profile, error)
}

// GetProfileHandler handles GET /v1/profile/{id}.
type GetProfileHandler struct {
	ProfileService profileGetter
}

// NewGetProfileHandler creates a new GetProfileHandler.
func NewGetProfileHandler(svc profileGetter) *GetProfileHandler {
	return &GetProfileHandler{ProfileService: svc}
}

// Register registers the get profile endpoint with the Huma API.
func (h *GetProfileHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-profile",
		Method:      http.MethodGet,
		Path:        "/v1/profile/{id}",
		Summary:     "Get profile",
		Tags:        []string{"Profiles"},
	}, h.handle)
}

func (h *GetProfileHandler) handle(ctx context.Context, input *GetProfileInput) (*GetProfileOutput, error) {
	id, err := apierr.ParseID("id", input.ID)
	if err != nil {
		return nil, err
	}

	profile, err := h.ProfileService.Get(ctx, id)
	if err != nil {
		return nil, apierr.FromService(err)
	}
	return &GetProfileOutput{Body: fromService(profile)}, nil
}
