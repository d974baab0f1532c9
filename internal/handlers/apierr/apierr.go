// Package apierr maps service errors and shared request fields onto HTTP.
package apierr

import (
	"errors"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/household-ledger/internal/service"
)

// ActorHeader carries the id of the signed-in member, set by the auth proxy.
const ActorHeader = "X-Actor-ID"

// FromService converts a service error to a Huma status error. The service
// message is passed through as the detail since it is already readable.
func FromService(err error) huma.StatusError {
	switch {
	case errors.Is(err, service.ErrValidation):
		return huma.NewError(http.StatusBadRequest, err.Error(), err)
	case errors.Is(err, service.ErrNotFound):
		return huma.NewError(http.StatusNotFound, err.Error(), err)
	default:
		return huma.NewError(http.StatusInternalServerError, err.Error(), err)
	}
}

// ParseActor reads the actor header value. Empty means anonymous.
func ParseActor(value string) (uuid.NullUUID, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return uuid.NullUUID{}, nil
	}
	id, err := uuid.FromString(value)
	if err != nil {
		return uuid.NullUUID{}, huma.NewError(http.StatusBadRequest, "invalid "+ActorHeader, err)
	}
	return uuid.NullUUID{UUID: id, Valid: true}, nil
}

// ParseID parses a path id, reporting name in the error.
func ParseID(name, value string) (uuid.UUID, error) {
	id, err := uuid.FromString(value)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid "+name, err)
	}
	return id, nil
}
