package apierr

import (
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/household-ledger/internal/service"
)

func TestFromService_StatusCodes(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{&service.ValidationError{Field: "name", Reason: "is required"}, http.StatusBadRequest},
		{&service.NotFoundError{Table: "categories", ID: uuid.Must(uuid.NewV4())}, http.StatusNotFound},
		{&service.StorageError{Op: "list", Table: "categories", Err: errors.New("connection refused")}, http.StatusInternalServerError},
		{errors.New("unexpected"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		statusErr := FromService(tc.err)
		assert.Equal(t, tc.status, statusErr.GetStatus(), tc.err.Error())
	}
}

func TestFromService_KeepsBackendMessage(t *testing.T) {
	statusErr := FromService(&service.StorageError{Err: errors.New("connection refused")})

	var model *huma.ErrorModel
	require.ErrorAs(t, statusErr, &model)
	assert.Equal(t, "connection refused", model.Detail)
}

func TestParseActor(t *testing.T) {
	actor, err := ParseActor("")
	require.NoError(t, err)
	assert.False(t, actor.Valid)

	id := uuid.Must(uuid.NewV4())
	actor, err = ParseActor(" " + id.String() + " ")
	require.NoError(t, err)
	assert.True(t, actor.Valid)
	assert.Equal(t, id, actor.UUID)

	_, err = ParseActor("someone")
	assert.Error(t, err)
}

func TestParseID(t *testing.T) {
	_, err := ParseID("id", "nope")
	assert.ErrorContains(t, err, "invalid id")
}
