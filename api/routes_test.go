package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/household-ledger/internal/service"
	"github.com/carson-networks/household-ledger/internal/storage"
)

func newTestRest(t *testing.T) (*Rest, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	store := storage.NewMemoryStorage()
	now := func() time.Time { return time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC) }
	return &Rest{
		Logger:  logger,
		Port:    "0",
		Service: service.NewService(store, logger, now),
		Storage: store,
	}, hook
}

func TestHandler_Status(t *testing.T) {
	rest, _ := newTestRest(t)
	w := httptest.NewRecorder()

	rest.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/status", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_StatusLogsOneSummaryLine(t *testing.T) {
	rest, hook := newTestRest(t)

	rest.Handler().ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/status", nil))

	var completed []string
	for _, entry := range hook.AllEntries() {
		if strings.HasSuffix(entry.Message, ".Complete") || strings.HasSuffix(entry.Message, ".Error") {
			completed = append(completed, entry.Message)
		}
	}
	assert.Equal(t, []string{"Handler.Status.Complete"}, completed)
}

func TestHandler_CreateThenListCategories(t *testing.T) {
	rest, hook := newTestRest(t)
	handler := rest.Handler()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/category", strings.NewReader(`{"name":"food"}`))
	req.Header.Set("Content-Type", "application/json")
	handler.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/categories", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"FOOD"`)
	assert.Contains(t, w.Body.String(), `"totalCount":1`)

	last := hook.LastEntry()
	require.NotNil(t, last)
	assert.Equal(t, "Handler.Api.Complete", last.Message)
	assert.Equal(t, http.StatusOK, last.Data["status"])
	assert.Equal(t, "/v1/categories", last.Data["path"])
}

func TestHandler_OverviewRequiresMonth(t *testing.T) {
	rest, _ := newTestRest(t)
	w := httptest.NewRecorder()

	rest.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/overview/category?year=2024", nil))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestHandler_OpenAPIDocument(t *testing.T) {
	rest, _ := newTestRest(t)
	w := httptest.NewRecorder()

	rest.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/v1/transactions")
	assert.Contains(t, w.Body.String(), "/v1/overview/payer")
}
