package status

import (
	"context"
	"errors"
	"net/http"

	"github.com/carson-networks/household-ledger/internal/logging"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	DB Pinger
}

// NewHandler returns a status handler. db may be nil when storage is in memory.
func NewHandler(db Pinger) Handler {
	return Handler{DB: db}
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != "GET" {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	if h.DB != nil {
		stopTimer := logData.AddTiming("pingMs")
		err := h.DB.PingContext(req.Context())
		stopTimer()
		if err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return errors.Join(errors.New("status: database unreachable"), err)
		}
	}

	w.WriteHeader(http.StatusOK)
	return nil
}
