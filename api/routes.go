package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/household-ledger/internal/handlers/v1/category"
	"github.com/carson-networks/household-ledger/internal/handlers/v1/overview"
	"github.com/carson-networks/household-ledger/internal/handlers/v1/profile"
	"github.com/carson-networks/household-ledger/internal/handlers/v1/status"
	"github.com/carson-networks/household-ledger/internal/handlers/v1/transaction"
	"github.com/carson-networks/household-ledger/internal/logging"
	"github.com/carson-networks/household-ledger/internal/service"
	"github.com/carson-networks/household-ledger/internal/storage"
)

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
	Storage *storage.Storage
}

type registrar interface {
	Register(api huma.API)
}

// Handler builds the routed, logged HTTP handler without starting a server.
func (r *Rest) Handler() http.Handler {
	mux := http.NewServeMux()
	api := humago.New(mux, huma.DefaultConfig("Household Ledger API", "1.0.0"))

	svc := r.Service
	handlers := []registrar{
		category.NewListCategoriesHandler(svc.Category),
		category.NewGetCategoryHandler(svc.Category),
		category.NewCreateCategoryHandler(svc.Category),
		category.NewUpdateCategoryHandler(svc.Category),
		category.NewDeleteCategoryHandler(svc.Category),
		transaction.NewListTransactionsHandler(svc.Transaction),
		transaction.NewGetTransactionHandler(svc.Transaction),
		transaction.NewCreateTransactionHandler(svc.Transaction),
		transaction.NewUpdateTransactionHandler(svc.Transaction),
		transaction.NewDeleteTransactionHandler(svc.Transaction),
		profile.NewListProfilesHandler(svc.Profile),
		profile.NewGetProfileHandler(svc.Profile),
		overview.NewMonthOverviewHandler(svc.Overview),
		overview.NewCategoryOverviewHandler(svc.Overview),
		overview.NewPayerOverviewHandler(svc.Overview),
	}
	for _, h := range handlers {
		h.Register(api)
	}

	var db status.Pinger
	if r.Storage != nil && r.Storage.DB != nil {
		db = r.Storage.DB
	}
	statusHandler := status.NewHandler(db)

	root := http.NewServeMux()
	root.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))
	root.Handle("/", logging.Middleware("Api", r.Logger, mux))
	return root
}

func (r *Rest) Serve() {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
