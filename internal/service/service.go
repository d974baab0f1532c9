package service

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/household-ledger/internal/record"
	"github.com/carson-networks/household-ledger/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Category    *CategoryService
	Transaction *TransactionService
	Profile     *ProfileService
	Overview    *OverviewService
}

// NewService creates a new Service with the given storage. now is the audit
// clock; nil means time.Now.
func NewService(store *storage.Storage, logger logrus.FieldLogger, now func() time.Time) *Service {
	stamper := record.NewStamper(now)
	return &Service{
		Category:    NewCategoryService(store, stamper, logger),
		Transaction: NewTransactionService(store, stamper, logger),
		Profile:     NewProfileService(store, logger),
		Overview:    NewOverviewService(store, logger),
	}
}
