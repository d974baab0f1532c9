package service

import (
	"context"
	"errors"
	"strings"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/household-ledger/internal/paging"
	"github.com/carson-networks/household-ledger/internal/period"
	"github.com/carson-networks/household-ledger/internal/record"
	"github.com/carson-networks/household-ledger/internal/storage"
	"github.com/carson-networks/household-ledger/internal/storage/sqlconfig"
)

// TransactionService handles transaction business logic.
type TransactionService struct {
	storage *storage.Storage
	stamper *record.Stamper
	logger  logrus.FieldLogger
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage, stamper *record.Stamper, logger logrus.FieldLogger) *TransactionService {
	return &TransactionService{storage: store, stamper: stamper, logger: logger}
}

// List returns one page of live transactions, optionally narrowed to a month
// and a category, ordered by transaction date in params.Order.
func (s *TransactionService) List(ctx context.Context, params TransactionListParams) (*paging.Page[Transaction], error) {
	w, err := pageWindow(params.Page, params.PerPage)
	if err != nil {
		return nil, err
	}
	months, err := monthRange(params.Month, params.Year)
	if err != nil {
		return nil, err
	}
	categoryID, err := parseCategoryFilter(params.Category)
	if err != nil {
		return nil, err
	}

	q := sqlconfig.NewQuery().FilterNull(sqlconfig.ColumnDeletedAt)
	if months != nil {
		q.FilterRange(sqlconfig.ColumnTransactionDate, months.StartDate(), months.EndDate())
	}
	if categoryID.Valid {
		q.FilterEquals(sqlconfig.ColumnCategoryID, categoryID.UUID)
	}
	desc := params.Order == NewestFirst
	q.OrderBy(sqlconfig.ColumnTransactionDate, desc).
		OrderBy(sqlconfig.ColumnID, desc).
		Range(w.From, w.To)

	rows, total, err := s.storage.Transactions.Select(ctx, q)
	if err != nil {
		s.logger.WithError(err).WithField("table", sqlconfig.TableTransactions).Error("TransactionService.List.storage")
		return nil, storageFailure("list", sqlconfig.TableTransactions, err)
	}

	return paging.NewPage(mapRows(rows, transactionFromRow), total, params.Page, params.PerPage), nil
}

// Get returns the transaction with id, including a soft-deleted one.
func (s *TransactionService) Get(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	row, err := findByID(ctx, s.storage.Transactions, sqlconfig.TableTransactions, id)
	if errors.Is(err, ErrStorage) {
		s.logger.WithError(err).WithFields(logrus.Fields{"table": sqlconfig.TableTransactions, "id": id}).Error("TransactionService.Get.storage")
	}
	if err != nil {
		return nil, err
	}
	tx := transactionFromRow(row)
	return &tx, nil
}

// Create stores input as given. Free text is upper-cased; amounts, dates and
// ids pass through untouched.
func (s *TransactionService) Create(ctx context.Context, input TransactionInput, actor uuid.NullUUID) (*Transaction, error) {
	payload := record.Payload{
		sqlconfig.ColumnCategoryID:      nullableID(input.CategoryID),
		sqlconfig.ColumnAmount:          input.Amount,
		sqlconfig.ColumnTransactionDate: input.TransactionDate.Format(period.DateLayout),
		sqlconfig.ColumnDescription:     nullableString(input.Description),
		sqlconfig.ColumnPaidBy:          input.PaidBy.columnValue(),
		sqlconfig.ColumnIsReimbursed:    input.IsReimbursed,
	}
	payload = s.stamper.Stamp(record.Normalize(payload), record.OpCreate, actor)

	row, err := s.storage.Transactions.Insert(ctx, sqlconfig.Values(payload))
	if err != nil {
		s.logger.WithError(err).WithField("table", sqlconfig.TableTransactions).Error("TransactionService.Create.storage")
		return nil, storageFailure("create", sqlconfig.TableTransactions, err)
	}

	s.logger.WithFields(logrus.Fields{"table": sqlconfig.TableTransactions, "id": row.ID}).Info("TransactionService.Create.stored")
	tx := transactionFromRow(row)
	return &tx, nil
}

// Update changes the set fields of a live transaction.
func (s *TransactionService) Update(ctx context.Context, id uuid.UUID, update TransactionUpdate, actor uuid.NullUUID) (*Transaction, error) {
	payload := record.Payload{}
	if !update.CategoryID.IsUnset() {
		payload[sqlconfig.ColumnCategoryID] = nullableID(uuid.NullUUID{
			UUID:  update.CategoryID.GetOrZero(),
			Valid: update.CategoryID.IsValue(),
		})
	}
	if amount, ok := update.Amount.Get(); ok {
		payload[sqlconfig.ColumnAmount] = amount
	}
	if date, ok := update.TransactionDate.Get(); ok {
		payload[sqlconfig.ColumnTransactionDate] = date.Format(period.DateLayout)
	}
	if !update.Description.IsUnset() {
		payload[sqlconfig.ColumnDescription] = nullableString(update.Description.MustPtr())
	}
	if payer, ok := update.PaidBy.Get(); ok {
		payload[sqlconfig.ColumnPaidBy] = payer.columnValue()
	}
	if reimbursed, ok := update.IsReimbursed.Get(); ok {
		payload[sqlconfig.ColumnIsReimbursed] = reimbursed
	}
	payload = s.stamper.Stamp(record.Normalize(payload), record.OpUpdate, actor)

	row, err := updateLive(ctx, s.storage.Transactions, sqlconfig.TableTransactions, "update", id, payload)
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{"table": sqlconfig.TableTransactions, "id": id}).Warn("TransactionService.Update.failed")
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{"table": sqlconfig.TableTransactions, "id": id}).Info("TransactionService.Update.stored")
	tx := transactionFromRow(row)
	return &tx, nil
}

// SoftDelete marks a live transaction deleted.
func (s *TransactionService) SoftDelete(ctx context.Context, id uuid.UUID, actor uuid.NullUUID) error {
	payload := s.stamper.Stamp(record.Payload{}, record.OpDelete, actor)

	if _, err := updateLive(ctx, s.storage.Transactions, sqlconfig.TableTransactions, "delete", id, payload); err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{"table": sqlconfig.TableTransactions, "id": id}).Warn("TransactionService.SoftDelete.failed")
		return err
	}

	s.logger.WithFields(logrus.Fields{"table": sqlconfig.TableTransactions, "id": id}).Info("TransactionService.SoftDelete.stored")
	return nil
}

// parseCategoryFilter treats "" and ALL (any case) as no filter.
func parseCategoryFilter(category string) (uuid.NullUUID, error) {
	category = strings.TrimSpace(category)
	if category == "" || strings.EqualFold(category, AllCategories) {
		return uuid.NullUUID{}, nil
	}
	id, err := uuid.FromString(category)
	if err != nil {
		return uuid.NullUUID{}, invalid("category", "must be a category id or ALL")
	}
	return uuid.NullUUID{UUID: id, Valid: true}, nil
}

func nullableID(id uuid.NullUUID) any {
	if !id.Valid {
		return nil
	}
	return id.UUID
}

func nullableString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
