package service

import (
	"context"
	"sort"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/household-ledger/internal/logging"
	"github.com/carson-networks/household-ledger/internal/storage"
	"github.com/carson-networks/household-ledger/internal/storage/sqlconfig"
)

// OverviewService computes per-month spending breakdowns. Grouping happens in
// memory over the month's rows, which suits household-sized data.
type OverviewService struct {
	storage *storage.Storage
	logger  logrus.FieldLogger
}

// NewOverviewService creates a new OverviewService.
func NewOverviewService(store *storage.Storage, logger logrus.FieldLogger) *OverviewService {
	return &OverviewService{storage: store, logger: logger}
}

// bucket is one group's running total, kept in first-seen order.
type bucket struct {
	id    uuid.UUID
	total decimal.Decimal
}

// ByCategory sums the month's live transactions per category, largest first.
// Uncategorised transactions are left out.
func (s *OverviewService) ByCategory(ctx context.Context, month, year int) ([]CategoryTotal, error) {
	rows, err := s.monthTransactions(ctx, month, year)
	if err != nil {
		return nil, err
	}

	buckets := groupTotals(rows, func(row sqlconfig.TransactionRow) *uuid.UUID { return row.CategoryID })
	names, err := lookupNames(ctx, s.logger, s.storage.Categories, sqlconfig.TableCategories, buckets,
		func(row sqlconfig.CategoryRow) (uuid.UUID, string) { return row.ID, row.Name })
	if err != nil {
		return nil, err
	}

	out := make([]CategoryTotal, len(buckets))
	for i, b := range buckets {
		out[i] = CategoryTotal{CategoryID: b.id, CategoryName: labelFor(names, b.id), Total: b.total}
	}
	return out, nil
}

// ByPayer sums the month's live transactions per paying member, largest
// first. Shared transactions have no payer and are left out.
func (s *OverviewService) ByPayer(ctx context.Context, month, year int) ([]PayerTotal, error) {
	rows, err := s.monthTransactions(ctx, month, year)
	if err != nil {
		return nil, err
	}

	buckets := groupTotals(rows, func(row sqlconfig.TransactionRow) *uuid.UUID { return row.PaidBy })
	names, err := lookupNames(ctx, s.logger, s.storage.Profiles, sqlconfig.TableProfiles, buckets,
		func(row sqlconfig.ProfileRow) (uuid.UUID, string) { return row.ID, row.FullName })
	if err != nil {
		return nil, err
	}

	out := make([]PayerTotal, len(buckets))
	for i, b := range buckets {
		out[i] = PayerTotal{PayerID: b.id, PayerName: labelFor(names, b.id), Total: b.total}
	}
	return out, nil
}

// Month computes both breakdowns concurrently. Either failing fails the whole.
func (s *OverviewService) Month(ctx context.Context, month, year int) (*MonthOverview, error) {
	overview := &MonthOverview{Month: month, Year: year}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		totals, err := s.ByCategory(gctx, month, year)
		overview.ByCategory = totals
		return err
	})
	g.Go(func() error {
		totals, err := s.ByPayer(gctx, month, year)
		overview.ByPayer = totals
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return overview, nil
}

func (s *OverviewService) monthTransactions(ctx context.Context, month, year int) ([]sqlconfig.TransactionRow, error) {
	if month == 0 || year == 0 {
		return nil, invalid("month", "month and year are required")
	}
	r, err := monthRange(month, year)
	if err != nil {
		return nil, err
	}

	q := sqlconfig.NewQuery().
		FilterNull(sqlconfig.ColumnDeletedAt).
		FilterRange(sqlconfig.ColumnTransactionDate, r.StartDate(), r.EndDate()).
		OrderBy(sqlconfig.ColumnTransactionDate, false).
		OrderBy(sqlconfig.ColumnCreatedAt, false)

	rows, _, err := s.storage.Transactions.Select(ctx, q)
	if err != nil {
		s.logger.WithError(err).WithField("table", sqlconfig.TableTransactions).Error("OverviewService.monthTransactions.storage")
		return nil, storageFailure("overview", sqlconfig.TableTransactions, err)
	}
	return rows, nil
}

// groupTotals sums amounts per non-nil key and sorts the groups by total,
// descending. Equal totals keep first-seen order.
func groupTotals(rows []sqlconfig.TransactionRow, key func(sqlconfig.TransactionRow) *uuid.UUID) []bucket {
	var buckets []bucket
	index := make(map[uuid.UUID]int)
	for _, row := range rows {
		id := key(row)
		if id == nil {
			continue
		}
		i, ok := index[*id]
		if !ok {
			i = len(buckets)
			index[*id] = i
			buckets = append(buckets, bucket{id: *id})
		}
		buckets[i].total = buckets[i].total.Add(row.Amount)
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].total.GreaterThan(buckets[j].total)
	})
	return buckets
}

// lookupNames resolves bucket ids to display names. Soft-deleted rows still
// resolve. Time spent is summed into the request's nameLookupMs.
func lookupNames[T any](
	ctx context.Context,
	logger logrus.FieldLogger,
	table sqlconfig.ITable[T],
	name string,
	buckets []bucket,
	label func(T) (uuid.UUID, string),
) (map[uuid.UUID]string, error) {
	names := make(map[uuid.UUID]string, len(buckets))
	if len(buckets) == 0 {
		return names, nil
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		defer logData.AddToExistingTiming("nameLookupMs")()
	}

	ids := make([]any, len(buckets))
	for i, b := range buckets {
		ids[i] = b.id
	}
	rows, _, err := table.Select(ctx, sqlconfig.NewQuery().FilterIn(sqlconfig.ColumnID, ids...))
	if err != nil {
		logger.WithError(err).WithField("table", name).Error("OverviewService.lookupNames.storage")
		return nil, storageFailure("overview", name, err)
	}
	for _, row := range rows {
		id, n := label(row)
		names[id] = n
	}
	return names, nil
}

func labelFor(names map[uuid.UUID]string, id uuid.UUID) string {
	if n, ok := names[id]; ok {
		return n
	}
	return UnknownLabel
}
