package service

import (
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/carson-networks/household-ledger/internal/record"
	"github.com/carson-networks/household-ledger/internal/storage"
	"github.com/carson-networks/household-ledger/internal/storage/sqlconfig"
)

var fixedNow = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

type mockTables struct {
	categories   *sqlconfig.MockITable[sqlconfig.CategoryRow]
	profiles     *sqlconfig.MockITable[sqlconfig.ProfileRow]
	transactions *sqlconfig.MockITable[sqlconfig.TransactionRow]
}

func newMockStorage(t *testing.T) (*storage.Storage, *mockTables) {
	t.Helper()
	tables := &mockTables{
		categories:   sqlconfig.NewMockITable[sqlconfig.CategoryRow](t),
		profiles:     sqlconfig.NewMockITable[sqlconfig.ProfileRow](t),
		transactions: sqlconfig.NewMockITable[sqlconfig.TransactionRow](t),
	}
	store := &storage.Storage{
		Categories:   tables.categories,
		Profiles:     tables.profiles,
		Transactions: tables.transactions,
	}
	return store, tables
}

func newTestLogger() (*logrus.Logger, *test.Hook) {
	return test.NewNullLogger()
}

func newTestStamper() *record.Stamper {
	return record.NewStamper(fixedClock)
}

func newActor() uuid.NullUUID {
	return uuid.NullUUID{UUID: uuid.Must(uuid.NewV4()), Valid: true}
}
