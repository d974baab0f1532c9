package storage

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/household-ledger/internal/config"
	"github.com/carson-networks/household-ledger/internal/storage/memory"
	"github.com/carson-networks/household-ledger/internal/storage/sqlconfig"
)

// Storage bundles one table per entity. DB is nil for the memory backend.
type Storage struct {
	DB           *sql.DB
	Categories   sqlconfig.ITable[sqlconfig.CategoryRow]
	Profiles     sqlconfig.ITable[sqlconfig.ProfileRow]
	Transactions sqlconfig.ITable[sqlconfig.TransactionRow]
}

// NewStorage opens the backend selected by env.StorageBackend.
func NewStorage(env *config.Config) (*Storage, error) {
	switch env.StorageBackend {
	case config.BackendMemory:
		return NewMemoryStorage(), nil
	case config.BackendPostgres:
		db, err := sql.Open("postgres", env.PostgresURL())
		if err != nil {
			return nil, fmt.Errorf("sql.Open: %w", err)
		}
		return NewSQLStorage(db), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", env.StorageBackend)
	}
}

// NewSQLStorage wraps an open Postgres handle.
func NewSQLStorage(db *sql.DB) *Storage {
	exec := bob.NewDB(db)
	return &Storage{
		DB:           db,
		Categories:   sqlconfig.NewSQLTable[sqlconfig.CategoryRow](exec, sqlconfig.TableCategories),
		Profiles:     sqlconfig.NewSQLTable[sqlconfig.ProfileRow](exec, sqlconfig.TableProfiles),
		Transactions: sqlconfig.NewSQLTable[sqlconfig.TransactionRow](exec, sqlconfig.TableTransactions),
	}
}

// NewMemoryStorage returns empty in-process tables.
func NewMemoryStorage() *Storage {
	return &Storage{
		Categories:   memory.NewTable[sqlconfig.CategoryRow](sqlconfig.TableCategories),
		Profiles:     memory.NewTable[sqlconfig.ProfileRow](sqlconfig.TableProfiles),
		Transactions: memory.NewTable[sqlconfig.TransactionRow](sqlconfig.TableTransactions),
	}
}

// Close releases the database handle, if any.
func (s *Storage) Close() error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
