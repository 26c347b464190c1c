package storage

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/finance-server/internal/config"
	"github.com/carson-networks/finance-server/internal/storage/account"
	"github.com/carson-networks/finance-server/internal/storage/budget"
	"github.com/carson-networks/finance-server/internal/storage/category"
	"github.com/carson-networks/finance-server/internal/storage/transaction"
)

// Storage bundles autocommit table access for each entity plus the ability to
// open a Writer spanning one database transaction.
type Storage struct {
	DB           *sql.DB
	Accounts     account.Store
	Transactions transaction.Store
	Categories   category.Store
	Budgets      budget.Store
}

func NewStorage(env *config.Config) *Storage {
	db, err := sql.Open("postgres", env.ConnectionString())
	if err != nil {
		logrus.WithError(err).Fatal("storage.NewStorage.sql.Open")
	}

	return &Storage{
		DB:           db,
		Accounts:     account.NewTable(db),
		Transactions: transaction.NewTable(db),
		Categories:   category.NewTable(db),
		Budgets:      budget.NewTable(db),
	}
}

// Write opens a database transaction and returns a Writer bound to it. The
// caller must Commit or Rollback.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := bob.NewDB(s.DB).BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	writer := NewWriter(tx)
	return &writer, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
