package account

import (
	"context"
	"database/sql"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

// Ensure Table implements Store at compile time.
var _ Store = (*Table)(nil)

// Table provides access to the accounts table.
type Table struct {
	exec bob.Executor
}

// NewTable creates a Table for the given database.
func NewTable(db *sql.DB) *Table {
	return &Table{exec: bob.NewDB(db)}
}

func columns() bob.Mod[*dialect.SelectQuery] {
	return sm.Columns("id", "name", "type", "sub_type", "balance", "starting_balance", "created_at")
}

// FindByID retrieves an account by primary key.
func (t *Table) FindByID(ctx context.Context, id uuid.UUID) (*Account, error) {
	q := psql.Select(
		columns(),
		sm.From("accounts"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	return bob.One(ctx, t.exec, q, scan.StructMapper[*Account]())
}

// Insert creates a new account and returns its generated ID.
func (t *Table) Insert(ctx context.Context, create *AccountCreate) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into("accounts", "name", "type", "sub_type", "balance", "starting_balance"),
		im.Values(psql.Arg(create.Name, int16(create.Type), create.SubType, create.Balance, create.StartingBalance)),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, t.exec, q, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// List returns accounts matching the filter. Nil filter returns all.
func (t *Table) List(ctx context.Context, filter *AccountFilter) ([]*Account, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		columns(),
		sm.From("accounts"),
	}
	if filter != nil {
		if filter.Limit > 0 {
			queryMods = append(queryMods, sm.Limit(filter.Limit+1))
		}
		if filter.Offset > 0 {
			queryMods = append(queryMods, sm.Offset(filter.Offset))
		}
	}
	queryMods = append(queryMods,
		sm.OrderBy("name").Asc(),
		sm.OrderBy("id").Asc(),
	)
	return bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*Account]())
}

// UpdateBalance updates the balance for a given account.
func (t *Table) UpdateBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error {
	q := psql.Update(
		um.Table("accounts"),
		um.SetCol("balance").ToArg(balance),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}
