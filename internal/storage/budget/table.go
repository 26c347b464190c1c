package budget

import (
	"context"
	"database/sql"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var _ Store = (*Table)(nil)

// Table provides access to the budgets table.
type Table struct {
	exec bob.Executor
}

func NewTable(db *sql.DB) *Table {
	return &Table{exec: bob.NewDB(db)}
}

// FindByID retrieves a budget by primary key.
func (t *Table) FindByID(ctx context.Context, id uuid.UUID) (*Budget, error) {
	q := psql.Select(
		sm.Columns("id", "name", "category_id", "amount", "period", "start_date", "created_at"),
		sm.From("budgets"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	return bob.One(ctx, t.exec, q, scan.StructMapper[*Budget]())
}

// Insert creates a new budget and returns its generated ID.
func (t *Table) Insert(ctx context.Context, create *BudgetCreate) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into("budgets", "name", "category_id", "amount", "period", "start_date"),
		im.Values(psql.Arg(create.Name, create.CategoryID, create.Amount, string(create.Period), create.StartDate)),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, t.exec, q, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// List returns all budgets ordered by name.
func (t *Table) List(ctx context.Context) ([]*Budget, error) {
	q := psql.Select(
		sm.Columns("id", "name", "category_id", "amount", "period", "start_date", "created_at"),
		sm.From("budgets"),
		sm.OrderBy("name").Asc(),
		sm.OrderBy("id").Asc(),
	)
	return bob.All(ctx, t.exec, q, scan.StructMapper[*Budget]())
}
