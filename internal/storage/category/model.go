package category

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Kind splits categories by the direction of the transactions they label.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// Category represents a category record.
type Category struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Kind      Kind      `db:"kind"`
	CreatedAt time.Time `db:"created_at"`
}

// CategoryCreate is the input for creating a new category.
type CategoryCreate struct {
	Name string
	Kind Kind
}

// Store defines the interface for category storage operations.
type Store interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	Insert(ctx context.Context, create *CategoryCreate) (uuid.UUID, error)
	List(ctx context.Context) ([]*Category, error)
}
