package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/category"
)

// CategoryKind splits categories by the direction of the transactions they label.
type CategoryKind string

const (
	CategoryKindIncome  CategoryKind = "income"
	CategoryKindExpense CategoryKind = "expense"
)

// Category represents a category in the service layer.
type Category struct {
	ID        uuid.UUID
	Name      string
	Kind      CategoryKind
	CreatedAt time.Time
}

// CategoryService handles category business logic.
type CategoryService struct {
	storage *storage.Storage
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(store *storage.Storage) *CategoryService {
	return &CategoryService{storage: store}
}

// CreateCategory creates a new category and returns its ID.
func (s *CategoryService) CreateCategory(ctx context.Context, name string, kind CategoryKind) (uuid.UUID, error) {
	return s.storage.Categories.Insert(ctx, &category.CategoryCreate{
		Name: name,
		Kind: category.Kind(kind),
	})
}

// ListCategories returns all categories ordered by name.
func (s *CategoryService) ListCategories(ctx context.Context) ([]Category, error) {
	rows, err := s.storage.Categories.List(ctx)
	if err != nil {
		return nil, err
	}

	converted := make([]Category, len(rows))
	for i, row := range rows {
		converted[i] = Category{
			ID:        row.ID,
			Name:      row.Name,
			Kind:      CategoryKind(row.Kind),
			CreatedAt: row.CreatedAt,
		}
	}
	return converted, nil
}
