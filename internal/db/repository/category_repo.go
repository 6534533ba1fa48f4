package repository

import (
	"context"
	"fmt"

	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
)

type categoryStore interface {
	ListCategories(ctx context.Context) ([]sqlcgen.Category, error)
	GetCategory(ctx context.Context, id int32) (sqlcgen.Category, error)
}

// CategoryRepository exposes read-only category lookups.
type CategoryRepository struct {
	store categoryStore
}

// NewCategoryRepository wraps a category store (sqlc Queries or sqlite Store).
func NewCategoryRepository(store categoryStore) *CategoryRepository {
	return &CategoryRepository{store: store}
}

// List returns all categories ordered by id.
func (r *CategoryRepository) List(ctx context.Context) ([]sqlcgen.Category, error) {
	rows, err := r.store.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return rows, nil
}

// Get fetches a category by id, returning ErrNotFound when absent.
func (r *CategoryRepository) Get(ctx context.Context, id int32) (sqlcgen.Category, error) {
	row, err := r.store.GetCategory(ctx, id)
	if err != nil {
		return sqlcgen.Category{}, normalize(err)
	}
	return row, nil
}
