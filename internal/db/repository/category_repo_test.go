package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
)

type mockCategoryStore struct {
	mock.Mock
}

func (m *mockCategoryStore) ListCategories(ctx context.Context) ([]sqlcgen.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]sqlcgen.Category), args.Error(1)
}

func (m *mockCategoryStore) GetCategory(ctx context.Context, id int32) (sqlcgen.Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(sqlcgen.Category), args.Error(1)
}

func TestCategoryRepository_List(t *testing.T) {
	store := new(mockCategoryStore)
	repo := NewCategoryRepository(store)

	expect := []sqlcgen.Category{{ID: 1, Type: "Science"}, {ID: 2, Type: "Art"}}
	store.On("ListCategories", mock.Anything).Return(expect, nil)

	got, err := repo.List(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, expect, got)
	store.AssertExpectations(t)
}

func TestCategoryRepository_GetNotFound(t *testing.T) {
	for name, driverErr := range map[string]error{"pgx": pgx.ErrNoRows, "database/sql": sql.ErrNoRows} {
		t.Run(name, func(t *testing.T) {
			store := new(mockCategoryStore)
			repo := NewCategoryRepository(store)
			store.On("GetCategory", mock.Anything, int32(9)).Return(sqlcgen.Category{}, driverErr)

			_, err := repo.Get(context.Background(), 9)
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestCategoryRepository_GetPassesThroughOtherErrors(t *testing.T) {
	store := new(mockCategoryStore)
	repo := NewCategoryRepository(store)
	boom := errors.New("connection reset")
	store.On("GetCategory", mock.Anything, int32(1)).Return(sqlcgen.Category{}, boom)

	_, err := repo.Get(context.Background(), 1)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrNotFound)
}
