package repository

import (
	"context"
	"fmt"

	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
)

type questionStore interface {
	ListQuestions(ctx context.Context) ([]sqlcgen.Question, error)
	GetQuestion(ctx context.Context, id int32) (sqlcgen.Question, error)
	InsertQuestion(ctx context.Context, arg sqlcgen.InsertQuestionParams) (sqlcgen.Question, error)
	DeleteQuestion(ctx context.Context, id int32) (int64, error)
	CountQuestions(ctx context.Context) (int64, error)
}

// QuestionRepository wraps sqlc queries for question access.
type QuestionRepository struct {
	store questionStore
}

func NewQuestionRepository(store questionStore) *QuestionRepository {
	return &QuestionRepository{store: store}
}

// List returns every question ordered by id.
func (r *QuestionRepository) List(ctx context.Context) ([]sqlcgen.Question, error) {
	rows, err := r.store.ListQuestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return rows, nil
}

// Get fetches a question by id, returning ErrNotFound when absent.
func (r *QuestionRepository) Get(ctx context.Context, id int32) (sqlcgen.Question, error) {
	row, err := r.store.GetQuestion(ctx, id)
	if err != nil {
		return sqlcgen.Question{}, normalize(err)
	}
	return row, nil
}

// Insert stores a new question; the store assigns the id.
func (r *QuestionRepository) Insert(ctx context.Context, params sqlcgen.InsertQuestionParams) (sqlcgen.Question, error) {
	row, err := r.store.InsertQuestion(ctx, params)
	if err != nil {
		return sqlcgen.Question{}, fmt.Errorf("insert question: %w", err)
	}
	return row, nil
}

// Delete removes a question. Deleting a missing id yields ErrNotFound.
func (r *QuestionRepository) Delete(ctx context.Context, id int32) error {
	affected, err := r.store.DeleteQuestion(ctx, id)
	if err != nil {
		return fmt.Errorf("delete question %d: %w", id, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the total number of questions.
func (r *QuestionRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.store.CountQuestions(ctx)
	if err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return n, nil
}
