package question

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/db/repository"
	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
)

type categoryRepository interface {
	List(ctx context.Context) ([]sqlcgen.Category, error)
	Get(ctx context.Context, id int32) (sqlcgen.Category, error)
}

type questionRepository interface {
	List(ctx context.Context) ([]sqlcgen.Question, error)
	Get(ctx context.Context, id int32) (sqlcgen.Question, error)
	Insert(ctx context.Context, params sqlcgen.InsertQuestionParams) (sqlcgen.Question, error)
	Delete(ctx context.Context, id int32) error
	Count(ctx context.Context) (int64, error)
}

// Service implements the question bank operations over the category and
// question repositories.
type Service struct {
	categories categoryRepository
	questions  questionRepository
	logger     zerolog.Logger
}

func NewService(categories categoryRepository, questions questionRepository, logger zerolog.Logger) *Service {
	return &Service{
		categories: categories,
		questions:  questions,
		logger:     logger.With().Str("component", "question_service").Logger(),
	}
}

// Categories returns every category ordered by id.
func (s *Service) Categories(ctx context.Context) ([]Category, error) {
	rows, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Category, 0, len(rows))
	for _, row := range rows {
		out = append(out, categoryFromRow(row))
	}
	return out, nil
}

// All returns every question ordered by id.
func (s *Service) All(ctx context.Context) ([]Question, error) {
	rows, err := s.questions.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Question, 0, len(rows))
	for _, row := range rows {
		out = append(out, questionFromRow(row))
	}
	return out, nil
}

// Page returns one page of all questions. An empty page is ErrNotFound.
func (s *Service) Page(ctx context.Context, page int) (QuestionPage, error) {
	all, err := s.All(ctx)
	if err != nil {
		return QuestionPage{}, err
	}

	formatted := Paginate(page, QuestionsPerPage, FormatAll(all))
	if len(formatted) == 0 {
		return QuestionPage{}, ErrNotFound
	}

	categories, err := s.Categories(ctx)
	if err != nil {
		return QuestionPage{}, err
	}

	return QuestionPage{
		Questions:  formatted,
		Total:      len(all),
		Categories: CategoryMap(categories),
	}, nil
}

// Search returns a page of questions matching term. Total counts every
// question in the bank, not only the matches.
func (s *Service) Search(ctx context.Context, term string, page int) (SearchResult, error) {
	all, err := s.All(ctx)
	if err != nil {
		return SearchResult{}, err
	}

	return SearchResult{
		Questions: Paginate(page, QuestionsPerPage, FormatAll(Search(term, all))),
		Total:     len(all),
	}, nil
}

// ByCategory returns a page of the questions in category id.
func (s *Service) ByCategory(ctx context.Context, id int, page int) (CategoryQuestions, error) {
	row, err := s.categories.Get(ctx, int32(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return CategoryQuestions{}, ErrNotFound
		}
		return CategoryQuestions{}, err
	}
	category := categoryFromRow(row)

	all, err := s.All(ctx)
	if err != nil {
		return CategoryQuestions{}, err
	}

	return CategoryQuestions{
		Questions:       Paginate(page, QuestionsPerPage, FormatAll(FilterByCategory(category.ID, all))),
		Total:           len(all),
		CurrentCategory: category.Type,
	}, nil
}

// Create validates payload, stores the question and returns its id together
// with the new question count.
func (s *Service) Create(ctx context.Context, payload Payload) (int, int, error) {
	if err := Validate(payload); err != nil {
		return 0, 0, err
	}

	row, err := s.questions.Insert(ctx, sqlcgen.InsertQuestionParams{
		Question:   *payload.Question,
		Answer:     *payload.Answer,
		Category:   int32(*payload.Category),
		Difficulty: int32(*payload.Difficulty),
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("question insert failed")
		return 0, 0, fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}

	total, err := s.questions.Count(ctx)
	if err != nil {
		return 0, 0, err
	}
	return int(row.ID), int(total), nil
}

// Delete removes question id. A missing id is ErrNotFound; a failing delete
// is ErrStorageFailure.
func (s *Service) Delete(ctx context.Context, id int) error {
	if _, err := s.questions.Get(ctx, int32(id)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := s.questions.Delete(ctx, int32(id)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		s.logger.Error().Err(err).Int("question_id", id).Msg("question delete failed")
		return fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}
	return nil
}
