package quiz

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/question"
)

const (
	outcomeQuestion = "question"
	outcomeNoneLeft = "none_left"
)

var selections = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "trivia_quiz_selections_total",
	Help: "Quiz question selections by outcome.",
}, []string{"outcome"})

type questionSource interface {
	All(ctx context.Context) ([]question.Question, error)
}

// Service serves quiz turns: validate, load the pool, pick an unseen question.
type Service struct {
	questions questionSource
	selector  *Selector
	logger    zerolog.Logger
}

func NewService(questions questionSource, selector *Selector, logger zerolog.Logger) *Service {
	if selector == nil {
		selector = NewSelector(nil)
	}
	return &Service{
		questions: questions,
		selector:  selector,
		logger:    logger.With().Str("component", "quiz_service").Logger(),
	}
}

// Next validates req and returns the next question. A response without a
// question means the category is exhausted.
func (s *Service) Next(ctx context.Context, req Request) (Response, error) {
	if err := question.Validate(req); err != nil {
		return Response{}, err
	}

	pool, err := s.questions.All(ctx)
	if err != nil {
		return Response{}, err
	}

	category := int(*req.QuizCategory.ID)
	picked, ok := s.selector.Next(category, req.seenIDs(), pool)
	if !ok {
		selections.WithLabelValues(outcomeNoneLeft).Inc()
		s.logger.Debug().Int("category", category).Int("seen", len(req.PreviousQuestions)).Msg("no questions left")
		return Response{Success: true}, nil
	}

	selections.WithLabelValues(outcomeQuestion).Inc()
	formatted := picked.Format()
	return Response{Success: true, Question: &formatted}, nil
}
