package quiz

import "github.com/gokatarajesh/trivia-api/internal/question"

// Request is the body of POST /quizzes.
type Request struct {
	PreviousQuestions []question.FlexInt `json:"previous_questions" validate:"required"`
	QuizCategory      *Category          `json:"quiz_category" validate:"required"`
}

// Category identifies the quiz category; id 0 means any category.
type Category struct {
	ID   *question.FlexInt `json:"id" validate:"required"`
	Type string            `json:"type,omitempty"`
}

// Response carries the next question, or no question once the category is
// exhausted.
type Response struct {
	Success  bool                `json:"success"`
	Question *question.Formatted `json:"question,omitempty"`
}

func (r Request) seenIDs() []int {
	out := make([]int, 0, len(r.PreviousQuestions))
	for _, id := range r.PreviousQuestions {
		out = append(out, int(id))
	}
	return out
}
