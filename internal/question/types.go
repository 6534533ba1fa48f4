package question

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
)

// QuestionsPerPage is the fixed page size for every paginated listing.
const QuestionsPerPage = 10

// Category is a read-only question category.
type Category struct {
	ID   int
	Type string
}

// Question is a stored trivia question. Category is always the integer
// category id.
type Question struct {
	ID         int
	Question   string
	Answer     string
	Category   int
	Difficulty int
}

// Formatted is the projection of a Question used in every JSON response.
type Formatted struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// Format projects q into its response shape.
func (q Question) Format() Formatted {
	return Formatted{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}

// FormatAll formats qs preserving order. The result is never nil.
func FormatAll(qs []Question) []Formatted {
	out := make([]Formatted, 0, len(qs))
	for _, q := range qs {
		out = append(out, q.Format())
	}
	return out
}

// CategoryMap renders categories as the {id: type} object used by the API.
func CategoryMap(categories []Category) map[int]string {
	out := make(map[int]string, len(categories))
	for _, c := range categories {
		out[c.ID] = c.Type
	}
	return out
}

// FlexInt decodes from either a JSON number or a numeric JSON string, so
// category and difficulty ids sent as "5" and 5 are treated alike.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("invalid integer %q", s)
		}
		*f = FlexInt(n)
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid integer %s", data)
	}
	*f = FlexInt(n)
	return nil
}

// Payload is the body of POST /questions. A non-nil SearchTerm selects search;
// otherwise the remaining fields describe a question to create.
type Payload struct {
	SearchTerm *string `json:"searchTerm"`

	Question   *string  `json:"question" validate:"required"`
	Answer     *string  `json:"answer" validate:"required"`
	Difficulty *FlexInt `json:"difficulty" validate:"required,min=1,max=5"`
	Category   *FlexInt `json:"category" validate:"required,min=1,max=2147483647"`
}

// QuestionPage is one page of questions plus listing metadata.
type QuestionPage struct {
	Questions  []Formatted
	Total      int
	Categories map[int]string
}

// SearchResult holds a page of search matches.
type SearchResult struct {
	Questions []Formatted
	Total     int
}

// CategoryQuestions holds a page of questions in a single category.
type CategoryQuestions struct {
	Questions       []Formatted
	Total           int
	CurrentCategory string
}

func categoryFromRow(row sqlcgen.Category) Category {
	return Category{ID: int(row.ID), Type: row.Type}
}

func questionFromRow(row sqlcgen.Question) Question {
	return Question{
		ID:         int(row.ID),
		Question:   row.Question,
		Answer:     row.Answer,
		Category:   int(row.Category),
		Difficulty: int(row.Difficulty),
	}
}
