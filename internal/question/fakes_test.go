package question

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/gokatarajesh/trivia-api/internal/db/repository"
	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
)

var seededCategories = []sqlcgen.Category{
	{ID: 1, Type: "Science"},
	{ID: 2, Type: "Art"},
	{ID: 3, Type: "Geography"},
	{ID: 4, Type: "History"},
	{ID: 5, Type: "Entertainment"},
	{ID: 6, Type: "Sports"},
}

type memoryCategories struct {
	rows    []sqlcgen.Category
	listErr error
}

func (m *memoryCategories) List(_ context.Context) ([]sqlcgen.Category, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.rows, nil
}

func (m *memoryCategories) Get(_ context.Context, id int32) (sqlcgen.Category, error) {
	for _, c := range m.rows {
		if c.ID == id {
			return c, nil
		}
	}
	return sqlcgen.Category{}, repository.ErrNotFound
}

type memoryQuestions struct {
	mu        sync.Mutex
	rows      map[int32]sqlcgen.Question
	nextID    int32
	insertErr error
	deleteErr error
	listErr   error
}

func newMemoryQuestions(rows ...sqlcgen.Question) *memoryQuestions {
	m := &memoryQuestions{rows: map[int32]sqlcgen.Question{}, nextID: 1}
	for _, r := range rows {
		m.rows[r.ID] = r
		if r.ID >= m.nextID {
			m.nextID = r.ID + 1
		}
	}
	return m
}

func (m *memoryQuestions) List(_ context.Context) ([]sqlcgen.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]sqlcgen.Question, 0, len(m.rows))
	for _, r := range m.rows {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memoryQuestions) Get(_ context.Context, id int32) (sqlcgen.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rows[id]
	if !ok {
		return sqlcgen.Question{}, repository.ErrNotFound
	}
	return r, nil
}

func (m *memoryQuestions) Insert(_ context.Context, p sqlcgen.InsertQuestionParams) (sqlcgen.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.insertErr != nil {
		return sqlcgen.Question{}, m.insertErr
	}
	r := sqlcgen.Question{ID: m.nextID, Question: p.Question, Answer: p.Answer, Category: p.Category, Difficulty: p.Difficulty}
	m.rows[r.ID] = r
	m.nextID++
	return r, nil
}

func (m *memoryQuestions) Delete(_ context.Context, id int32) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, ok := m.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

func (m *memoryQuestions) Count(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.rows)), nil
}

var errBoom = errors.New("boom")

// seedQuestions builds n questions cycling through categories 1..6.
func seedQuestions(n int) []sqlcgen.Question {
	out := make([]sqlcgen.Question, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, sqlcgen.Question{
			ID:         int32(i),
			Question:   "Question number " + string(rune('A'+(i-1)%26)),
			Answer:     "answer",
			Category:   int32((i-1)%6 + 1),
			Difficulty: int32((i-1)%5 + 1),
		})
	}
	return out
}
