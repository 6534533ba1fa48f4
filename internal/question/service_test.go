package question

import (
	"context"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(questions *memoryQuestions) *Service {
	return NewService(&memoryCategories{rows: seededCategories}, questions, zerolog.New(io.Discard))
}

func strPtr(s string) *string { return &s }

func flexPtr(n int) *FlexInt {
	f := FlexInt(n)
	return &f
}

func TestPageReturnsWindowAndMetadata(t *testing.T) {
	svc := newTestService(newMemoryQuestions(seedQuestions(23)...))

	page, err := svc.Page(context.Background(), 3)
	require.NoError(t, err)

	assert.Len(t, page.Questions, 3)
	assert.Equal(t, 21, page.Questions[0].ID)
	assert.Equal(t, 23, page.Total)
	assert.Equal(t, "Sports", page.Categories[6])
	assert.Len(t, page.Categories, 6)
}

func TestPageBeyondRangeIsNotFound(t *testing.T) {
	svc := newTestService(newMemoryQuestions(seedQuestions(20)...))

	_, err := svc.Page(context.Background(), 1000)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPageOnEmptyBankIsNotFound(t *testing.T) {
	svc := newTestService(newMemoryQuestions())

	_, err := svc.Page(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSearchTotalsWholeBank(t *testing.T) {
	svc := newTestService(newMemoryQuestions(seedQuestions(12)...))

	result, err := svc.Search(context.Background(), "NUMBER a", 1)
	require.NoError(t, err)

	require.Len(t, result.Questions, 1)
	assert.Equal(t, 1, result.Questions[0].ID)
	assert.Equal(t, 12, result.Total)
}

func TestByCategory(t *testing.T) {
	svc := newTestService(newMemoryQuestions(seedQuestions(24)...))

	result, err := svc.ByCategory(context.Background(), 2, 1)
	require.NoError(t, err)

	assert.Equal(t, "Art", result.CurrentCategory)
	assert.Equal(t, 24, result.Total)
	require.Len(t, result.Questions, 4)
	for _, q := range result.Questions {
		assert.Equal(t, 2, q.Category)
	}
}

func TestByCategoryUnknownIsNotFound(t *testing.T) {
	svc := newTestService(newMemoryQuestions(seedQuestions(3)...))

	_, err := svc.ByCategory(context.Background(), 99, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateThenDeleteAdjustsCount(t *testing.T) {
	questions := newMemoryQuestions(seedQuestions(20)...)
	svc := newTestService(questions)
	ctx := context.Background()

	id, total, err := svc.Create(ctx, Payload{
		Question:   strPtr("Q"),
		Answer:     strPtr("A"),
		Difficulty: flexPtr(1),
		Category:   flexPtr(5),
	})
	require.NoError(t, err)
	assert.Equal(t, 21, id)
	assert.Equal(t, 21, total)

	require.NoError(t, svc.Delete(ctx, id))
	n, _ := questions.Count(ctx)
	assert.Equal(t, int64(20), n)

	assert.ErrorIs(t, svc.Delete(ctx, id), ErrNotFound)
}

func TestCreateMissingFieldIsValidationError(t *testing.T) {
	questions := newMemoryQuestions(seedQuestions(5)...)
	svc := newTestService(questions)

	_, _, err := svc.Create(context.Background(), Payload{
		Question:   strPtr("Q"),
		Difficulty: flexPtr(1),
		Category:   flexPtr(5),
	})

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "answer", ve.Field)

	n, _ := questions.Count(context.Background())
	assert.Equal(t, int64(5), n)
}

func TestCreateAcceptsEmptyStrings(t *testing.T) {
	svc := newTestService(newMemoryQuestions())

	_, total, err := svc.Create(context.Background(), Payload{
		Question:   strPtr(""),
		Answer:     strPtr(""),
		Difficulty: flexPtr(3),
		Category:   flexPtr(1),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestCreateRejectsDifficultyOutOfRange(t *testing.T) {
	svc := newTestService(newMemoryQuestions())

	_, _, err := svc.Create(context.Background(), Payload{
		Question:   strPtr("Q"),
		Answer:     strPtr("A"),
		Difficulty: flexPtr(9),
		Category:   flexPtr(1),
	})

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "difficulty", ve.Field)
}

func TestCreateRejectsCategoryOutsideIDRange(t *testing.T) {
	questions := newMemoryQuestions()
	svc := newTestService(questions)

	for _, category := range []int{4294967301, 2147483648, 0, -5} {
		_, _, err := svc.Create(context.Background(), Payload{
			Question:   strPtr("Q"),
			Answer:     strPtr("A"),
			Difficulty: flexPtr(1),
			Category:   flexPtr(category),
		})

		var ve *ValidationError
		require.ErrorAs(t, err, &ve, "category %d", category)
		assert.Equal(t, "category", ve.Field)
	}

	n, err := questions.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCreateStorageFailure(t *testing.T) {
	questions := newMemoryQuestions()
	questions.insertErr = errBoom
	svc := newTestService(questions)

	_, _, err := svc.Create(context.Background(), Payload{
		Question:   strPtr("Q"),
		Answer:     strPtr("A"),
		Difficulty: flexPtr(1),
		Category:   flexPtr(5),
	})
	assert.ErrorIs(t, err, ErrStorageFailure)
	assert.ErrorIs(t, err, errBoom)
}

func TestDeleteStorageFailure(t *testing.T) {
	questions := newMemoryQuestions(seedQuestions(2)...)
	questions.deleteErr = errBoom
	svc := newTestService(questions)

	assert.ErrorIs(t, svc.Delete(context.Background(), 1), ErrStorageFailure)
}

func TestReadFailurePropagates(t *testing.T) {
	questions := newMemoryQuestions()
	questions.listErr = errBoom
	svc := newTestService(questions)

	_, err := svc.Page(context.Background(), 1)
	assert.ErrorIs(t, err, errBoom)
	assert.NotErrorIs(t, err, ErrNotFound)
}
