package quiz

import (
	"math/rand/v2"

	"github.com/gokatarajesh/trivia-api/internal/question"
)

// AnyCategory is the quiz category sentinel meaning "no category filter".
const AnyCategory = 0

// Rand is the random source used to pick a question. *rand.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// globalRand uses the process-wide math/rand/v2 source, which is safe for
// concurrent use.
type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Selector picks the next unseen quiz question.
type Selector struct {
	rng Rand
}

// NewSelector returns a Selector drawing from rng; nil uses the global source.
// A seeded *rand.Rand is not safe for concurrent use and suits tests only.
func NewSelector(rng Rand) *Selector {
	if rng == nil {
		rng = globalRand{}
	}
	return &Selector{rng: rng}
}

// Candidates returns the questions in category (or all of pool for
// AnyCategory) whose ids are not in seen, preserving pool order.
func Candidates(category int, seen []int, pool []question.Question) []question.Question {
	if category != AnyCategory {
		pool = question.FilterByCategory(category, pool)
	}

	seenSet := make(map[int]struct{}, len(seen))
	for _, id := range seen {
		seenSet[id] = struct{}{}
	}

	out := make([]question.Question, 0, len(pool))
	for _, q := range pool {
		if _, ok := seenSet[q.ID]; ok {
			continue
		}
		out = append(out, q)
	}
	return out
}

// Next returns a uniformly random candidate. ok is false when every question
// in the category has been seen.
func (s *Selector) Next(category int, seen []int, pool []question.Question) (q question.Question, ok bool) {
	candidates := Candidates(category, seen, pool)
	if len(candidates) == 0 {
		return question.Question{}, false
	}
	return candidates[s.rng.IntN(len(candidates))], true
}
