package question

import (
	"strings"

	"golang.org/x/text/cases"
)

// Search returns the questions whose text contains term, compared under
// Unicode case folding. An empty term matches everything.
func Search(term string, questions []Question) []Question {
	// Casers carry state and are not shared across goroutines.
	fold := cases.Fold()
	needle := fold.String(term)

	matches := make([]Question, 0)
	for _, q := range questions {
		if strings.Contains(fold.String(q.Question), needle) {
			matches = append(matches, q)
		}
	}
	return matches
}

// FilterByCategory keeps the questions belonging to category.
func FilterByCategory(category int, questions []Question) []Question {
	matches := make([]Question, 0)
	for _, q := range questions {
		if q.Category == category {
			matches = append(matches, q)
		}
	}
	return matches
}
