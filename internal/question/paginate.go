package question

import "strconv"

// PageFromQuery parses the 1-based page query parameter, defaulting to 1 when
// it is absent or not a number.
func PageFromQuery(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 1
	}
	return page
}

// Paginate returns items[(page-1)*size : page*size] clipped to bounds. A page
// starting past the end, or a page below 1, is empty.
func Paginate[T any](page, size int, items []T) []T {
	if page < 1 || size <= 0 {
		return []T{}
	}
	// Compare page counts before multiplying so huge pages cannot overflow.
	if page-1 >= (len(items)+size-1)/size {
		return []T{}
	}
	start := (page - 1) * size
	end := min(start+size, len(items))
	return items[start:end]
}
