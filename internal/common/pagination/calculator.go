package pagination

// CalculateOffset calculates the slice offset based on page number and size.
// Page numbers are 1-based, so page 1 has offset 0.
//
// Formula: offset = (page - 1) * perPage
func CalculateOffset(page, perPage int) int {
	return (page - 1) * perPage
}

// HasNext reports whether another page exists after the given one.
//
// Formula: page * perPage < total
//
// Examples:
//   - Total 30, Page 1, PerPage 10 -> true
//   - Total 30, Page 3, PerPage 10 -> false
//   - Total 0, any page -> false
func HasNext(total, page, perPage int) bool {
	return page*perPage < total
}

// Window slices one page out of items. Pages past the end yield an empty,
// non-nil slice so JSON encodes [] instead of null.
func Window[T any](items []T, page, perPage int) []T {
	start := CalculateOffset(page, perPage)
	if start >= len(items) {
		return []T{}
	}
	end := start + perPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
