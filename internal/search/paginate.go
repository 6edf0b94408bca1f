package search

// paginate cuts the ordered result set down to the requested window and
// computes pagination metadata. Out-of-range pages yield an empty
// window, not an error.
func paginate(matches []Match, page, pageSize int) ([]Match, Pagination) {
	total := len(matches)
	totalPages := (total + pageSize - 1) / pageSize

	meta := Pagination{
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}

	start := (page - 1) * pageSize
	if start >= total {
		return []Match{}, meta
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return matches[start:end], meta
}
