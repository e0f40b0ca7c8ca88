package logic

// maxLimit caps caller-supplied result sizes on every endpoint.
const maxLimit = 500

// PageRequest is a clamped page window over the player collection.
type PageRequest struct {
	Page  int
	Limit int
}

// NewPageRequest clamps page and limit so the computed offset can never
// go negative: page below 1 becomes 1, limit below 1 falls back to def.
func NewPageRequest(page, limit, def int) PageRequest {
	if page < 1 {
		page = 1
	}
	return PageRequest{Page: page, Limit: ClampLimit(limit, def)}
}

// Offset is the number of rows skipped before this page.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// ClampLimit substitutes def for non-positive limits and caps the rest.
func ClampLimit(limit, def int) int {
	if limit < 1 {
		limit = def
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return limit
}

// Pages returns the ceiling page count for total rows, 0 for an empty
// collection.
func Pages(total int64, limit int) int64 {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return (total + int64(limit) - 1) / int64(limit)
}
