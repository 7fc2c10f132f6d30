// Package listing models the list-endpoint query parameters shared by
// all entities: free-text search, categorical filters with the ALL
// sentinel, time windows, and page/limit pagination.
package listing

import "time"

// FilterAll is the sentinel value meaning "no filter applied". It is
// distinct from an unset parameter but behaves identically.
const FilterAll = "ALL"

// Window restricts a list to orders created after a lower bound
type Window string

const (
	WindowAll    Window = "ALL"
	WindowToday  Window = "TODAY"
	Window7Days  Window = "7_DAYS"
	Window30Days Window = "30_DAYS"
)

func (w Window) Valid() bool {
	switch w {
	case WindowAll, WindowToday, Window7Days, Window30Days, "":
		return true
	}
	return false
}

// Bound returns the createdAt lower bound for the window. ok is false
// for ALL (and unset), which imposes no bound.
func (w Window) Bound(now time.Time) (bound time.Time, ok bool) {
	switch w {
	case WindowToday:
		y, m, d := now.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, now.Location()), true
	case Window7Days:
		return now.AddDate(0, 0, -7), true
	case Window30Days:
		return now.AddDate(0, 0, -30), true
	default:
		return time.Time{}, false
	}
}

// Query carries the parsed list parameters for one request
type Query struct {
	Search string
	Filter string // categorical value (status/category/role), "" or ALL = none
	Window Window
	Page   int // 1-based
	Limit  int
}

// Normalize clamps page and limit to sane values
func (q Query) Normalize(defaultLimit int) Query {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = defaultLimit
	}
	return q
}

// Offset is the number of records to skip for the requested page
func (q Query) Offset() int {
	return (q.Page - 1) * q.Limit
}

// Filtered reports whether the categorical filter is active. The ALL
// sentinel is equivalent to omitting the filter entirely.
func (q Query) Filtered() bool {
	return q.Filter != "" && q.Filter != FilterAll
}

// Pagination is the metadata block returned with every list response
type Pagination struct {
	Total       int64 `json:"total"`
	TotalPages  int   `json:"totalPages"`
	CurrentPage int   `json:"currentPage"`
	Limit       int   `json:"limit"`
}

// Paginate computes the metadata for a total matched by the filters
func (q Query) Paginate(total int64) Pagination {
	totalPages := int((total + int64(q.Limit) - 1) / int64(q.Limit))
	return Pagination{
		Total:       total,
		TotalPages:  totalPages,
		CurrentPage: q.Page,
		Limit:       q.Limit,
	}
}
