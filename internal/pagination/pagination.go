package pagination

import "strconv"

// Defaults and limits for list windowing.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Params is a validated pagination window. Page has no upper bound; pages
// past the end of a result set are empty, not errors.
type Params struct {
	Page     int
	PageSize int
}

// Parse builds Params from raw query values. Non-numeric input falls back
// to the defaults rather than failing the request; a numeric page_size is
// clamped to [1, MaxPageSize].
func Parse(pageStr, pageSizeStr string) Params {
	page := DefaultPage
	if pageStr != "" {
		if v, err := strconv.Atoi(pageStr); err == nil && v >= 1 {
			page = v
		}
	}

	pageSize := DefaultPageSize
	if pageSizeStr != "" {
		if v, err := strconv.Atoi(pageSizeStr); err == nil {
			pageSize = v
			if pageSize < 1 {
				pageSize = 1
			}
			if pageSize > MaxPageSize {
				pageSize = MaxPageSize
			}
		}
	}

	return Params{Page: page, PageSize: pageSize}
}

// Offset returns the number of rows to skip.
func (p Params) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Limit returns the maximum number of rows in the window.
func (p Params) Limit() int {
	return p.PageSize
}
