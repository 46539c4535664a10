package domain

import "errors"

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// StatusNew is assigned server-side to every freshly created request.
// Status is an open string: admin tooling overwrites it freely via update.
const StatusNew = "new"

// Pagination describes one page of a list response.
type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

// NewPagination computes the page descriptor for a list result.
// Pages is ceil(total/limit).
func NewPagination(total int64, page, limit int) Pagination {
	pages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{
		Total: total,
		Page:  page,
		Limit: limit,
		Pages: pages,
	}
}
