// Package pagination slices large result sets into pages with metadata so
// tool responses stay within the host's response-size tolerance.
package pagination

import "fmt"

// DefaultPageSize is used when the caller does not ask for a page size.
const DefaultPageSize = 100

// MaxPageSize caps a single page.
const MaxPageSize = 1000

// Page is one chunk of a larger result set.
type Page[T any] struct {
	Items      []T  `json:"items"`
	PageNumber int  `json:"page"`
	PageSize   int  `json:"pageSize"`
	TotalItems int  `json:"totalItems"`
	TotalPages int  `json:"totalPages"`
	HasMore    bool `json:"hasMore"`
}

// Chunk returns the requested page of items. Pages are 1-based; page 0 means
// the first page and pageSize 0 means DefaultPageSize. Requesting a page
// past the end is an error, except page 1 of an empty set.
func Chunk[T any](items []T, page, pageSize int) (*Page[T], error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	totalItems := len(items)
	totalPages := (totalItems + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}
	if page > totalPages {
		return nil, fmt.Errorf("page %d is out of range: %d page(s) of %d item(s)", page, totalPages, totalItems)
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if end > totalItems {
		end = totalItems
	}

	return &Page[T]{
		Items:      items[start:end],
		PageNumber: page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
		HasMore:    page < totalPages,
	}, nil
}
