// Package page describes zero-based page requests and the page descriptors
// returned by list queries.
package page

import "math"

const (
	DefaultPage = 0
	DefaultSize = 10
	MaxSize     = 1000

	// MaxPage keeps Page*MaxSize within int.
	MaxPage = math.MaxInt / MaxSize
)

// Request selects one page of a result set.
type Request struct {
	Page int
	Size int
}

// DefaultRequest returns page 0 of size 10.
func DefaultRequest() Request {
	return Request{Page: DefaultPage, Size: DefaultSize}
}

// Normalize clamps out-of-range values to usable ones.
func (r Request) Normalize() Request {
	if r.Page < 0 {
		r.Page = DefaultPage
	}
	if r.Page > MaxPage {
		r.Page = MaxPage
	}
	if r.Size <= 0 {
		r.Size = DefaultSize
	}
	if r.Size > MaxSize {
		r.Size = MaxSize
	}
	return r
}

// Offset is the number of rows skipped before this page.
func (r Request) Offset() int {
	n := r.Normalize()
	return n.Page * n.Size
}

// Page is a page descriptor.
type Page[T any] struct {
	ActualPage   int   `json:"actualPage"`
	TotalRecords int64 `json:"totalRecords"`
	TotalPages   int   `json:"totalPages"`
	ItemList     []T   `json:"itemList"`
}

// New builds the descriptor for items fetched with req out of total rows.
func New[T any](req Request, total int64, items []T) Page[T] {
	req = req.Normalize()
	if items == nil {
		items = []T{}
	}
	pages := 0
	if total > 0 {
		pages = int((total + int64(req.Size) - 1) / int64(req.Size))
	}
	return Page[T]{
		ActualPage:   req.Page,
		TotalRecords: total,
		TotalPages:   pages,
		ItemList:     items,
	}
}
