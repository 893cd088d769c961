// Package pagination holds the page/limit contract shared by the repository
// ports, the cache layer, and the HTTP handlers. List reads cache a whole
// Page (items plus meta) as one unit so a hit never mixes counts from two
// different snapshots.
package pagination

// Params is a validated page/limit pair. Upstream request validation
// guarantees page >= 1 and limit in [1,100]; this package assumes those
// bounds hold.
type Params struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// SkipTake converts the pair into the offset/limit form the persistence
// layer consumes.
func (p Params) SkipTake() (skip, take int) {
	return (p.Page - 1) * p.Limit, p.Limit
}

// Meta describes one page of a listing.
type Meta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// NewMeta computes the page count as ceil(total/limit). An empty result set
// reports 0 pages, not 1.
func NewMeta(p Params, total int64) Meta {
	pages := 0
	if total > 0 {
		pages = int((total + int64(p.Limit) - 1) / int64(p.Limit))
	}
	return Meta{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      total,
		TotalPages: pages,
	}
}

// Page bundles one page of items with its meta.
type Page[T any] struct {
	Items []T  `json:"items"`
	Meta  Meta `json:"meta"`
}

// NewPage builds the envelope returned by list reads.
func NewPage[T any](items []T, p Params, total int64) *Page[T] {
	return &Page[T]{Items: items, Meta: NewMeta(p, total)}
}
