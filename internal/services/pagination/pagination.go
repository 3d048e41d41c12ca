package pagination

import "github.com/redjax/csvdash/internal/constants"

// TotalPages is ceil(n/size). No rows means no pages.
func TotalPages(n, size int) int {
	if n <= 0 || size <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// ClampPage keeps a 1-based page inside [1, max(totalPages, 1)].
func ClampPage(page, totalPages int) int {
	upper := totalPages
	if upper < 1 {
		upper = 1
	}
	if page < 1 {
		return 1
	}
	if page > upper {
		return upper
	}
	return page
}

// Slice returns the rows on a 1-based page. The page is clamped first, so an
// out of range request yields the last page rather than nothing.
func Slice[T any](rows []T, page, size int) []T {
	if size <= 0 || len(rows) == 0 {
		return []T{}
	}
	page = ClampPage(page, TotalPages(len(rows), size))
	start := (page - 1) * size
	end := start + size
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}

// Pager is the page/size pair the dashboard keeps between renders.
type Pager struct {
	Page int
	Size int
}

// New returns a pager on page 1. An unsupported size falls back to the default.
func New(size int) Pager {
	if !constants.IsValidPageSize(size) {
		size = constants.DefaultPageSize
	}
	return Pager{Page: 1, Size: size}
}

// TotalPages for n rows at the pager's size.
func (p Pager) TotalPages(n int) int {
	return TotalPages(n, p.Size)
}

// Goto moves to page, clamped against n rows.
func (p Pager) Goto(page, n int) Pager {
	p.Page = ClampPage(page, p.TotalPages(n))
	return p
}

// Next advances one page, stopping at the last page of n rows.
func (p Pager) Next(n int) Pager {
	return p.Goto(p.Page+1, n)
}

// Prev goes back one page, stopping at page 1.
func (p Pager) Prev() Pager {
	if p.Page > 1 {
		p.Page--
	}
	return p
}

// HasNext reports whether a page after the current one exists for n rows.
func (p Pager) HasNext(n int) bool {
	return p.Page < p.TotalPages(n)
}

// HasPrev reports whether the pager is past page 1.
func (p Pager) HasPrev() bool {
	return p.Page > 1
}

// SetSize switches to another supported size and returns to page 1.
// Unsupported sizes leave the pager unchanged.
func (p Pager) SetSize(size int) Pager {
	if !constants.IsValidPageSize(size) {
		return p
	}
	return Pager{Page: 1, Size: size}
}

// CycleSize moves to the next entry of constants.PageSizes, wrapping around.
func (p Pager) CycleSize() Pager {
	sizes := constants.PageSizes
	for i, s := range sizes {
		if s == p.Size {
			return p.SetSize(sizes[(i+1)%len(sizes)])
		}
	}
	return p.SetSize(sizes[0])
}

// Reset returns to page 1, keeping the size.
func (p Pager) Reset() Pager {
	p.Page = 1
	return p
}
