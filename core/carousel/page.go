package carousel

import "sync"

// Page describes one page of a fixed-size pagination.
type Page struct {
	Index int // zero-based, already clamped
	Total int // at least 1
	Size  int
	Start int // first item, inclusive
	End   int // last item, exclusive
}

// HasPrev reports whether a page precedes this one.
func (p Page) HasPrev() bool { return p.Index > 0 }

// HasNext reports whether a page follows this one.
func (p Page) HasNext() bool { return p.Index < p.Total-1 }

// Number is the one-based page number for display.
func (p Page) Number() int { return p.Index + 1 }

// TotalPages returns max(1, ceil(n/size)). Sizes below 1 count as 1.
func TotalPages(n, size int) int {
	size = max(size, 1)
	if n <= 0 {
		return 1
	}
	return (n + size - 1) / size
}

// Bounds returns the clamped page for n items of the given size.
func Bounds(n, size, page int) Page {
	size = max(size, 1)
	n = max(n, 0)
	total := TotalPages(n, size)
	page = min(max(page, 0), total-1)

	start := min(page*size, n)
	return Page{
		Index: page,
		Total: total,
		Size:  size,
		Start: start,
		End:   min(n, start+size),
	}
}

// PageOf returns the half-open slice [page*size, min(len, (page+1)*size)) of list.
// page is clamped into [0, TotalPages-1] first.
func PageOf[T any](list []T, size, page int) ([]T, Page) {
	p := Bounds(len(list), size, page)
	return list[p.Start:p.End], p
}

// Pager is a wrapping page cursor that re-clamps when the list or page size changes.
type Pager struct {
	mu     sync.Mutex
	length int
	size   int
	page   int
}

// NewPager returns a Pager on the first page.
func NewPager(length, size int) *Pager {
	return &Pager{length: max(length, 0), size: max(size, 1)}
}

// Next moves to the following page, wrapping to the first.
func (p *Pager) Next() Page { return p.move(1) }

// Prev moves to the preceding page, wrapping to the last.
func (p *Pager) Prev() Page { return p.move(-1) }

func (p *Pager) move(delta int) Page {
	p.mu.Lock()
	defer p.mu.Unlock()

	total := TotalPages(p.length, p.size)
	p.page = wrap(p.page+delta, total)
	return Bounds(p.length, p.size, p.page)
}

// Go jumps to page, clamped into range.
func (p *Pager) Go(page int) Page {
	p.mu.Lock()
	defer p.mu.Unlock()

	b := Bounds(p.length, p.size, page)
	p.page = b.Index
	return b
}

// Resize updates the list length and page size, clamping the current page.
func (p *Pager) Resize(length, size int) Page {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.length = max(length, 0)
	p.size = max(size, 1)
	b := Bounds(p.length, p.size, p.page)
	p.page = b.Index
	return b
}

// Current returns the current page.
func (p *Pager) Current() Page {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Bounds(p.length, p.size, p.page)
}
