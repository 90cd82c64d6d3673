package response

// Pagination describes one page of an in-memory listing. From and To are
// 1-based and inclusive; both are zero for an empty page.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int64 `json:"total_pages"`
	TotalItems int64 `json:"total_items"`
	HasMore    bool  `json:"has_more"`
	From       int   `json:"from"`
	To         int   `json:"to"`
}

// NewPagination clamps page and size and returns the metadata together with
// the half-open slice bounds [lo, hi) of the page.
func NewPagination(page, size, maxSize, total int) (p *Pagination, lo, hi int) {
	if page < 1 {
		page = 1
	}
	if size > maxSize {
		size = maxSize
	}

	lo = min((page-1)*size, total)
	hi = min(lo+size, total)

	p = &Pagination{
		Page:       page,
		PageSize:   size,
		TotalPages: int64((total + size - 1) / size),
		TotalItems: int64(total),
		HasMore:    hi < total,
		To:         hi,
	}
	if lo < hi {
		p.From = lo + 1
	} else {
		p.To = 0
	}
	return p, lo, hi
}
