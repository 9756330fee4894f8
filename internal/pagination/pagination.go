// Package pagination computes the bounded page-number window shown under a
// paginated listing.
package pagination

// Window describes which pager controls to render for a page position.
type Window struct {
	PrevEnabled bool
	NextEnabled bool

	// Pages is the run of at most 5 consecutive page numbers centered on
	// the current page, clamped to [1, total].
	Pages []int

	// ShowFirst/ShowLast are the standalone first/last page buttons shown
	// when the window has drifted away from either end; the ellipses mark
	// the gap once it is wider than one page.
	ShowFirst        bool
	LeadingEllipsis  bool
	ShowLast         bool
	TrailingEllipsis bool
}

// WindowFor computes the window for a 1-based current page.
func WindowFor(current, total int) Window {
	w := Window{
		PrevEnabled: current > 1,
		NextEnabled: current < total,
	}

	count := total
	if count > 5 {
		count = 5
	}
	for i := 0; i < count; i++ {
		var page int
		switch {
		case total <= 5:
			page = i + 1
		case current <= 3:
			page = i + 1
		case current >= total-2:
			page = total - 4 + i
		default:
			page = current - 2 + i
		}
		w.Pages = append(w.Pages, page)
	}

	if current > 3 && total > 5 {
		w.ShowFirst = true
		w.LeadingEllipsis = current > 4
	}
	if current < total-2 && total > 5 {
		w.ShowLast = true
		w.TrailingEllipsis = current < total-3
	}

	return w
}
