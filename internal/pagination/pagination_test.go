package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstPageOfTen(t *testing.T) {
	w := WindowFor(1, 10)

	assert.Equal(t, []int{1, 2, 3, 4, 5}, w.Pages)
	assert.False(t, w.PrevEnabled)
	assert.True(t, w.NextEnabled)
	assert.False(t, w.ShowFirst)
	assert.False(t, w.LeadingEllipsis)
	assert.True(t, w.ShowLast)
	assert.True(t, w.TrailingEllipsis)
}

func TestLastPageOfTen(t *testing.T) {
	w := WindowFor(10, 10)

	assert.Equal(t, []int{6, 7, 8, 9, 10}, w.Pages)
	assert.True(t, w.PrevEnabled)
	assert.False(t, w.NextEnabled)
	assert.True(t, w.ShowFirst)
	assert.True(t, w.LeadingEllipsis)
	assert.False(t, w.ShowLast)
	assert.False(t, w.TrailingEllipsis)
}

func TestMiddleOfTen(t *testing.T) {
	w := WindowFor(5, 10)

	assert.Equal(t, []int{3, 4, 5, 6, 7}, w.Pages)
	assert.True(t, w.ShowFirst)
	assert.True(t, w.LeadingEllipsis)
	assert.True(t, w.ShowLast)
	assert.True(t, w.TrailingEllipsis)
}

func TestSmallTotalHasNoExtras(t *testing.T) {
	for current := 1; current <= 3; current++ {
		w := WindowFor(current, 3)
		assert.Equal(t, []int{1, 2, 3}, w.Pages)
		assert.False(t, w.ShowFirst)
		assert.False(t, w.LeadingEllipsis)
		assert.False(t, w.ShowLast)
		assert.False(t, w.TrailingEllipsis)
	}
}

func TestEllipsisBoundaries(t *testing.T) {
	// Page 4 of 10: first button but no leading ellipsis yet.
	w := WindowFor(4, 10)
	assert.True(t, w.ShowFirst)
	assert.False(t, w.LeadingEllipsis)

	// Page 7 of 10: last button but no trailing ellipsis.
	w = WindowFor(7, 10)
	assert.True(t, w.ShowLast)
	assert.False(t, w.TrailingEllipsis)

	// Page 8 of 10: window pinned to the tail, no last button.
	w = WindowFor(8, 10)
	assert.Equal(t, []int{6, 7, 8, 9, 10}, w.Pages)
	assert.False(t, w.ShowLast)
}

func TestNearHeadPinsWindow(t *testing.T) {
	w := WindowFor(3, 10)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, w.Pages)
	assert.False(t, w.ShowFirst)
	assert.True(t, w.ShowLast)
}

func TestSinglePage(t *testing.T) {
	w := WindowFor(1, 1)
	assert.Equal(t, []int{1}, w.Pages)
	assert.False(t, w.PrevEnabled)
	assert.False(t, w.NextEnabled)
}
