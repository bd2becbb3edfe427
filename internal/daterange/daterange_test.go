package daterange_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmoraes/planner/internal/daterange"
	"github.com/jmoraes/planner/internal/domain"
)

func day(d int) domain.Date {
	return domain.NewDate(2025, time.June, d)
}

// tap is a convenience for folding several taps into an empty selection.
func tap(days ...int) domain.DateSelection {
	var sel domain.DateSelection
	for _, d := range days {
		sel = daterange.Apply(sel, day(d))
	}
	return sel
}

// ---- Apply -----------------------------------------------------------------

func TestApply_FirstTapSetsStartOnly(t *testing.T) {
	sel := tap(5)

	require.NotNil(t, sel.Start)
	assert.Equal(t, day(5), *sel.Start)
	assert.Nil(t, sel.End)
}

func TestApply_SecondTapAfterStartClosesRange(t *testing.T) {
	sel := tap(1, 10)

	require.True(t, sel.Complete())
	assert.Equal(t, day(1), *sel.Start)
	assert.Equal(t, day(10), *sel.End)
}

func TestApply_SecondTapBeforeStartSwapsBounds(t *testing.T) {
	// Tapping in reverse order must produce the same normalized range.
	sel := tap(10, 1)

	require.True(t, sel.Complete())
	assert.Equal(t, day(1), *sel.Start)
	assert.Equal(t, day(10), *sel.End)
	assert.Equal(t, tap(1, 10), sel)
}

func TestApply_SameDayTwiceIsOneDayRange(t *testing.T) {
	sel := tap(7, 7)

	require.True(t, sel.Complete())
	assert.Equal(t, day(7), *sel.Start)
	assert.Equal(t, day(7), *sel.End)
}

func TestApply_ThirdTapRestartsSelection(t *testing.T) {
	// A tap on a completed range always starts over, even when the tapped
	// day falls inside the existing range.
	sel := tap(1, 10, 5)

	require.NotNil(t, sel.Start)
	assert.Equal(t, day(5), *sel.Start)
	assert.Nil(t, sel.End)
}

func TestApply_NeverInverted(t *testing.T) {
	// For every ordered pair the resulting range is normalized.
	for a := 1; a <= 5; a++ {
		for b := 1; b <= 5; b++ {
			sel := tap(a, b)
			require.True(t, sel.Complete())
			assert.False(t, sel.End.Before(*sel.Start),
				"taps %d,%d produced inverted range", a, b)
		}
	}
}

// ---- Marked ----------------------------------------------------------------

func TestMarked_EmptySelection(t *testing.T) {
	marks := daterange.Marked(domain.DateSelection{})

	assert.Empty(t, marks)
}

func TestMarked_StartOnly(t *testing.T) {
	marks := daterange.Marked(tap(5))

	require.Len(t, marks, 1)
	assert.Equal(t, domain.DayMark{IsStart: true, IsEnd: true, IsSelected: true}, marks["2025-06-05"])
}

func TestMarked_FullRange(t *testing.T) {
	marks := daterange.Marked(tap(1, 4))

	require.Len(t, marks, 4)
	assert.Equal(t, domain.DayMark{IsStart: true, IsSelected: true}, marks["2025-06-01"])
	assert.Equal(t, domain.DayMark{IsMiddle: true, IsSelected: true}, marks["2025-06-02"])
	assert.Equal(t, domain.DayMark{IsMiddle: true, IsSelected: true}, marks["2025-06-03"])
	assert.Equal(t, domain.DayMark{IsEnd: true, IsSelected: true}, marks["2025-06-04"])
}

func TestMarked_SingleDayRangeIsStartAndEnd(t *testing.T) {
	marks := daterange.Marked(tap(7, 7))

	require.Len(t, marks, 1)
	assert.Equal(t, domain.DayMark{IsStart: true, IsEnd: true, IsSelected: true}, marks["2025-06-07"])
}

func TestMarked_CrossesMonthBoundary(t *testing.T) {
	var sel domain.DateSelection
	sel = daterange.Apply(sel, domain.NewDate(2025, time.June, 29))
	sel = daterange.Apply(sel, domain.NewDate(2025, time.July, 2))

	marks := daterange.Marked(sel)

	require.Len(t, marks, 4)
	assert.True(t, marks["2025-06-30"].IsMiddle)
	assert.True(t, marks["2025-07-01"].IsMiddle)
	assert.True(t, marks["2025-07-02"].IsEnd)
}

func TestMarked_Deterministic(t *testing.T) {
	sel := tap(1, 10)

	assert.Equal(t, daterange.Marked(sel), daterange.Marked(sel))
}

// ---- Label -----------------------------------------------------------------

func TestLabel_EmptySelection(t *testing.T) {
	_, ok := daterange.Label(domain.DateSelection{})

	assert.False(t, ok)
}

func TestLabel_StartOnly(t *testing.T) {
	label, ok := daterange.Label(tap(5))

	require.True(t, ok)
	assert.Equal(t, "June 5", label)
}

func TestLabel_FullRange(t *testing.T) {
	label, ok := daterange.Label(tap(1, 10))

	require.True(t, ok)
	assert.Equal(t, "1 to 10 of June", label)
}

func TestLabel_RangeEndingInDifferentMonth(t *testing.T) {
	var sel domain.DateSelection
	sel = daterange.Apply(sel, domain.NewDate(2025, time.June, 28))
	sel = daterange.Apply(sel, domain.NewDate(2025, time.July, 3))

	label, ok := daterange.Label(sel)

	require.True(t, ok)
	// The month shown is the ending month.
	assert.Equal(t, "28 to 3 of July", label)
}
