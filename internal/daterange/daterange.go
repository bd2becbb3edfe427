// Package daterange implements the calendar picker's range selection
// algorithm: a sequence of day taps is folded into a normalized start/end
// interval, and the interval is projected into per-day rendering marks and a
// short human-readable label.
//
// Everything here is a pure function over domain.DateSelection. The calendar
// view owns no selection state of its own; it calls Apply on every tap and
// re-renders from Marked.
package daterange

import (
	"fmt"

	"github.com/jmoraes/planner/internal/domain"
)

// Apply folds one tapped day into the current selection.
//
// Rules, in order:
//   - No start yet, or a completed range already exists: the tap restarts the
//     selection with Start = tapped and no End. Tapping after a complete
//     range always begins a new range; it never extends the old one.
//   - Start set, End unset: a tap before Start swaps roles (the tapped day
//     becomes Start, the old Start becomes End). Any other tap, including
//     tapping Start itself, closes the range with End = tapped. Tapping the
//     same day twice therefore yields a valid one-day range.
//
// The result always satisfies Start <= End when both bounds are set,
// regardless of the order the user tapped in.
func Apply(current domain.DateSelection, tapped domain.Date) domain.DateSelection {
	if current.Start == nil || current.Complete() {
		return domain.DateSelection{Start: &tapped}
	}

	start := *current.Start
	if tapped.Before(start) {
		return domain.DateSelection{Start: &tapped, End: &start}
	}
	return domain.DateSelection{Start: &start, End: &tapped}
}

// Marked projects a selection into per-day rendering hints keyed by ISO day
// string. Days strictly between the bounds are middle marks; the bounds carry
// the start/end marks. A one-day range marks that single day as both start
// and end. An empty selection yields an empty map.
func Marked(sel domain.DateSelection) map[string]domain.DayMark {
	marks := map[string]domain.DayMark{}
	if sel.Start == nil {
		return marks
	}

	start := *sel.Start
	if sel.End == nil {
		marks[start.ISO()] = domain.DayMark{IsStart: true, IsEnd: true, IsSelected: true}
		return marks
	}

	end := *sel.End
	marks[start.ISO()] = domain.DayMark{IsStart: true, IsEnd: start == end, IsSelected: true}
	for d := start.Next(); d.Before(end); d = d.Next() {
		marks[d.ISO()] = domain.DayMark{IsMiddle: true, IsSelected: true}
	}
	if start != end {
		marks[end.ISO()] = domain.DayMark{IsEnd: true, IsSelected: true}
	}
	return marks
}

// Label renders a selection as short display text: "1 to 10 of June" for a
// complete range, the single day ("June 1") when only the start is picked.
// The second return is false when nothing is selected yet.
func Label(sel domain.DateSelection) (string, bool) {
	switch {
	case sel.Start == nil:
		return "", false
	case sel.End == nil:
		return sel.Start.Time().Format("January 2"), true
	default:
		return fmt.Sprintf("%d to %d of %s",
			sel.Start.Day, sel.End.Day, sel.End.Month), true
	}
}
