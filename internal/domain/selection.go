package domain

// DateSelection is the in-progress date range of a trip. Both bounds start
// unset; the range selector is the only mutation path.
//
// Invariant: whenever both bounds are set, Start <= End. The selector
// guarantees this regardless of tap order, so no other code needs to handle
// an inverted range.
type DateSelection struct {
	Start *Date
	End   *Date
}

// Complete reports whether both bounds are set.
func (s DateSelection) Complete() bool {
	return s.Start != nil && s.End != nil
}

// Empty reports whether no day has been picked yet.
func (s DateSelection) Empty() bool {
	return s.Start == nil
}

// DayMark carries the rendering hints for one calendar day of a selection.
// It is derived from a DateSelection and never stored independently, so the
// marks cannot drift from the range they describe.
type DayMark struct {
	IsStart    bool `json:"is_start"`
	IsMiddle   bool `json:"is_middle"`
	IsEnd      bool `json:"is_end"`
	IsSelected bool `json:"is_selected"`
}
