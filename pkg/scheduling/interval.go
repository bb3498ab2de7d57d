package scheduling

import "time"

// BusyInterval is a half-open [Start, End) time range during which no new
// meeting may start. All-day calendar events are normalized to day boundaries
// by the calendar gateway before they reach this package.
type BusyInterval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two half-open intervals intersect. Back-to-back
// intervals do not overlap.
func (b BusyInterval) Overlaps(other BusyInterval) bool {
	return b.Start.Before(other.End) && other.Start.Before(b.End)
}
