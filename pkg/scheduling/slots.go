package scheduling

import "time"

// lookaheadDays is how far into the future slots are offered, today included.
const lookaheadDays = 7

// SlotConfig describes the bookable window of a business day.
type SlotConfig struct {
	StartHour       int
	EndHour         int
	DurationMinutes int
	Location        *time.Location
}

func (c SlotConfig) duration() time.Duration {
	return time.Duration(c.DurationMinutes) * time.Minute
}

// GenerateSlots walks a fixed grid of candidate meeting starts over the next
// seven calendar days and returns, in chronological order, every candidate
// that lies strictly in the future and overlaps no busy interval.
//
// The cursor always advances by the meeting duration, even past busy
// intervals: which slots are offered near busy boundaries depends on the grid
// staying aligned to the start of the business day.
func GenerateSlots(now time.Time, busy []BusyInterval, cfg SlotConfig) []time.Time {
	now = now.In(cfg.Location)
	slots := []time.Time{}

	for dayOffset := 0; dayOffset < lookaheadDays; dayOffset++ {
		day := now.AddDate(0, 0, dayOffset)
		dayStart := time.Date(day.Year(), day.Month(), day.Day(), cfg.StartHour, 0, 0, 0, cfg.Location)
		dayEnd := time.Date(day.Year(), day.Month(), day.Day(), cfg.EndHour, 0, 0, 0, cfg.Location)

		for slotStart := dayStart; slotStart.Before(dayEnd); slotStart = slotStart.Add(cfg.duration()) {
			if !slotStart.After(now) {
				continue
			}
			candidate := BusyInterval{Start: slotStart, End: slotStart.Add(cfg.duration())}
			if isBusy(candidate, busy) {
				continue
			}
			slots = append(slots, slotStart)
		}
	}

	return slots
}

func isBusy(candidate BusyInterval, busy []BusyInterval) bool {
	for _, b := range busy {
		if candidate.Overlaps(b) {
			return true
		}
	}
	return false
}
