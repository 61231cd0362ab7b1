package schedule

import (
	"iter"
	"time"
)

const DefaultSlotStepMinutes = 30

// SlotParams describes one provider/day/service slot enumeration. Existing
// must already be filtered to the provider and calendar date, non-cancelled
// only.
type SlotParams struct {
	Date              time.Time
	DurationMinutes   int
	StepMinutes       int
	MinimumGapMinutes int
	Hours             BusinessHours
	Existing          []BookedInterval
	Now               time.Time
}

// Slots enumerates free start times for a single day as "HH:mm" strings, in
// ascending order. The sequence is lazy and restartable; it carries no booking
// semantics beyond "currently free against the given snapshot".
//
// The date is normalized to a UTC midnight boundary before iterating, so a
// caller-supplied date with unspecified time-zone kind cannot shift the day.
func Slots(p SlotParams) iter.Seq[string] {
	return func(yield func(string) bool) {
		day := time.Date(p.Date.Year(), p.Date.Month(), p.Date.Day(), 0, 0, 0, 0, time.UTC)
		if p.Hours.IsClosedOn(day.Weekday()) {
			return
		}

		step := p.StepMinutes
		if step <= 0 {
			step = DefaultSlotStepMinutes
		}
		duration := time.Duration(p.DurationMinutes) * time.Minute
		gap := time.Duration(p.MinimumGapMinutes) * time.Minute

		closing := p.Hours.Closing().At(day)

		for start := p.Hours.Opening().At(day); ; start = start.Add(time.Duration(step) * time.Minute) {
			end := start.Add(duration)
			if end.After(closing) {
				return
			}
			if !start.After(p.Now) {
				continue
			}
			if !WithinBusinessHours(start, end, p.Hours) {
				continue
			}
			if blocked(start, end, gap, p.Existing) {
				continue
			}
			if !yield(start.Format("15:04")) {
				return
			}
		}
	}
}

func blocked(start, end time.Time, gap time.Duration, existing []BookedInterval) bool {
	for _, b := range existing {
		if BufferOverlaps(start, end, b.Slot.Start(), b.Slot.End(), gap) {
			return true
		}
	}
	return false
}
