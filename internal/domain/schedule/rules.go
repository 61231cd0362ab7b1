package schedule

import "time"

// Pure interval predicates. All intervals are half-open [start, end): touching
// boundaries (aEnd == bStart) never count as an overlap. Back-to-back bookings
// are kept apart by the gap check, not by the raw overlap check.

func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// BufferOverlaps pads b by gap on both sides before the overlap test, so the
// minimum gap is enforced symmetrically in both directions.
func BufferOverlaps(aStart, aEnd, bStart, bEnd time.Time, gap time.Duration) bool {
	return Overlaps(aStart, aEnd, bStart.Add(-gap), bEnd.Add(gap))
}

// WithinBusinessHours requires the interval to sit inside a single calendar
// day (UTC) that is not a closed day, with start at or after opening and end
// at or before closing.
func WithinBusinessHours(start, end time.Time, hours BusinessHours) bool {
	s, e := start.UTC(), end.UTC()

	sy, sm, sd := s.Date()
	ey, em, ed := e.Date()
	if sy != ey || sm != em || sd != ed {
		return false
	}
	if hours.IsClosedOn(s.Weekday()) {
		return false
	}
	return timeOfDayOf(s) >= hours.opening && timeOfDayOf(e) <= hours.closing
}

func IsFuture(start, now time.Time) bool {
	return start.After(now)
}
