package schedule

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidTimeOfDay = errors.New("invalid time of day")
	ErrInvalidHours     = errors.New("closing time must be after opening time")
)

// TimeOfDay is a clock time without a date, stored as minutes since midnight.
type TimeOfDay int

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, ErrInvalidTimeOfDay
	}
	return TimeOfDay(hour*60 + minute), nil
}

// ParseTimeOfDay parses "HH:mm".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, ErrInvalidTimeOfDay
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

func (t TimeOfDay) Minutes() int {
	return int(t)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// At anchors the time of day onto the calendar day of date, in UTC.
func (t TimeOfDay) At(date time.Time) time.Time {
	d := date.UTC()
	return time.Date(d.Year(), d.Month(), d.Day(), int(t)/60, int(t)%60, 0, 0, time.UTC)
}

// timeOfDayOf truncates sub-minute precision; booking times are minute-granular.
func timeOfDayOf(t time.Time) TimeOfDay {
	u := t.UTC()
	return TimeOfDay(u.Hour()*60 + u.Minute())
}

// TimeRange is a half-open interval [start, end). It carries no validity
// guarantee of its own; the conflict guard reports InvalidInterval so that
// callers get a distinct reason code instead of a constructor failure.
type TimeRange struct {
	start time.Time
	end   time.Time
}

func NewTimeRange(start, end time.Time) TimeRange {
	return TimeRange{start: start.UTC(), end: end.UTC()}
}

func (r TimeRange) Start() time.Time {
	return r.start
}

func (r TimeRange) End() time.Time {
	return r.end
}

func (r TimeRange) Duration() time.Duration {
	return r.end.Sub(r.start)
}

func (r TimeRange) IsValid() bool {
	return r.end.After(r.start)
}

func (r TimeRange) Overlaps(other TimeRange) bool {
	return Overlaps(r.start, r.end, other.start, other.end)
}

func (r TimeRange) String() string {
	return fmt.Sprintf("[%s, %s)", r.start.Format(time.RFC3339), r.end.Format(time.RFC3339))
}

// BusinessHours is the allowed booking window for a single provider or tenant.
// It is always threaded in as an explicit parameter; nothing in this package
// reads ambient configuration.
type BusinessHours struct {
	opening    TimeOfDay
	closing    TimeOfDay
	closedDays map[time.Weekday]bool
}

func NewBusinessHours(opening, closing TimeOfDay, closedDays ...time.Weekday) (BusinessHours, error) {
	if closing <= opening {
		return BusinessHours{}, ErrInvalidHours
	}
	closed := make(map[time.Weekday]bool, len(closedDays))
	for _, d := range closedDays {
		closed[d] = true
	}
	return BusinessHours{opening: opening, closing: closing, closedDays: closed}, nil
}

func (h BusinessHours) Opening() TimeOfDay {
	return h.opening
}

func (h BusinessHours) Closing() TimeOfDay {
	return h.closing
}

func (h BusinessHours) IsClosedOn(day time.Weekday) bool {
	return h.closedDays[day]
}

func (h BusinessHours) ClosedDays() []time.Weekday {
	days := make([]time.Weekday, 0, len(h.closedDays))
	for d := time.Sunday; d <= time.Saturday; d++ {
		if h.closedDays[d] {
			days = append(days, d)
		}
	}
	return days
}
