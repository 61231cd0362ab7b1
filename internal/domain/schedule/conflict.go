package schedule

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type ConflictKind string

const (
	KindOutsideBusinessHours ConflictKind = "OUTSIDE_BUSINESS_HOURS"
	KindInPast               ConflictKind = "IN_PAST"
	KindInvalidInterval      ConflictKind = "INVALID_INTERVAL"
	KindDoubleBooked         ConflictKind = "DOUBLE_BOOKED"
	KindInsufficientGap      ConflictKind = "INSUFFICIENT_GAP"
)

// BookedInterval is the slice of an existing booking the guard needs: its
// identity and its occupied time range.
type BookedInterval struct {
	BookingID uuid.UUID
	Slot      TimeRange
}

// ConflictError is the discriminated validation outcome. It is an expected,
// per-request business result; Conflict is set for the two kinds that collide
// with an existing booking so callers can build a user-facing message.
type ConflictError struct {
	Kind     ConflictKind
	Conflict *BookedInterval
}

func (e *ConflictError) Error() string {
	if e.Conflict != nil {
		return fmt.Sprintf("%s: conflicts with booking %s at %s", e.Kind, e.Conflict.BookingID, e.Conflict.Slot)
	}
	return string(e.Kind)
}

func IsConflictKind(err error, kind ConflictKind) bool {
	var e *ConflictError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Candidate is a proposed booking interval for a provider. ExcludeBookingID is
// set on reschedule so a booking is never in conflict with itself.
type Candidate struct {
	ProviderID       uuid.UUID
	Slot             TimeRange
	ExcludeBookingID *uuid.UUID
}

// Guard validates a single candidate against a snapshot of the provider's
// existing bookings. It is stateless; the caller owns the snapshot's
// freshness and must serialize validate-then-write per provider (see the
// booking store contract).
type Guard struct {
	minimumGap time.Duration
}

func NewGuard(minimumGapMinutes int) Guard {
	return Guard{minimumGap: time.Duration(minimumGapMinutes) * time.Minute}
}

func (g Guard) MinimumGap() time.Duration {
	return g.minimumGap
}

// Validate runs the ordered checks and returns nil or a *ConflictError with
// the first failing kind. existing must already be filtered to the candidate's
// provider, non-cancelled only.
func (g Guard) Validate(c Candidate, hours BusinessHours, existing []BookedInterval, now time.Time) error {
	if !WithinBusinessHours(c.Slot.Start(), c.Slot.End(), hours) {
		return &ConflictError{Kind: KindOutsideBusinessHours}
	}
	if !IsFuture(c.Slot.Start(), now) {
		return &ConflictError{Kind: KindInPast}
	}
	if !c.Slot.IsValid() {
		return &ConflictError{Kind: KindInvalidInterval}
	}

	for i := range existing {
		if c.skips(existing[i]) {
			continue
		}
		if c.Slot.Overlaps(existing[i].Slot) {
			return &ConflictError{Kind: KindDoubleBooked, Conflict: &existing[i]}
		}
	}
	for i := range existing {
		if c.skips(existing[i]) {
			continue
		}
		b := existing[i].Slot
		if BufferOverlaps(c.Slot.Start(), c.Slot.End(), b.Start(), b.End(), g.minimumGap) {
			return &ConflictError{Kind: KindInsufficientGap, Conflict: &existing[i]}
		}
	}
	return nil
}

func (c Candidate) skips(b BookedInterval) bool {
	return c.ExcludeBookingID != nil && *c.ExcludeBookingID == b.BookingID
}
