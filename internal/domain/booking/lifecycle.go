package booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// StatusTransition is one append-only ledger entry. ChangedBy is an opaque
// identity string supplied by the caller.
type StatusTransition struct {
	BookingID uuid.UUID
	From      Status
	To        Status
	Reason    *string
	Notes     *string
	ChangedAt time.Time
	ChangedBy string
}

type TransitionErrorKind string

const (
	KindUnknownStatus     TransitionErrorKind = "UNKNOWN_STATUS"
	KindInvalidTransition TransitionErrorKind = "INVALID_TRANSITION"
	KindReasonRequired    TransitionErrorKind = "REASON_REQUIRED"
	KindPastBooking       TransitionErrorKind = "PAST_BOOKING"
	KindTooCloseToCancel  TransitionErrorKind = "TOO_CLOSE_TO_CANCEL"
)

// TransitionError is the discriminated lifecycle outcome, an expected
// per-request business result.
type TransitionError struct {
	Kind TransitionErrorKind
	From Status
	To   Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", e.Kind, e.From, e.To)
}

func IsTransitionKind(err error, kind TransitionErrorKind) bool {
	var e *TransitionError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

type TransitionResult struct {
	From      Status
	To        Status
	ChangedAt time.Time
	Entry     StatusTransition
}

const DefaultCancelCutoff = 2 * time.Hour

// Engine drives bookings along the transition table and gates cancellation on
// wall-clock distance to the booking's start. now is always passed in by the
// caller; the engine never reads a clock.
type Engine struct {
	cancelCutoff time.Duration
}

func NewEngine(cancelCutoff time.Duration) *Engine {
	if cancelCutoff <= 0 {
		cancelCutoff = DefaultCancelCutoff
	}
	return &Engine{cancelCutoff: cancelCutoff}
}

func (e *Engine) CancelCutoff() time.Duration {
	return e.cancelCutoff
}

// Transition mutates the booking and returns the ledger entry to append. The
// caller must apply the mutation and the append as one atomic unit of work
// against its store.
func (e *Engine) Transition(b *Booking, to Status, reason, notes *string, changedBy string, now time.Time) (*TransitionResult, error) {
	from := b.Status()

	if !to.IsValid() {
		return nil, &TransitionError{Kind: KindUnknownStatus, From: from, To: to}
	}
	rule, ok := RuleFor(from, to)
	if !ok {
		return nil, &TransitionError{Kind: KindInvalidTransition, From: from, To: to}
	}
	if rule.RequiresReason && (reason == nil || *reason == "") {
		return nil, &TransitionError{Kind: KindReasonRequired, From: from, To: to}
	}
	if to == StatusCancelled {
		if err := e.checkCancelPolicy(b, from, now); err != nil {
			return nil, err
		}
	}

	b.applyStatus(to, reason, now)

	entry := StatusTransition{
		BookingID: b.ID(),
		From:      from,
		To:        to,
		Reason:    reason,
		Notes:     notes,
		ChangedAt: now,
		ChangedBy: changedBy,
	}
	return &TransitionResult{From: from, To: to, ChangedAt: now, Entry: entry}, nil
}

// checkCancelPolicy rejects cancellation once the booking has started and
// inside the cutoff window before the start.
func (e *Engine) checkCancelPolicy(b *Booking, from Status, now time.Time) error {
	delta := b.Slot().Start().Sub(now)
	if delta < 0 {
		return &TransitionError{Kind: KindPastBooking, From: from, To: StatusCancelled}
	}
	if delta < e.cancelCutoff {
		return &TransitionError{Kind: KindTooCloseToCancel, From: from, To: StatusCancelled}
	}
	return nil
}
