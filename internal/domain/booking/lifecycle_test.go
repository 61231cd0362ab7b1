//go:build unit

package booking_test

import (
	"testing"
	"time"

	"slotbook/internal/domain/booking"
	"slotbook/internal/domain/schedule"
	"slotbook/internal/pkg/ptr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestBooking(t *testing.T, status booking.Status, startsIn time.Duration) *booking.Booking {
	t.Helper()
	price, err := booking.NewMoney(5000)
	require.NoError(t, err)

	start := testNow.Add(startsIn)
	return booking.Reconstruct(
		uuid.New(), uuid.New(), uuid.New(), uuid.New(),
		schedule.NewTimeRange(start, start.Add(30*time.Minute)),
		status, price, nil, nil, nil,
		testNow.Add(-24*time.Hour), testNow.Add(-24*time.Hour),
	)
}

func TestEngineTransition(t *testing.T) {
	engine := booking.NewEngine(2 * time.Hour)

	t.Run("pending to confirmed", func(t *testing.T) {
		b := newTestBooking(t, booking.StatusPending, 3*time.Hour)

		res, err := engine.Transition(b, booking.StatusConfirmed, nil, nil, "admin:1", testNow)
		require.NoError(t, err)

		assert.Equal(t, booking.StatusPending, res.From)
		assert.Equal(t, booking.StatusConfirmed, res.To)
		assert.Equal(t, testNow, res.ChangedAt)
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.Equal(t, testNow, b.UpdatedAt())
		assert.Nil(t, b.CancelledAt())

		assert.Equal(t, b.ID(), res.Entry.BookingID)
		assert.Equal(t, "admin:1", res.Entry.ChangedBy)
	})

	t.Run("cancel with reason sets cancellation fields", func(t *testing.T) {
		b := newTestBooking(t, booking.StatusConfirmed, 3*time.Hour)
		reason := ptr.To("customer request")
		notes := ptr.To("rebooking next week")

		res, err := engine.Transition(b, booking.StatusCancelled, reason, notes, "admin:1", testNow)
		require.NoError(t, err)

		assert.Equal(t, booking.StatusCancelled, b.Status())
		require.NotNil(t, b.CancelledAt())
		assert.Equal(t, testNow, *b.CancelledAt())
		require.NotNil(t, b.CancellationReason())
		assert.Equal(t, "customer request", *b.CancellationReason())

		assert.Equal(t, booking.StatusConfirmed, res.Entry.From)
		assert.Equal(t, booking.StatusCancelled, res.Entry.To)
		assert.Equal(t, reason, res.Entry.Reason)
		assert.Equal(t, notes, res.Entry.Notes)
	})

	t.Run("unknown status", func(t *testing.T) {
		b := newTestBooking(t, booking.StatusPending, 3*time.Hour)

		_, err := engine.Transition(b, booking.Status("archived"), nil, nil, "admin:1", testNow)
		assert.True(t, booking.IsTransitionKind(err, booking.KindUnknownStatus))
		assert.Equal(t, booking.StatusPending, b.Status())
	})

	t.Run("no edge from pending to completed", func(t *testing.T) {
		b := newTestBooking(t, booking.StatusPending, 3*time.Hour)

		_, err := engine.Transition(b, booking.StatusCompleted, nil, nil, "admin:1", testNow)
		assert.True(t, booking.IsTransitionKind(err, booking.KindInvalidTransition))
	})

	t.Run("terminal statuses never transition again", func(t *testing.T) {
		for _, status := range []booking.Status{booking.StatusCompleted, booking.StatusCancelled, booking.StatusNoShow} {
			b := newTestBooking(t, status, 3*time.Hour)
			for _, to := range []booking.Status{booking.StatusPending, booking.StatusConfirmed, booking.StatusCompleted, booking.StatusCancelled, booking.StatusNoShow} {
				_, err := engine.Transition(b, to, ptr.To("x"), nil, "admin:1", testNow)
				assert.True(t, booking.IsTransitionKind(err, booking.KindInvalidTransition), "%s -> %s", status, to)
			}
		}
	})

	t.Run("cancellation requires a reason", func(t *testing.T) {
		b := newTestBooking(t, booking.StatusConfirmed, 3*time.Hour)

		_, err := engine.Transition(b, booking.StatusCancelled, nil, nil, "admin:1", testNow)
		assert.True(t, booking.IsTransitionKind(err, booking.KindReasonRequired))

		_, err = engine.Transition(b, booking.StatusCancelled, ptr.To(""), nil, "admin:1", testNow)
		assert.True(t, booking.IsTransitionKind(err, booking.KindReasonRequired))
	})
}

func TestCancellationPolicy(t *testing.T) {
	engine := booking.NewEngine(2 * time.Hour)
	reason := ptr.To("x")

	t.Run("booking starting in one hour is too close", func(t *testing.T) {
		b := newTestBooking(t, booking.StatusConfirmed, time.Hour)

		_, err := engine.Transition(b, booking.StatusCancelled, reason, nil, "admin:1", testNow)
		assert.True(t, booking.IsTransitionKind(err, booking.KindTooCloseToCancel))
		assert.Equal(t, booking.StatusConfirmed, b.Status())
	})

	t.Run("booking started ten minutes ago has passed", func(t *testing.T) {
		b := newTestBooking(t, booking.StatusConfirmed, -10*time.Minute)

		_, err := engine.Transition(b, booking.StatusCancelled, reason, nil, "admin:1", testNow)
		assert.True(t, booking.IsTransitionKind(err, booking.KindPastBooking))
	})

	t.Run("booking starting in three hours can be cancelled", func(t *testing.T) {
		b := newTestBooking(t, booking.StatusConfirmed, 3*time.Hour)

		_, err := engine.Transition(b, booking.StatusCancelled, reason, nil, "admin:1", testNow)
		assert.NoError(t, err)
	})

	t.Run("exactly at the cutoff is allowed", func(t *testing.T) {
		b := newTestBooking(t, booking.StatusConfirmed, 2*time.Hour)

		// delta == cutoff is allowed; one second less is not
		_, err := engine.Transition(b, booking.StatusCancelled, reason, nil, "admin:1", testNow)
		assert.NoError(t, err)

		b2 := newTestBooking(t, booking.StatusConfirmed, 2*time.Hour-time.Second)
		_, err = engine.Transition(b2, booking.StatusCancelled, reason, nil, "admin:1", testNow)
		assert.True(t, booking.IsTransitionKind(err, booking.KindTooCloseToCancel))
	})

	t.Run("policy does not gate non-cancel transitions", func(t *testing.T) {
		b := newTestBooking(t, booking.StatusConfirmed, -10*time.Minute)

		_, err := engine.Transition(b, booking.StatusCompleted, nil, nil, "admin:1", testNow)
		assert.NoError(t, err)
	})

	t.Run("zero cutoff falls back to the default", func(t *testing.T) {
		e := booking.NewEngine(0)
		assert.Equal(t, booking.DefaultCancelCutoff, e.CancelCutoff())
	})
}
