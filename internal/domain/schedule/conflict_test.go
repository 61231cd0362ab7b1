//go:build unit

package schedule_test

import (
	"testing"

	"slotbook/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuardValidate(t *testing.T) {
	hours := defaultHours(t)
	guard := schedule.NewGuard(15)
	now := at(t, monday, "08:00")

	existingID := uuid.New()
	existing := []schedule.BookedInterval{
		{BookingID: existingID, Slot: schedule.NewTimeRange(at(t, monday, "10:00"), at(t, monday, "10:30"))},
	}

	providerID := uuid.New()

	candidate := func(start, end string) schedule.Candidate {
		return schedule.Candidate{
			ProviderID: providerID,
			Slot:       schedule.NewTimeRange(at(t, monday, start), at(t, monday, end)),
		}
	}

	t.Run("free slot is accepted", func(t *testing.T) {
		err := guard.Validate(candidate("11:00", "11:30"), hours, existing, now)
		assert.NoError(t, err)
	})

	t.Run("overlap with an existing booking", func(t *testing.T) {
		err := guard.Validate(candidate("10:15", "10:45"), hours, existing, now)
		require.Error(t, err)
		assert.True(t, schedule.IsConflictKind(err, schedule.KindDoubleBooked))

		var conflictErr *schedule.ConflictError
		require.ErrorAs(t, err, &conflictErr)
		require.NotNil(t, conflictErr.Conflict)
		assert.Equal(t, existingID, conflictErr.Conflict.BookingID)
	})

	t.Run("only ten minutes of slack", func(t *testing.T) {
		err := guard.Validate(candidate("10:40", "11:10"), hours, existing, now)
		require.Error(t, err)
		assert.True(t, schedule.IsConflictKind(err, schedule.KindInsufficientGap))
	})

	t.Run("exactly the minimum gap is accepted", func(t *testing.T) {
		err := guard.Validate(candidate("10:45", "11:15"), hours, existing, now)
		assert.NoError(t, err)
	})

	t.Run("outside business hours", func(t *testing.T) {
		err := guard.Validate(candidate("08:00", "08:30"), hours, existing, now)
		assert.True(t, schedule.IsConflictKind(err, schedule.KindOutsideBusinessHours))
	})

	t.Run("closed day", func(t *testing.T) {
		sunday := monday.AddDate(0, 0, -1)
		c := schedule.Candidate{
			ProviderID: providerID,
			Slot:       schedule.NewTimeRange(at(t, sunday, "10:00"), at(t, sunday, "10:30")),
		}
		err := guard.Validate(c, hours, nil, now)
		assert.True(t, schedule.IsConflictKind(err, schedule.KindOutsideBusinessHours))
	})

	t.Run("start in the past", func(t *testing.T) {
		lateNow := at(t, monday, "12:00")
		err := guard.Validate(candidate("11:00", "11:30"), hours, existing, lateNow)
		assert.True(t, schedule.IsConflictKind(err, schedule.KindInPast))
	})

	t.Run("end before start", func(t *testing.T) {
		err := guard.Validate(candidate("12:00", "11:00"), hours, nil, now)
		assert.True(t, schedule.IsConflictKind(err, schedule.KindInvalidInterval))
	})

	t.Run("business hours checked before past", func(t *testing.T) {
		lateNow := at(t, monday, "12:00")
		err := guard.Validate(candidate("08:00", "08:30"), hours, existing, lateNow)
		assert.True(t, schedule.IsConflictKind(err, schedule.KindOutsideBusinessHours))
	})

	t.Run("double booking reported before gap violation", func(t *testing.T) {
		// 10:15-10:45 both overlaps the existing booking and violates the gap.
		err := guard.Validate(candidate("10:15", "10:45"), hours, existing, now)
		assert.True(t, schedule.IsConflictKind(err, schedule.KindDoubleBooked))
	})

	t.Run("reschedule excludes the booking itself", func(t *testing.T) {
		c := candidate("10:00", "10:30")
		c.ExcludeBookingID = &existingID
		assert.NoError(t, guard.Validate(c, hours, existing, now))

		// Same slot without the exclusion collides.
		assert.Error(t, guard.Validate(candidate("10:00", "10:30"), hours, existing, now))
	})
}
