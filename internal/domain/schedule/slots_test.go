//go:build unit

package schedule_test

import (
	"slices"
	"testing"
	"time"

	"slotbook/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slotParams(t *testing.T, existing []schedule.BookedInterval) schedule.SlotParams {
	t.Helper()
	return schedule.SlotParams{
		Date:              monday,
		DurationMinutes:   30,
		StepMinutes:       30,
		MinimumGapMinutes: 15,
		Hours:             defaultHours(t),
		Existing:          existing,
		Now:               at(t, monday.AddDate(0, 0, -1), "12:00"),
	}
}

func TestSlots(t *testing.T) {
	t.Run("full open day", func(t *testing.T) {
		got := slices.Collect(schedule.Slots(slotParams(t, nil)))

		require.Len(t, got, 18)
		assert.Equal(t, "09:00", got[0])
		assert.Equal(t, "17:30", got[len(got)-1])
		assert.True(t, slices.IsSorted(got))
	})

	t.Run("existing booking blocks its padded neighborhood", func(t *testing.T) {
		existing := []schedule.BookedInterval{
			{BookingID: uuid.New(), Slot: schedule.NewTimeRange(at(t, monday, "10:00"), at(t, monday, "10:30"))},
		}
		got := slices.Collect(schedule.Slots(slotParams(t, existing)))

		assert.NotContains(t, got, "09:30")
		assert.NotContains(t, got, "10:00")
		assert.NotContains(t, got, "10:30")
		assert.Contains(t, got, "09:00")
		assert.Contains(t, got, "11:00")
		assert.Len(t, got, 15)
	})

	t.Run("closed day yields nothing", func(t *testing.T) {
		p := slotParams(t, nil)
		p.Date = monday.AddDate(0, 0, -1) // Sunday
		assert.Empty(t, slices.Collect(schedule.Slots(p)))
	})

	t.Run("date in the past yields nothing", func(t *testing.T) {
		p := slotParams(t, nil)
		p.Now = at(t, monday.AddDate(0, 0, 1), "12:00")
		assert.Empty(t, slices.Collect(schedule.Slots(p)))
	})

	t.Run("today only future starts are offered", func(t *testing.T) {
		p := slotParams(t, nil)
		p.Now = at(t, monday, "12:00")
		got := slices.Collect(schedule.Slots(p))

		require.NotEmpty(t, got)
		assert.Equal(t, "12:30", got[0])
	})

	t.Run("duration that does not divide the day stops before closing", func(t *testing.T) {
		p := slotParams(t, nil)
		p.DurationMinutes = 45
		got := slices.Collect(schedule.Slots(p))

		assert.Equal(t, "17:00", got[len(got)-1]) // 17:30+45m would pass closing
	})

	t.Run("zero step falls back to the default", func(t *testing.T) {
		p := slotParams(t, nil)
		p.StepMinutes = 0
		got := slices.Collect(schedule.Slots(p))
		assert.Len(t, got, 18)
	})

	t.Run("caller timezone cannot shift the day", func(t *testing.T) {
		p := slotParams(t, nil)
		p.Date = time.Date(monday.Year(), monday.Month(), monday.Day(), 23, 0, 0, 0, time.FixedZone("UTC+5", 5*3600))
		got := slices.Collect(schedule.Slots(p))
		assert.Len(t, got, 18)
	})

	t.Run("sequence is restartable", func(t *testing.T) {
		seq := schedule.Slots(slotParams(t, nil))
		first := slices.Collect(seq)
		second := slices.Collect(seq)
		assert.Equal(t, first, second)
	})

	t.Run("early break stops iteration", func(t *testing.T) {
		var got []string
		for s := range schedule.Slots(slotParams(t, nil)) {
			got = append(got, s)
			if len(got) == 3 {
				break
			}
		}
		assert.Equal(t, []string{"09:00", "09:30", "10:00"}, got)
	})

	t.Run("every offered slot passes validation", func(t *testing.T) {
		existing := []schedule.BookedInterval{
			{BookingID: uuid.New(), Slot: schedule.NewTimeRange(at(t, monday, "10:00"), at(t, monday, "10:30"))},
			{BookingID: uuid.New(), Slot: schedule.NewTimeRange(at(t, monday, "14:00"), at(t, monday, "15:00"))},
		}
		p := slotParams(t, existing)
		guard := schedule.NewGuard(p.MinimumGapMinutes)
		providerID := uuid.New()

		for s := range schedule.Slots(p) {
			start := at(t, monday, s)
			c := schedule.Candidate{
				ProviderID: providerID,
				Slot:       schedule.NewTimeRange(start, start.Add(30*time.Minute)),
			}
			assert.NoError(t, guard.Validate(c, p.Hours, existing, p.Now), "slot %s", s)
		}
	})
}
