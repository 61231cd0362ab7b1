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

func TestNewBooking(t *testing.T) {
	price, err := booking.NewMoney(4500)
	require.NoError(t, err)

	customerID, providerID, serviceID := uuid.New(), uuid.New(), uuid.New()
	slot := schedule.NewTimeRange(testNow.Add(time.Hour), testNow.Add(90*time.Minute))

	b := booking.NewBooking(customerID, providerID, serviceID, slot, price, ptr.To("first visit"), testNow)

	assert.NotEqual(t, uuid.Nil, b.ID())
	assert.Equal(t, customerID, b.CustomerID())
	assert.Equal(t, providerID, b.ProviderID())
	assert.Equal(t, serviceID, b.ServiceID())
	assert.Equal(t, booking.StatusPending, b.Status())
	assert.Equal(t, int64(4500), b.Price().Cents())
	assert.Equal(t, testNow, b.CreatedAt())
	assert.Equal(t, testNow, b.UpdatedAt())
	assert.False(t, b.IsCancelled())
	assert.Nil(t, b.CancelledAt())

	occupied := b.OccupiedInterval()
	assert.Equal(t, b.ID(), occupied.BookingID)
	assert.Equal(t, slot, occupied.Slot)
}

func TestBookingReschedule(t *testing.T) {
	b := newTestBooking(t, booking.StatusPending, 3*time.Hour)
	newProvider, newService := uuid.New(), uuid.New()
	newSlot := schedule.NewTimeRange(testNow.Add(5*time.Hour), testNow.Add(6*time.Hour))
	later := testNow.Add(time.Minute)

	b.Reschedule(newProvider, newService, newSlot, later)

	assert.Equal(t, newProvider, b.ProviderID())
	assert.Equal(t, newService, b.ServiceID())
	assert.Equal(t, newSlot, b.Slot())
	assert.Equal(t, later, b.UpdatedAt())
	assert.Equal(t, booking.StatusPending, b.Status())
}

func TestMoney(t *testing.T) {
	_, err := booking.NewMoney(-1)
	assert.ErrorIs(t, err, booking.ErrNegativePrice)

	m, err := booking.NewMoney(1250)
	require.NoError(t, err)
	assert.Equal(t, int64(1250), m.Cents())
	assert.InDelta(t, 12.5, m.Dollars(), 0.001)
}
