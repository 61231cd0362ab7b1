package booking

import (
	"time"

	"slotbook/internal/domain/schedule"

	"github.com/google/uuid"
)

// Booking is a reserved time interval for a customer, provider and service.
// Time-slot changes go through the conflict guard before Reschedule is
// applied; status changes go through the lifecycle engine. The entity is never
// deleted by this layer.
type Booking struct {
	id                 uuid.UUID
	customerID         uuid.UUID
	providerID         uuid.UUID
	serviceID          uuid.UUID
	slot               schedule.TimeRange
	status             Status
	price              Money
	note               *string
	cancelledAt        *time.Time
	cancellationReason *string
	createdAt          time.Time
	updatedAt          time.Time
}

func NewBooking(
	customerID, providerID, serviceID uuid.UUID,
	slot schedule.TimeRange,
	price Money,
	note *string,
	now time.Time,
) *Booking {
	return &Booking{
		id:         uuid.New(),
		customerID: customerID,
		providerID: providerID,
		serviceID:  serviceID,
		slot:       slot,
		status:     StatusPending,
		price:      price,
		note:       note,
		createdAt:  now,
		updatedAt:  now,
	}
}

func Reconstruct(
	id, customerID, providerID, serviceID uuid.UUID,
	slot schedule.TimeRange,
	status Status,
	price Money,
	note *string,
	cancelledAt *time.Time,
	cancellationReason *string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:                 id,
		customerID:         customerID,
		providerID:         providerID,
		serviceID:          serviceID,
		slot:               slot,
		status:             status,
		price:              price,
		note:               note,
		cancelledAt:        cancelledAt,
		cancellationReason: cancellationReason,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

func (b *Booking) ID() uuid.UUID               { return b.id }
func (b *Booking) CustomerID() uuid.UUID       { return b.customerID }
func (b *Booking) ProviderID() uuid.UUID       { return b.providerID }
func (b *Booking) ServiceID() uuid.UUID        { return b.serviceID }
func (b *Booking) Slot() schedule.TimeRange    { return b.slot }
func (b *Booking) Status() Status              { return b.status }
func (b *Booking) Price() Money                { return b.price }
func (b *Booking) Note() *string               { return b.note }
func (b *Booking) CancelledAt() *time.Time     { return b.cancelledAt }
func (b *Booking) CancellationReason() *string { return b.cancellationReason }
func (b *Booking) CreatedAt() time.Time        { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time        { return b.updatedAt }

func (b *Booking) IsCancelled() bool {
	return b.status == StatusCancelled
}

// OccupiedInterval is the booking's contribution to its provider's conflict
// snapshot.
func (b *Booking) OccupiedInterval() schedule.BookedInterval {
	return schedule.BookedInterval{BookingID: b.id, Slot: b.slot}
}

// Reschedule moves the booking to a validated time slot, optionally onto a
// different provider or service. The caller must have run the slot through
// the conflict guard with this booking's ID excluded.
func (b *Booking) Reschedule(providerID, serviceID uuid.UUID, slot schedule.TimeRange, now time.Time) {
	b.providerID = providerID
	b.serviceID = serviceID
	b.slot = slot
	b.updatedAt = now
}

// applyStatus mutates the booking for a transition already approved by the
// lifecycle engine.
func (b *Booking) applyStatus(to Status, reason *string, now time.Time) {
	b.status = to
	b.updatedAt = now
	if to == StatusCancelled {
		cancelledAt := now
		b.cancelledAt = &cancelledAt
		b.cancellationReason = reason
	}
}
