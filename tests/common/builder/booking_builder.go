//go:build unit || e2e

package builder

import (
	"time"

	dombooking "slotbook/internal/domain/booking"
	"slotbook/internal/domain/schedule"
	reqdto "slotbook/internal/handler/dto/request"
	"slotbook/internal/usecase/commands"
	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingBuilder struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	ProviderID uuid.UUID
	ServiceID  uuid.UUID
	StartTime  time.Time
	EndTime    time.Time
	Status     dombooking.Status
	PriceCents int64
	Note       *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func NewBookingBuilder() *BookingBuilder {
	start := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	created := start.Add(-48 * time.Hour)
	return &BookingBuilder{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		ProviderID: uuid.New(),
		ServiceID:  uuid.New(),
		StartTime:  start,
		EndTime:    start.Add(30 * time.Minute),
		Status:     dombooking.StatusPending,
		PriceCents: 3000,
		CreatedAt:  created,
		UpdatedAt:  created,
	}
}

// Clone returns an independent copy, so one builder can parameterize several
// table-driven cases.
func (b *BookingBuilder) Clone() *BookingBuilder {
	var cp BookingBuilder
	if err := copier.Copy(&cp, b); err != nil {
		panic(err)
	}
	return &cp
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	price, err := dombooking.NewMoney(b.PriceCents)
	if err != nil {
		return nil, err
	}
	return dombooking.Reconstruct(
		b.ID, b.CustomerID, b.ProviderID, b.ServiceID,
		schedule.NewTimeRange(b.StartTime, b.EndTime),
		b.Status, price, b.Note, nil, nil,
		b.CreatedAt, b.UpdatedAt,
	), nil
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		CustomerID: b.CustomerID,
		ProviderID: b.ProviderID,
		ServiceID:  b.ServiceID,
		StartTime:  b.StartTime,
		EndTime:    b.EndTime,
		Note:       b.Note,
	}
}

func (b *BookingBuilder) BuildCreateParams() commands.CreateBookingParams {
	return commands.CreateBookingParams{
		CustomerID: b.CustomerID,
		ProviderID: b.ProviderID,
		ServiceID:  b.ServiceID,
		StartTime:  b.StartTime,
		EndTime:    b.EndTime,
		Note:       b.Note,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:         b.ID,
		CustomerID: b.CustomerID,
		ProviderID: b.ProviderID,
		ServiceID:  b.ServiceID,
		StartTime:  b.StartTime,
		EndTime:    b.EndTime,
		Status:     b.Status.String(),
		PriceCents: b.PriceCents,
		Note:       b.Note,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithCustomerID(customerID uuid.UUID) *BookingBuilder {
	b.CustomerID = customerID
	return b
}

func (b *BookingBuilder) WithProviderID(providerID uuid.UUID) *BookingBuilder {
	b.ProviderID = providerID
	return b
}

func (b *BookingBuilder) WithServiceID(serviceID uuid.UUID) *BookingBuilder {
	b.ServiceID = serviceID
	return b
}

func (b *BookingBuilder) WithSlot(start, end time.Time) *BookingBuilder {
	b.StartTime = start
	b.EndTime = end
	return b
}

func (b *BookingBuilder) WithStatus(status dombooking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithPriceCents(cents int64) *BookingBuilder {
	b.PriceCents = cents
	return b
}

func (b *BookingBuilder) WithNote(note string) *BookingBuilder {
	b.Note = &note
	return b
}

func (b *BookingBuilder) AsConfirmed() *BookingBuilder {
	b.Status = dombooking.StatusConfirmed
	return b
}

func (b *BookingBuilder) AsCancelled() *BookingBuilder {
	b.Status = dombooking.StatusCancelled
	return b
}
