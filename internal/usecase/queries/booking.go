package queries

import (
	"context"
	"slices"
	"time"

	"slotbook/internal/domain/booking"
	"slotbook/internal/domain/schedule"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/pkg/config"
	"slotbook/internal/pkg/errs"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID                 uuid.UUID  `json:"id"`
	CustomerID         uuid.UUID  `json:"customer_id"`
	ProviderID         uuid.UUID  `json:"provider_id"`
	ServiceID          uuid.UUID  `json:"service_id"`
	StartTime          time.Time  `json:"start_time"`
	EndTime            time.Time  `json:"end_time"`
	Status             string     `json:"status"`
	PriceCents         int64      `json:"price_cents"`
	Note               *string    `json:"note,omitempty"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
	CancellationReason *string    `json:"cancellation_reason,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

type HistoryEntry struct {
	BookingID uuid.UUID `json:"booking_id"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Reason    *string   `json:"reason,omitempty"`
	Notes     *string   `json:"notes,omitempty"`
	ChangedAt time.Time `json:"changed_at"`
	ChangedBy string    `json:"changed_by"`
}

type TransitionOption struct {
	To             string `json:"to"`
	RequiresReason bool   `json:"requires_reason"`
	DisplayName    string `json:"display_name"`
	Description    string `json:"description"`
}

func NewBookingView(b *booking.Booking) *BookingView {
	return &BookingView{
		ID:                 b.ID(),
		CustomerID:         b.CustomerID(),
		ProviderID:         b.ProviderID(),
		ServiceID:          b.ServiceID(),
		StartTime:          b.Slot().Start(),
		EndTime:            b.Slot().End(),
		Status:             b.Status().String(),
		PriceCents:         b.Price().Cents(),
		Note:               b.Note(),
		CancelledAt:        b.CancelledAt(),
		CancellationReason: b.CancellationReason(),
		CreatedAt:          b.CreatedAt(),
		UpdatedAt:          b.UpdatedAt(),
	}
}

// Read-side ports
type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	FindByProviderAndDate(ctx context.Context, providerID uuid.UUID, date time.Time) ([]*booking.Booking, error)
	ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]booking.StatusTransition, error)
}

type ServiceReader interface {
	FindServiceByID(ctx context.Context, id uuid.UUID) (*booking.Service, error)
}

type HoursReader interface {
	HoursForProvider(ctx context.Context, providerID uuid.UUID) (schedule.BusinessHours, error)
}

type BookingQueries interface {
	AvailableSlots(ctx context.Context, providerID uuid.UUID, date time.Time, serviceID uuid.UUID) ([]string, error)
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	History(ctx context.Context, bookingID uuid.UUID) ([]HistoryEntry, error)
	AllowedTransitions(status string) ([]TransitionOption, error)
}

type bookingQueriesImpl struct {
	store   BookingReadStore
	catalog ServiceReader
	hours   HoursReader
	clock   clock.Clock
	cfg     config.BookingConfig
}

func NewBookingQueries(
	store BookingReadStore,
	catalog ServiceReader,
	hours HoursReader,
	clk clock.Clock,
	cfg config.BookingConfig,
) BookingQueries {
	return &bookingQueriesImpl{
		store:   store,
		catalog: catalog,
		hours:   hours,
		clock:   clk,
		cfg:     cfg,
	}
}

// AvailableSlots enumerates free "HH:mm" start times for the provider on the
// given date, sized by the service's duration, against the current snapshot
// of non-cancelled bookings.
func (q *bookingQueriesImpl) AvailableSlots(ctx context.Context, providerID uuid.UUID, date time.Time, serviceID uuid.UUID) ([]string, error) {
	svc, err := q.catalog.FindServiceByID(ctx, serviceID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrServiceNotFound)
	}

	hours, err := q.hours.HoursForProvider(ctx, providerID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrProviderNotFound)
	}

	existing, err := q.store.FindByProviderAndDate(ctx, providerID, date)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	return slices.Collect(schedule.Slots(schedule.SlotParams{
		Date:              date,
		DurationMinutes:   svc.DurationMinutes,
		StepMinutes:       q.cfg.SlotStepMinutes,
		MinimumGapMinutes: q.cfg.MinimumGapMinutes,
		Hours:             hours,
		Existing:          occupiedIntervals(existing),
		Now:               q.clock.Now(),
	})), nil
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	b, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrBookingNotFound)
	}
	return NewBookingView(b), nil
}

func (q *bookingQueriesImpl) History(ctx context.Context, bookingID uuid.UUID) ([]HistoryEntry, error) {
	if _, err := q.store.FindByID(ctx, bookingID); err != nil {
		return nil, errs.Mark(err, errs.ErrBookingNotFound)
	}

	entries, err := q.store.ListByBooking(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	out := make([]HistoryEntry, len(entries))
	for i, e := range entries {
		out[i] = HistoryEntry{
			BookingID: e.BookingID,
			From:      e.From.String(),
			To:        e.To.String(),
			Reason:    e.Reason,
			Notes:     e.Notes,
			ChangedAt: e.ChangedAt,
			ChangedBy: e.ChangedBy,
		}
	}
	return out, nil
}

// AllowedTransitions re-derives the allowed set from the transition table,
// never from the ledger.
func (q *bookingQueriesImpl) AllowedTransitions(status string) ([]TransitionOption, error) {
	parsed, err := booking.ParseStatus(status)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	rules := booking.AllowedTransitions(parsed)
	out := make([]TransitionOption, len(rules))
	for i, r := range rules {
		out[i] = TransitionOption{
			To:             r.To.String(),
			RequiresReason: r.RequiresReason,
			DisplayName:    r.DisplayName,
			Description:    r.Description,
		}
	}
	return out, nil
}

func occupiedIntervals(bookings []*booking.Booking) []schedule.BookedInterval {
	out := make([]schedule.BookedInterval, len(bookings))
	for i, b := range bookings {
		out[i] = b.OccupiedInterval()
	}
	return out
}
