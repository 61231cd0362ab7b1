package commands

import (
	"context"
	"time"

	"slotbook/internal/domain/booking"
	"slotbook/internal/domain/schedule"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateBookingParams struct {
	CustomerID uuid.UUID
	ProviderID uuid.UUID
	ServiceID  uuid.UUID
	StartTime  time.Time
	EndTime    time.Time
	Note       *string
}

type RescheduleBookingParams struct {
	StartTime  time.Time
	EndTime    time.Time
	ProviderID *uuid.UUID // nil keeps the current provider
	ServiceID  *uuid.UUID // nil keeps the current service
}

type TransitionStatusParams struct {
	Status    string
	Reason    *string
	Notes     *string
	ChangedBy string
}

type TransitionStatusResult struct {
	BookingID uuid.UUID
	From      string
	To        string
	ChangedAt time.Time
}

type BookingCommands interface {
	Create(ctx context.Context, p CreateBookingParams) (*queries.BookingView, error)
	Reschedule(ctx context.Context, id uuid.UUID, p RescheduleBookingParams) (*queries.BookingView, error)
	TransitionStatus(ctx context.Context, id uuid.UUID, p TransitionStatusParams) (*TransitionStatusResult, error)
}

type bookingCommandsImpl struct {
	store   BookingStore
	ledger  HistoryLedger
	catalog ServiceCatalog
	hours   HoursProvider
	guard   schedule.Guard
	engine  *booking.Engine
	clock   clock.Clock
}

func NewBookingCommands(
	store BookingStore,
	ledger HistoryLedger,
	catalog ServiceCatalog,
	hours HoursProvider,
	guard schedule.Guard,
	engine *booking.Engine,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		store:   store,
		ledger:  ledger,
		catalog: catalog,
		hours:   hours,
		guard:   guard,
		engine:  engine,
		clock:   clk,
	}
}

// Create validates the candidate interval and inserts the booking inside the
// provider's lock, so the conflict snapshot cannot go stale between the check
// and the write.
func (c *bookingCommandsImpl) Create(ctx context.Context, p CreateBookingParams) (*queries.BookingView, error) {
	svc, err := c.catalog.FindServiceByID(ctx, p.ServiceID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrServiceNotFound)
	}

	hours, err := c.hours.HoursForProvider(ctx, p.ProviderID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrProviderNotFound)
	}

	slot := schedule.NewTimeRange(p.StartTime, p.EndTime)

	var created *booking.Booking
	err = c.store.WithProviderLock(ctx, p.ProviderID, func(ctx context.Context) error {
		if err := c.validateSlot(ctx, p.ProviderID, slot, nil, hours); err != nil {
			return err
		}

		now := c.clock.Now()
		b := booking.NewBooking(p.CustomerID, p.ProviderID, p.ServiceID, slot, svc.Price, p.Note, now)
		if err := c.store.Insert(ctx, b); err != nil {
			return errs.Mark(err, errs.ErrStoreOperationFailed)
		}
		created = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return queries.NewBookingView(created), nil
}

// Reschedule revalidates the new interval with the booking's own prior
// interval excluded from the conflict set. When the provider changes, the
// target provider's lock guards the write; the booking simply disappears from
// the old provider's snapshot once updated.
func (c *bookingCommandsImpl) Reschedule(ctx context.Context, id uuid.UUID, p RescheduleBookingParams) (*queries.BookingView, error) {
	current, err := c.store.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrBookingNotFound)
	}

	providerID := current.ProviderID()
	if p.ProviderID != nil {
		providerID = *p.ProviderID
	}
	serviceID := current.ServiceID()
	if p.ServiceID != nil {
		serviceID = *p.ServiceID
	}

	if _, err := c.catalog.FindServiceByID(ctx, serviceID); err != nil {
		return nil, errs.Mark(err, errs.ErrServiceNotFound)
	}
	hours, err := c.hours.HoursForProvider(ctx, providerID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrProviderNotFound)
	}

	slot := schedule.NewTimeRange(p.StartTime, p.EndTime)

	var updated *booking.Booking
	err = c.store.WithProviderLock(ctx, providerID, func(ctx context.Context) error {
		b, err := c.store.FindByID(ctx, id)
		if err != nil {
			return errs.Mark(err, errs.ErrBookingNotFound)
		}

		excludeID := b.ID()
		if err := c.validateSlot(ctx, providerID, slot, &excludeID, hours); err != nil {
			return err
		}

		b.Reschedule(providerID, serviceID, slot, c.clock.Now())
		if err := c.store.Update(ctx, b); err != nil {
			return errs.Mark(err, errs.ErrStoreOperationFailed)
		}
		updated = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return queries.NewBookingView(updated), nil
}

// TransitionStatus drives the booking through the lifecycle engine. The
// status mutation and the ledger append happen together inside the provider
// lock; neither is observable without the other.
func (c *bookingCommandsImpl) TransitionStatus(ctx context.Context, id uuid.UUID, p TransitionStatusParams) (*TransitionStatusResult, error) {
	current, err := c.store.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrBookingNotFound)
	}

	var result *booking.TransitionResult
	err = c.store.WithProviderLock(ctx, current.ProviderID(), func(ctx context.Context) error {
		b, err := c.store.FindByID(ctx, id)
		if err != nil {
			return errs.Mark(err, errs.ErrBookingNotFound)
		}

		res, err := c.engine.Transition(b, booking.Status(p.Status), p.Reason, p.Notes, p.ChangedBy, c.clock.Now())
		if err != nil {
			return err
		}

		if err := c.store.Update(ctx, b); err != nil {
			return errs.Mark(err, errs.ErrStoreOperationFailed)
		}
		if err := c.ledger.Append(ctx, res.Entry); err != nil {
			return errs.Mark(err, errs.ErrStoreOperationFailed)
		}
		result = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &TransitionStatusResult{
		BookingID: id,
		From:      result.From.String(),
		To:        result.To.String(),
		ChangedAt: result.ChangedAt,
	}, nil
}

// validateSlot runs the conflict guard against the provider's snapshot for
// the candidate's day. Must be called inside the provider lock.
func (c *bookingCommandsImpl) validateSlot(ctx context.Context, providerID uuid.UUID, slot schedule.TimeRange, excludeID *uuid.UUID, hours schedule.BusinessHours) error {
	existing, err := c.store.FindByProviderAndDate(ctx, providerID, slot.Start())
	if err != nil {
		return errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	intervals := make([]schedule.BookedInterval, len(existing))
	for i, b := range existing {
		intervals[i] = b.OccupiedInterval()
	}

	return c.guard.Validate(schedule.Candidate{
		ProviderID:       providerID,
		Slot:             slot,
		ExcludeBookingID: excludeID,
	}, hours, intervals, c.clock.Now())
}
