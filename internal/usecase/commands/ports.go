package commands

import (
	"context"
	"time"

	"slotbook/internal/domain/booking"
	"slotbook/internal/domain/schedule"

	"github.com/google/uuid"
)

// BookingStore owns the only shared mutable state in the system: the set of
// bookings per provider.
//
// Serialization contract: WithProviderLock must serialize fn with respect to
// every other WithProviderLock call for the same provider. All
// validate-then-write sequences run inside it; without that guarantee two
// concurrent validations can both observe "no conflict" and double-book the
// provider. Implementations may use an advisory lock (memstore), a
// serializable transaction that re-validates before commit, or a database
// exclusion constraint over (provider, time range).
type BookingStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// FindByProviderAndDate returns non-cancelled bookings only.
	FindByProviderAndDate(ctx context.Context, providerID uuid.UUID, date time.Time) ([]*booking.Booking, error)
	Insert(ctx context.Context, b *booking.Booking) error
	Update(ctx context.Context, b *booking.Booking) error
	WithProviderLock(ctx context.Context, providerID uuid.UUID, fn func(ctx context.Context) error) error
}

// HistoryLedger is append-only; corrections happen through further
// transitions, never edits. A status Update and its ledger Append are applied
// together inside the booking's provider lock so neither is observed without
// the other.
type HistoryLedger interface {
	Append(ctx context.Context, entry booking.StatusTransition) error
	ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]booking.StatusTransition, error)
}

// ServiceCatalog resolves bookable services; an external collaborator.
type ServiceCatalog interface {
	FindServiceByID(ctx context.Context, id uuid.UUID) (*booking.Service, error)
}

// HoursProvider supplies per-provider business hours from tenant
// configuration; an external collaborator. The domain never reads hours from
// ambient state.
type HoursProvider interface {
	HoursForProvider(ctx context.Context, providerID uuid.UUID) (schedule.BusinessHours, error)
}
