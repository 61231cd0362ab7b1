// Package memstore is the reference implementation of the booking store
// collaborators. It keeps everything in process memory and serializes
// validate-then-write per provider with an advisory lock, which is the
// serialization strategy this repository commits to for the double-booking
// check-then-act race. A SQL-backed store substituting an exclusion
// constraint over (provider, time range) satisfies the same contract.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"slotbook/internal/domain/booking"
	"slotbook/internal/domain/schedule"
	"slotbook/internal/infra"

	"github.com/google/uuid"
)

type Store struct {
	mu       sync.Mutex
	bookings map[uuid.UUID]booking.Booking
	ledger   map[uuid.UUID][]booking.StatusTransition
	services map[uuid.UUID]booking.Service
	hours    map[uuid.UUID]schedule.BusinessHours
	locks    map[uuid.UUID]*sync.Mutex
	defHours schedule.BusinessHours
}

func New(defaultHours schedule.BusinessHours) *Store {
	return &Store{
		bookings: make(map[uuid.UUID]booking.Booking),
		ledger:   make(map[uuid.UUID][]booking.StatusTransition),
		services: make(map[uuid.UUID]booking.Service),
		hours:    make(map[uuid.UUID]schedule.BusinessHours),
		locks:    make(map[uuid.UUID]*sync.Mutex),
		defHours: defaultHours,
	}
}

// WithProviderLock holds the provider's advisory lock for the duration of fn.
// All validate-then-write sequences for one provider go through here, so two
// concurrent attempts to book the same provider can never both observe a
// conflict-free snapshot.
func (s *Store) WithProviderLock(ctx context.Context, providerID uuid.UUID, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	lock := s.providerLock(providerID)
	lock.Lock()
	defer lock.Unlock()
	return fn(ctx)
}

func (s *Store) providerLock(providerID uuid.UUID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[providerID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[providerID] = lock
	}
	return lock
}

func (s *Store) FindByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "booking "+id.String())
	}
	cp := b
	return &cp, nil
}

// FindByProviderAndDate returns the provider's non-cancelled bookings on the
// given UTC calendar date, ordered by start time.
func (s *Store) FindByProviderAndDate(_ context.Context, providerID uuid.UUID, date time.Time) ([]*booking.Booking, error) {
	day := date.UTC()
	y, m, d := day.Date()

	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*booking.Booking
	for _, b := range s.bookings {
		if b.ProviderID() != providerID || b.IsCancelled() {
			continue
		}
		by, bm, bd := b.Slot().Start().UTC().Date()
		if by != y || bm != m || bd != d {
			continue
		}
		cp := b
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Slot().Start().Before(out[j].Slot().Start())
	})
	return out, nil
}

func (s *Store) Insert(_ context.Context, b *booking.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.bookings[b.ID()]; exists {
		return infra.NewRepoErr(infra.KindConflict, "booking "+b.ID().String()+" already exists")
	}
	s.bookings[b.ID()] = *b
	return nil
}

func (s *Store) Update(_ context.Context, b *booking.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.bookings[b.ID()]; !exists {
		return infra.NewRepoErr(infra.KindNotFound, "booking "+b.ID().String())
	}
	s.bookings[b.ID()] = *b
	return nil
}

// Append records a status transition. Entries are immutable once written;
// there is no update or delete path.
func (s *Store) Append(_ context.Context, entry booking.StatusTransition) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ledger[entry.BookingID] = append(s.ledger[entry.BookingID], entry)
	return nil
}

func (s *Store) ListByBooking(_ context.Context, bookingID uuid.UUID) ([]booking.StatusTransition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := s.ledger[bookingID]
	out := make([]booking.StatusTransition, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ChangedAt.Before(out[j].ChangedAt)
	})
	return out, nil
}

func (s *Store) SeedService(svc booking.Service) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.services[svc.ID] = svc
}

func (s *Store) FindServiceByID(_ context.Context, id uuid.UUID) (*booking.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	svc, ok := s.services[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "service "+id.String())
	}
	return &svc, nil
}

// SetProviderHours installs an override; providers without one get the
// tenant-wide default hours.
func (s *Store) SetProviderHours(providerID uuid.UUID, hours schedule.BusinessHours) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hours[providerID] = hours
}

func (s *Store) HoursForProvider(_ context.Context, providerID uuid.UUID) (schedule.BusinessHours, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if h, ok := s.hours[providerID]; ok {
		return h, nil
	}
	return s.defHours, nil
}
