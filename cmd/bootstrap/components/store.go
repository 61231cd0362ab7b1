package components

import (
	"log/slog"
	"strconv"
	"time"

	"slotbook/internal/domain/booking"
	"slotbook/internal/domain/schedule"
	"slotbook/internal/infra/memstore"
	"slotbook/internal/pkg/config"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/commands"
	"slotbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewMemStore,
		func(s *memstore.Store) commands.BookingStore { return s },
		func(s *memstore.Store) commands.HistoryLedger { return s },
		func(s *memstore.Store) commands.ServiceCatalog { return s },
		func(s *memstore.Store) commands.HoursProvider { return s },
		func(s *memstore.Store) queries.BookingReadStore { return s },
		func(s *memstore.Store) queries.ServiceReader { return s },
		func(s *memstore.Store) queries.HoursReader { return s },
	),
	fx.Invoke(SeedDemoCatalog),
)

func NewMemStore(cfg config.Config) (*memstore.Store, error) {
	hours, err := DefaultBusinessHours(cfg.Booking)
	if err != nil {
		return nil, err
	}
	return memstore.New(hours), nil
}

// DefaultBusinessHours builds the tenant-wide hours from configuration; they
// are handed to the domain as an explicit value, never read globally.
func DefaultBusinessHours(cfg config.BookingConfig) (schedule.BusinessHours, error) {
	opening, err := schedule.ParseTimeOfDay(cfg.OpeningTime)
	if err != nil {
		return schedule.BusinessHours{}, errs.Wrap(err, "invalid opening time "+cfg.OpeningTime)
	}
	closing, err := schedule.ParseTimeOfDay(cfg.ClosingTime)
	if err != nil {
		return schedule.BusinessHours{}, errs.Wrap(err, "invalid closing time "+cfg.ClosingTime)
	}

	closedDays := make([]time.Weekday, 0, len(cfg.ClosedWeekdays))
	for _, d := range cfg.ClosedWeekdays {
		if d < 0 || d > 6 {
			return schedule.BusinessHours{}, errs.New("invalid closed weekday " + strconv.Itoa(d))
		}
		closedDays = append(closedDays, time.Weekday(d))
	}

	return schedule.NewBusinessHours(opening, closing, closedDays...)
}

// SeedDemoCatalog loads a small service catalog in debug mode so the API is
// exercisable without a persistence layer behind it.
func SeedDemoCatalog(store *memstore.Store, logger *slog.Logger) error {
	if gin.Mode() == gin.ReleaseMode {
		return nil
	}

	demos := []struct {
		name     string
		duration int
		cents    int64
	}{
		{"Haircut", 30, 3000},
		{"Consultation", 60, 4500},
		{"Follow-up", 15, 1500},
	}
	for _, d := range demos {
		price, err := booking.NewMoney(d.cents)
		if err != nil {
			return err
		}
		svc := booking.Service{ID: uuid.New(), Name: d.name, DurationMinutes: d.duration, Price: price}
		store.SeedService(svc)
		logger.Info("seeded demo service", "id", svc.ID, "name", svc.Name)
	}
	return nil
}
