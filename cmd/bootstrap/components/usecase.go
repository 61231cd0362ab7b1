package components

import (
	"slotbook/internal/domain/booking"
	"slotbook/internal/domain/schedule"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/pkg/config"
	"slotbook/internal/usecase/commands"
	"slotbook/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		func(cfg config.Config) config.BookingConfig { return cfg.Booking },
		func(cfg config.Config) schedule.Guard {
			return schedule.NewGuard(cfg.Booking.MinimumGapMinutes)
		},
		func(cfg config.Config) *booking.Engine {
			return booking.NewEngine(cfg.Booking.CancelCutoff)
		},
		commands.NewBookingCommands,
		queries.NewBookingQueries,
	),
)
