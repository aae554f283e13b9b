package components

import (
	"fmt"
	"log/slog"

	"resource-scheduler/internal/domain/unavailability"
	"resource-scheduler/internal/pkg/clock"
	"resource-scheduler/internal/pkg/config"
	"resource-scheduler/internal/usecase"
	"resource-scheduler/internal/usecase/commands"
	"resource-scheduler/internal/usecase/queries"
	"resource-scheduler/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	newExpander,
)

func newExpander(cfg config.Config) (unavailability.Expander, error) {
	loc, err := cfg.Booking.Location()
	if err != nil {
		return unavailability.Expander{}, fmt.Errorf("invalid BOOKING_TIMEZONE %q: %w", cfg.Booking.TimeZone, err)
	}
	return unavailability.NewExpander(loc), nil
}

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewResourceUseCase,
		commands.NewBookingUseCase,
		func(uow shared.UnitOfWork, clk clock.Clock, recorder shared.DecisionRecorder, logger *slog.Logger, exp unavailability.Expander, cfg config.Config) commands.RuleCommands {
			return commands.NewRuleUseCase(uow, clk, recorder, logger, exp, cfg.Booking.RuleHorizon)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		func(uow shared.UnitOfWork, exp unavailability.Expander, cfg config.Config) queries.ScheduleQueries {
			return queries.NewScheduleQueries(uow, exp, cfg.Booking.MaxWindow)
		},
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
