package components

import (
	"floorplan-service/internal/domain/floorplan"
	"floorplan-service/internal/pkg/clock"
	"floorplan-service/internal/pkg/config"
	"floorplan-service/internal/pkg/idgen"
	"floorplan-service/internal/usecase"
	"floorplan-service/internal/usecase/commands"
	"floorplan-service/internal/usecase/queries"

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
	idgen.NewUUIDGenerator,
	NewCommandSettings,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewFloorPlanUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewFloorPlanQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewCommandSettings(cfg config.Config) (commands.Settings, error) {
	policy, err := floorplan.ParseConflictPolicy(cfg.Store.ConflictPolicy)
	if err != nil {
		return commands.Settings{}, err
	}
	return commands.Settings{
		ConflictPolicy:         policy,
		DefaultBookingDuration: cfg.Store.DefaultBookingDuration(),
	}, nil
}
