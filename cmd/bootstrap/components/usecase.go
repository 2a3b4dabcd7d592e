package components

import (
	"loyalty-rewards/internal/domain/reward"
	"loyalty-rewards/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	fx.Annotate(
		reward.NewTieredPointCalculator,
		fx.As(new(reward.PointCalculator)),
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewRewardQueries,
	),
)
