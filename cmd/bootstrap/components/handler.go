package components

import (
	"loyalty-rewards/internal/handler"
	"loyalty-rewards/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRewardHandler,
	),
	fx.Invoke(handler.NewRouter),
)
