package components

import (
	"floorplan-service/internal/handler"
	"floorplan-service/internal/handler/api"
	"floorplan-service/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewFloorPlanHandler,
		api.NewBookingHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
