package components

import (
	"resource-scheduler/internal/handler"
	"resource-scheduler/internal/handler/api"
	"resource-scheduler/internal/handler/middleware"
	"resource-scheduler/internal/infra/calendar"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		calendar.NewExporter,
		api.NewResourceHandler,
		api.NewRuleHandler,
		api.NewInterventionHandler,
		api.NewUnavailabilityHandler,
		middleware.NewAuthMiddleware,
		func(r *api.ResourceHandler, rule *api.RuleHandler, iv *api.InterventionHandler, u *api.UnavailabilityHandler) handler.Handlers {
			return handler.Handlers{Resource: r, Rule: rule, Intervention: iv, Unavailability: u}
		},
	),
	fx.Invoke(handler.NewRouter),
)
