package components

import (
	"court-booking/internal/handler"
	"court-booking/internal/handler/api"
	"court-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewCourtHandler,
		api.NewCoachHandler,
		api.NewEquipmentHandler,
		api.NewPricingRuleHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	booking *api.BookingHandler,
	court *api.CourtHandler,
	coach *api.CoachHandler,
	equipment *api.EquipmentHandler,
	pricingRule *api.PricingRuleHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:        auth,
		Booking:     booking,
		Court:       court,
		Coach:       coach,
		Equipment:   equipment,
		PricingRule: pricingRule,
	}
}
