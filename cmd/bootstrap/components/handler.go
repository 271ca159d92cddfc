package components

import (
	"tour-booking-api/internal/handler"
	"tour-booking-api/internal/handler/api"
	"tour-booking-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewTourHandler,
		api.NewDepartureHandler,
		api.NewBookingHandler,
		api.NewPromotionHandler,
		api.NewGuideHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	tour *api.TourHandler,
	departure *api.DepartureHandler,
	booking *api.BookingHandler,
	promotion *api.PromotionHandler,
	guide *api.GuideHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:      auth,
		Tour:      tour,
		Departure: departure,
		Booking:   booking,
		Promotion: promotion,
		Guide:     guide,
	}
}
