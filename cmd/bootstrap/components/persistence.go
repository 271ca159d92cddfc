package components

import (
	"tour-booking-api/internal/infra/db"
	"tour-booking-api/internal/infra/readstore"
	"tour-booking-api/internal/infra/uow"
	"tour-booking-api/internal/usecase"
	"tour-booking-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		// UnitOfWork owns the write side; read stores run outside it on
		// the pool directly.
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewDepartureReadStore,
			fx.As(new(queries.DepartureViewRepo)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingViewRepo)),
		),
		fx.Annotate(
			readstore.NewTourReadStore,
			fx.As(new(queries.TourViewRepo)),
		),
		fx.Annotate(
			readstore.NewPromotionReadStore,
			fx.As(new(queries.PromotionViewRepo)),
		),
		fx.Annotate(
			readstore.NewGuideReadStore,
			fx.As(new(queries.GuideViewRepo)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(usecase.UserRepository)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
