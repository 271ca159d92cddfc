package components

import (
	"crypto/rand"
	"io"

	"tour-booking-api/internal/pkg/clock"
	"tour-booking-api/internal/usecase"
	"tour-booking-api/internal/usecase/commands"
	"tour-booking-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func() io.Reader { return rand.Reader },
	usecase.NewAuthUseCase,
	func(a usecase.AuthUseCase) usecase.TokenValidator { return a },
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewDepartureCommands,
		commands.NewPromotionCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewDepartureQueries,
		queries.NewTourQueries,
		queries.NewPromotionQueries,
		queries.NewGuideQueries,
	),
)
