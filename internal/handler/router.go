package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"tour-booking-api/internal/domain/user"
	"tour-booking-api/internal/handler/api"
	"tour-booking-api/internal/handler/middleware"
	"tour-booking-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth      *api.AuthHandler
	Tour      *api.TourHandler
	Departure *api.DepartureHandler
	Booking   *api.BookingHandler
	Promotion *api.PromotionHandler
	Guide     *api.GuideHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	adminOnly := authMiddleware.RequireRoleAtLeast(user.RoleAdmin)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		// Catalogue browsing is public.
		tours := apiGroup.Group("/tours")
		{
			addRoutes(tours, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Tour.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Tour.Get},
				{Method: http.MethodGet, Path: "/:id/departures", Handler: h.Tour.ListDepartures},
			})
		}

		departures := apiGroup.Group("/tour-departures")
		{
			addRoutes(departures, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Departure.ListUpcoming},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Departure.Get},
				{Method: http.MethodGet, Path: "/:id/check-availability", Handler: h.Departure.CheckAvailability},
				{Method: http.MethodGet, Path: "/:id/available-slots", Handler: h.Departure.AvailableSlots},
				{Method: http.MethodPut, Path: "/:id/assign-guide/:guideId", Handler: h.Departure.AssignGuide,
					Mw: []gin.HandlerFunc{authMiddleware.RequireAuth(), adminOnly}},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Booking.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
				{Method: http.MethodPut, Path: "/:id/cancel", Handler: h.Booking.Cancel},
				{Method: http.MethodPut, Path: "/:id/payment-status", Handler: h.Booking.UpdatePaymentStatus,
					Mw: []gin.HandlerFunc{adminOnly}},
			})
		}

		promotions := apiGroup.Group("/promotions")
		{
			addRoutes(promotions, []route{
				{Method: http.MethodGet, Path: "/active", Handler: h.Promotion.ListActive},
			})

			promotionsAdmin := promotions.Group("")
			promotionsAdmin.Use(authMiddleware.RequireAuth(), adminOnly)
			addRoutes(promotionsAdmin, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Promotion.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Promotion.List},
				{Method: http.MethodGet, Path: "/stats", Handler: h.Promotion.Stats},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Promotion.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Promotion.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Promotion.Delete},
			})
		}

		// The dashboard requires the guide role itself; admins use the
		// admin endpoints instead, since manifests are scoped to the
		// assigned guide's own account.
		guides := apiGroup.Group("/guides/me")
		guides.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleGuide))
		{
			addRoutes(guides, []route{
				{Method: http.MethodGet, Path: "/departures", Handler: h.Guide.MyDepartures},
				{Method: http.MethodGet, Path: "/departures/:id/passengers", Handler: h.Guide.Passengers},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
