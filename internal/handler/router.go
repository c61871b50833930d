package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"court-booking/internal/domain/user"
	"court-booking/internal/handler/api"
	"court-booking/internal/handler/middleware"
	"court-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	Booking     *api.BookingHandler
	Court       *api.CourtHandler
	Coach       *api.CoachHandler
	Equipment   *api.EquipmentHandler
	PricingRule *api.PricingRuleHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()
	adminOnly := authMiddleware.RequireRoleAtLeast(user.RoleAdmin)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(requireAuth)
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/profile", Handler: h.Auth.Profile},
			})
		}

		courts := apiGroup.Group("/courts")
		{
			addRoutes(courts, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Court.ListCourts},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Court.GetCourt},
			})

			courtAdmin := courts.Group("")
			courtAdmin.Use(requireAuth, adminOnly)
			addRoutes(courtAdmin, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Court.CreateCourt},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Court.UpdateCourt},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Court.DeleteCourt},
			})
		}

		coaches := apiGroup.Group("/coaches")
		{
			addRoutes(coaches, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Coach.ListCoaches},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Coach.GetCoach},
			})

			coachAdmin := coaches.Group("")
			coachAdmin.Use(requireAuth, adminOnly)
			addRoutes(coachAdmin, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Coach.CreateCoach},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Coach.UpdateCoach},
				{Method: http.MethodPut, Path: "/:id/availability", Handler: h.Coach.UpdateAvailability},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Coach.DeleteCoach},
			})
		}

		equipment := apiGroup.Group("/equipment")
		{
			addRoutes(equipment, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Equipment.ListEquipment},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Equipment.GetEquipment},
			})

			equipmentAdmin := equipment.Group("")
			equipmentAdmin.Use(requireAuth, adminOnly)
			addRoutes(equipmentAdmin, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Equipment.CreateEquipment},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Equipment.UpdateEquipment},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Equipment.DeleteEquipment},
			})
		}

		rules := apiGroup.Group("/pricing-rules")
		{
			addRoutes(rules, []route{
				{Method: http.MethodGet, Path: "", Handler: h.PricingRule.ListRules},
				{Method: http.MethodGet, Path: "/:id", Handler: h.PricingRule.GetRule},
			})

			ruleAdmin := rules.Group("")
			ruleAdmin.Use(requireAuth, adminOnly)
			addRoutes(ruleAdmin, []route{
				{Method: http.MethodPost, Path: "", Handler: h.PricingRule.CreateRule},
				{Method: http.MethodPut, Path: "/:id", Handler: h.PricingRule.UpdateRule},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.PricingRule.DeleteRule},
			})
		}

		bookings := apiGroup.Group("/bookings")
		{
			// Public probes: anyone can test a slot before registering
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "/check-availability", Handler: h.Booking.CheckAvailability},
				{Method: http.MethodPost, Path: "/calculate-price", Handler: h.Booking.CalculatePrice},
			})

			bookingAuth := bookings.Group("")
			bookingAuth.Use(requireAuth)
			addRoutes(bookingAuth, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.CreateBooking},
				{Method: http.MethodGet, Path: "/user/:userId", Handler: h.Booking.ListUserBookings},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.GetBooking},
				{Method: http.MethodPut, Path: "/:id/cancel", Handler: h.Booking.CancelBooking},
			})

			bookingAdmin := bookings.Group("")
			bookingAdmin.Use(requireAuth, adminOnly)
			addRoutes(bookingAdmin, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Booking.ListBookings},
				{Method: http.MethodPut, Path: "/:id/status", Handler: h.Booking.UpdateBookingStatus},
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
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodPatch:
			g.PATCH(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
