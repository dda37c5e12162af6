package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/haryawn/law-firm-api/internal/api/handler"
	"github.com/haryawn/law-firm-api/internal/api/middleware"
	"github.com/haryawn/law-firm-api/internal/core/domain"
	"github.com/haryawn/law-firm-api/internal/core/ports"
	"github.com/haryawn/law-firm-api/internal/core/service"
	mongodb "github.com/haryawn/law-firm-api/internal/infrastructure/db/mongo"
	redisdb "github.com/haryawn/law-firm-api/internal/infrastructure/db/redis"
	"github.com/haryawn/law-firm-api/internal/infrastructure/memory"
)

const adminLoginPath = "/admin/login"

// Options carries the externally constructed dependencies of the router.
type Options struct {
	DB       *mongo.Database
	Redis    *redis.Client
	Provider ports.IdentityProvider
	Notifier ports.Notifier
	Limiter  ports.RateLimitStore

	JWTSecret string
	NotifyTo  string

	// DefaultPolicy applies to general mutation endpoints, FormPolicy to the
	// stricter booking/contact endpoints.
	DefaultPolicy domain.RateLimitPolicy
	FormPolicy    domain.RateLimitPolicy

	Log zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("lawfirm"))

	// --- Repositories ---
	appointmentRepo := mongodb.NewAppointmentRepository(opts.DB)
	contactRepo := mongodb.NewContactRepository(opts.DB)
	subscriberRepo := mongodb.NewSubscriberRepository(opts.DB)
	membershipRepo := mongodb.NewMembershipRepository(opts.DB)
	userRepo := memory.NewUserRepository()

	var dedup ports.SubscribeDeduper
	if opts.Redis != nil {
		dedup = redisdb.NewSubscribeDedup(opts.Redis)
	}

	// --- Services ---
	appointmentService := service.NewAppointmentService(appointmentRepo, opts.Notifier, opts.NotifyTo, opts.Log)
	contactService := service.NewContactService(contactRepo, opts.Notifier, opts.NotifyTo, opts.Log)
	subscriberService := service.NewSubscriberService(subscriberRepo, dedup, opts.Notifier, opts.NotifyTo, opts.Log)
	statsService := service.NewStatsService(appointmentRepo, subscriberRepo, contactRepo)
	adminAuth := service.NewAdminAuthService(opts.Provider, membershipRepo, opts.Log)

	// The experimental token flow issues long-lived tokens (30 days) the
	// way the standalone auth prototype did; admin sessions stay on the
	// cookie flow.
	authService := service.NewAuthService(userRepo, opts.JWTSecret, 30*24*time.Hour)

	tokenAuth := service.NewTokenAuthenticator(opts.JWTSecret)
	cookieAuth := service.NewCookieAuthenticator(opts.Provider, membershipRepo, opts.Log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	contactHandler := handler.NewContactHandler(contactService)
	appointmentHandler := handler.NewAppointmentHandler(appointmentService)
	subscribeHandler := handler.NewSubscribeHandler(subscriberService)
	adminHandler := handler.NewAdminHandler(adminAuth, appointmentService, statsService)
	pageHandler := handler.NewPageHandler()

	// --- Experimental auth routes (bearer-token flow) ---
	e.POST("/auth/register", authHandler.Register,
		middleware.RateLimit(opts.Limiter, "auth", opts.DefaultPolicy))
	e.POST("/auth/login", authHandler.Login,
		middleware.RateLimit(opts.Limiter, "auth", opts.DefaultPolicy))
	e.GET("/auth/me", authHandler.Me, middleware.RequireAuth(tokenAuth))

	// --- Public form routes (rate limited) ---
	e.POST("/api/contact", contactHandler.Submit,
		middleware.RateLimit(opts.Limiter, "contact", opts.FormPolicy))
	e.POST("/api/appointments", appointmentHandler.Book,
		middleware.RateLimit(opts.Limiter, "appointments", opts.FormPolicy))
	e.POST("/api/subscribe", subscribeHandler.Subscribe,
		middleware.RateLimit(opts.Limiter, "subscribe", opts.DefaultPolicy))

	// --- Admin API (cookie-session flow) ---
	e.POST("/api/admin/login", adminHandler.Login,
		middleware.RateLimit(opts.Limiter, "admin_login", opts.FormPolicy))
	e.POST("/api/admin/logout", adminHandler.Logout)

	adminAPI := e.Group("/api/admin", middleware.RequireAdmin(cookieAuth))
	adminAPI.GET("/appointments", adminHandler.ListAppointments)
	adminAPI.PATCH("/appointments/:id", adminHandler.UpdateAppointment)
	adminAPI.GET("/stats", adminHandler.Stats)

	// --- Admin pages (gate redirects everyone below admin to login) ---
	adminPages := e.Group("/admin", middleware.AdminPageGate(cookieAuth, adminLoginPath))
	adminPages.GET("", pageHandler.Dashboard)
	adminPages.GET("/login", pageHandler.LoginPage)

	// --- Ops ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(opts.DB, opts.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
