package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/campushub/events-api/internal/api/handler"
	"github.com/campushub/events-api/internal/api/middleware"
	"github.com/campushub/events-api/internal/core/domain"
	"github.com/campushub/events-api/internal/core/service"
	mongodb "github.com/campushub/events-api/internal/infrastructure/db/mongo"
	redisdb "github.com/campushub/events-api/internal/infrastructure/db/redis"
	"github.com/campushub/events-api/internal/infrastructure/http/handlers"
)

// Deps carries everything the router needs to assemble the service graph.
type Deps struct {
	DB        *mongo.Database
	Redis     *redis.Client
	JWTSecret string
	TokenTTL  time.Duration
	Audit     service.AuditSink
	Log       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("events_api"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(deps.DB)
	eventRepo := mongodb.NewEventRepository(deps.DB)
	throttle := redisdb.NewLoginThrottle(deps.Redis)
	tokens := service.NewTokenManager(deps.JWTSecret, deps.TokenTTL)

	authService := service.NewAuthService(userRepo, tokens, throttle, deps.Log)
	userService := service.NewUserService(userRepo, eventRepo, tokens, deps.Log)
	eventService := service.NewEventService(eventRepo, userRepo, deps.Audit, deps.Log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	eventHandler := handler.NewEventHandler(eventService)

	authRequired := middleware.Auth(deps.JWTSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- User routes ---
	users := e.Group("/users")
	users.POST("/register", authHandler.Register)
	users.POST("/login", authHandler.Login)
	users.GET("/registered-events", userHandler.RegisteredEvents, authRequired)
	users.PUT("/update", userHandler.UpdateProfile, authRequired)

	// --- Event routes ---
	events := e.Group("/events", authRequired)
	events.GET("", eventHandler.List)
	events.POST("", eventHandler.Create, adminOnly)
	events.PUT("/:id", eventHandler.Update, adminOnly)
	events.DELETE("/:id", eventHandler.Delete, adminOnly)
	events.POST("/:id/register", userHandler.RegisterForEvent)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.DB, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
