package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fancyapps/users-service/internal/api/handler"
	"github.com/fancyapps/users-service/internal/api/middleware"
	"github.com/fancyapps/users-service/internal/core/domain"
	"github.com/fancyapps/users-service/internal/core/ports"
	"github.com/fancyapps/users-service/internal/core/service"
	"github.com/fancyapps/users-service/internal/infrastructure/config"
	mongodb "github.com/fancyapps/users-service/internal/infrastructure/db/mongo"
	redisdb "github.com/fancyapps/users-service/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil, in which case login throttling is disabled.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger, trail ports.AuditLogger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("users"))

	// --- Dependencies ---
	hasher, err := service.NewBcryptHasher(cfg.HashCost)
	if err != nil {
		return nil, err
	}

	var throttle ports.LoginThrottle
	if rdb != nil {
		throttle = redisdb.NewLoginThrottle(rdb, cfg.Throttle.MaxFailures, cfg.Throttle.Window)
	}

	userRepo := mongodb.NewUserRepository(db)
	policy := service.NewPasswordPolicy(cfg.PolicyEnforced, log)
	issuer := service.NewJWTIssuer(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, policy, hasher, issuer, throttle, trail, log)
	authHandler := handler.NewAuthHandler(authService)

	appRepo := mongodb.NewAppRepository(db)
	appService := service.NewAppService(appRepo, log)
	appHandler := handler.NewAppHandler(appService)

	authenticated := middleware.Auth(cfg.JWTSecret)
	freshRole := middleware.RequireFreshRole(authService)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/users/me", authHandler.Me, authenticated, freshRole)

	// --- Applications catalog ---
	// Every route under /apps revalidates the token role against the store,
	// so a demoted admin is locked out on the next request.
	apps := e.Group("/apps", authenticated, freshRole)
	apps.GET("/discover", appHandler.Discover, middleware.RBAC(domain.RoleAdmin, domain.RoleClient))
	apps.GET("/discover/:id", appHandler.DiscoverOne, middleware.RBAC(domain.RoleAdmin, domain.RoleClient))

	adminOnly := middleware.RBAC(domain.RoleAdmin)
	apps.POST("", appHandler.Create, adminOnly)
	apps.GET("", appHandler.List, adminOnly)
	apps.GET("/:id", appHandler.Get, adminOnly)
	apps.PATCH("/:id", appHandler.Update, adminOnly)
	apps.DELETE("/:id", appHandler.Delete, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e, nil
}
