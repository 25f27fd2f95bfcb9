package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sfpacim/finance-api/internal/api/handler"
	"github.com/sfpacim/finance-api/internal/api/middleware"
	"github.com/sfpacim/finance-api/internal/core/ports"
	"github.com/sfpacim/finance-api/internal/core/service"
	mongodb "github.com/sfpacim/finance-api/internal/infrastructure/db/mongo"
	redisdb "github.com/sfpacim/finance-api/internal/infrastructure/db/redis"
	"github.com/sfpacim/finance-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// events receives the audit trail; pass nil to disable it (tests).
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger, events ports.AuthEventSink) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	tokenService, err := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL())
	if err != nil {
		return nil, err
	}

	userRepo := mongodb.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, tokenService)

	var throttle handler.LoginThrottle
	if rdb != nil {
		throttle = redisdb.NewLoginThrottle(rdb)
	}

	authHandler := handler.NewAuthHandler(authService, events, throttle, log)
	userHandler := handler.NewUserHandler(userRepo)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("sfpacim"))
	// Bearer filter runs on every route; public routes stay anonymous.
	e.Use(middleware.Auth(tokenService, userRepo))

	// --- Public routes ---
	e.POST("/autenticacao/cadastro", authHandler.Cadastro)
	e.POST("/autenticacao/login", authHandler.Login)

	// --- Protected routes ---
	protected := e.Group("", middleware.RequireAuth())
	protected.GET("/ola", userHandler.Ola)
	protected.GET("/usuarios/eu", userHandler.Me)
	protected.GET("/usuarios/:id", userHandler.GetByID)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e, nil
}
