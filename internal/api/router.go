package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stackmart/catalog-api/internal/api/handler"
	"github.com/stackmart/catalog-api/internal/api/middleware"
	"github.com/stackmart/catalog-api/internal/auth"
	"github.com/stackmart/catalog-api/internal/core/domain"
	"github.com/stackmart/catalog-api/internal/core/ports"
	"github.com/stackmart/catalog-api/internal/core/service"
	"github.com/stackmart/catalog-api/internal/infrastructure/config"
	mongodb "github.com/stackmart/catalog-api/internal/infrastructure/db/mongo"
	redisdb "github.com/stackmart/catalog-api/internal/infrastructure/db/redis"
	healthhandlers "github.com/stackmart/catalog-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, log zerolog.Logger, db *mongo.Database, rdb *redis.Client, audit ports.AuditRecorder) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log, cfg.Env)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("catalog"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	limiter := redisdb.NewLoginLimiter(rdb)
	codec := auth.NewCodec(auth.Config{Secret: cfg.JWTSecret, TTL: cfg.TokenTTL})

	authService := service.NewAuthService(userRepo, codec, limiter, audit, log)
	productService := service.NewProductService(productRepo, audit, log)
	userService := service.NewUserService(userRepo, audit, log)

	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService)
	userHandler := handler.NewUserHandler(userService)

	authenticated := middleware.Auth(codec, userRepo)

	// --- Public routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Authenticated API ---
	v1 := e.Group("/v1", authenticated)
	v1.GET("/me", authHandler.Me)

	products := v1.Group("/products")
	products.POST("", productHandler.Create)
	products.GET("", productHandler.List)

	// Existing records: the true owner is loaded from the store before the
	// ownership gate runs, so client data can never claim someone else's row.
	owned := products.Group("/:id", middleware.ResourceOwner(productService.OwnerOf), middleware.OwnerOrAdmin())
	owned.GET("", productHandler.Get)
	owned.PUT("", productHandler.Update)
	owned.DELETE("", productHandler.Delete)

	users := v1.Group("/users", middleware.RequireRole(domain.RoleAdmin))
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.PATCH("/:id/active", userHandler.SetActive)

	// --- Operational endpoints (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // process liveness
	e.GET("/health/ready", healthDepsHandler.Readiness) // dependency readiness
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
