package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/stoykov15/lifeos/internal/api/handler"
	"github.com/stoykov15/lifeos/internal/api/middleware"
	"github.com/stoykov15/lifeos/internal/core/service"
	"github.com/stoykov15/lifeos/internal/infrastructure/config"
	"github.com/stoykov15/lifeos/internal/infrastructure/db/postgres"
	healthhandlers "github.com/stoykov15/lifeos/internal/infrastructure/http/handlers"
)

// NewRouter wires repositories, services and handlers and registers all routes.
// Every dependency is constructed here and passed down explicitly.
func NewRouter(pool *pgxpool.Pool, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echomw.Logger())
	e.Use(echoprometheus.NewMiddleware("lifeos"))

	userRepo := postgres.NewUserRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)
	financeRepo := postgres.NewFinanceRepository(pool)
	resourceRepo := postgres.NewResourceRepository(pool)

	hasher := service.NewPasswordHasher(bcrypt.DefaultCost)
	tokens := service.NewTokenService(cfg.SecretKey, cfg.AccessTokenTTL)

	authService := service.NewAuthService(userRepo, hasher, tokens, log)
	taskService := service.NewTaskService(taskRepo, log)
	financeService := service.NewFinanceService(financeRepo, log)
	resourceService := service.NewResourceService(resourceRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	taskHandler := handler.NewTaskHandler(taskService)
	financeHandler := handler.NewFinanceHandler(financeService)
	resourceHandler := handler.NewResourceHandler(resourceService)

	health := healthhandlers.NewHealthHandler()
	readiness := healthhandlers.NewReadinessHandler(pool)

	e.GET("/health", health.Liveness)
	e.GET("/health/ready", readiness.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	requireAuth := middleware.Auth(authService)

	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", authHandler.Me, requireAuth)
	auth.POST("/change-password", authHandler.ChangePassword, requireAuth)
	auth.DELETE("/delete", authHandler.Delete, requireAuth)
	auth.PUT("/setup", authHandler.Setup, requireAuth)

	tasks := e.Group("/api/tasks", requireAuth)
	tasks.GET("", taskHandler.List)
	tasks.POST("", taskHandler.Create)
	tasks.PUT("/:id", taskHandler.Update)
	tasks.DELETE("/:id", taskHandler.Delete)

	finances := e.Group("/api/finances", requireAuth)
	finances.GET("", financeHandler.List)
	finances.POST("", financeHandler.Create)
	finances.DELETE("/:id", financeHandler.Delete)

	resources := e.Group("/api/resources", requireAuth)
	resources.GET("", resourceHandler.List)
	resources.POST("", resourceHandler.Create)
	resources.PUT("/:id", resourceHandler.Update)
	resources.DELETE("/:id", resourceHandler.Delete)

	return e
}
