package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/miseboard/kitchen-api/internal/api/handler"
	"github.com/miseboard/kitchen-api/internal/api/middleware"
	"github.com/miseboard/kitchen-api/internal/core/domain"
	"github.com/miseboard/kitchen-api/internal/core/ports"
	"github.com/miseboard/kitchen-api/internal/core/service"
	"github.com/miseboard/kitchen-api/internal/core/token"
	mongodb "github.com/miseboard/kitchen-api/internal/infrastructure/db/mongo"
)

// Deps carries everything the router needs that is constructed in main.
type Deps struct {
	Mongo          *mongo.Database
	Redis          *redis.Client
	Codec          *token.Codec
	RegisterKey    string
	AdminUsernames []string
	LoginLimiter   ports.LoginLimiter
	AuditSink      ports.AuditSink
	Logger         zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("kitchen"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(deps.Mongo)
	recipeRepo := mongodb.NewRecipeRepository(deps.Mongo)
	boardRepo := mongodb.NewWhiteboardRepository(deps.Mongo)
	cleaningRepo := mongodb.NewCleaningRepository(deps.Mongo)
	accessRepo := mongodb.NewAccessRequestRepository(deps.Mongo)
	prepLogRepo := mongodb.NewPrepLogRepository(deps.Mongo)

	authService := service.NewAuthService(userRepo, deps.Codec, deps.RegisterKey, deps.AdminUsernames).
		WithLoginLimiter(deps.LoginLimiter).
		WithAuditSink(deps.AuditSink)

	authHandler := handler.NewAuthHandler(authService)
	recipeHandler := handler.NewRecipeHandler(service.NewRecipeService(recipeRepo))
	boardHandler := handler.NewWhiteboardHandler(service.NewWhiteboardService(boardRepo))
	cleaningHandler := handler.NewCleaningHandler(service.NewCleaningService(cleaningRepo))
	accessHandler := handler.NewAccessRequestHandler(service.NewAccessRequestService(accessRepo))
	prepLogHandler := handler.NewPrepLogHandler(service.NewPrepLogService(prepLogRepo))
	healthHandler := handler.NewHealthHandler(deps.Mongo, deps.Redis)

	requireAuth := middleware.Auth(deps.Codec)
	requireAdmin := middleware.RequireRole(domain.RoleAdmin)

	// --- Public routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.POST("/access-requests", accessHandler.Submit)

	// --- Protected routes ---
	e.POST("/recipes", recipeHandler.Create, requireAuth, requireAdmin)
	e.GET("/recipes", recipeHandler.List, requireAuth)
	e.DELETE("/recipes/:id", recipeHandler.Delete, requireAuth, requireAdmin)

	e.GET("/whiteboard", boardHandler.Get, requireAuth)
	e.POST("/whiteboard", boardHandler.Save, requireAuth)

	e.POST("/cleaning", cleaningHandler.Create, requireAuth)
	e.GET("/cleaning", cleaningHandler.List, requireAuth)
	e.DELETE("/cleaning/:id", cleaningHandler.Delete, requireAuth, requireAdmin)

	e.GET("/access-requests", accessHandler.List, requireAuth, requireAdmin)

	e.POST("/prep-logs", prepLogHandler.Create, requireAuth)
	e.GET("/prep-logs", prepLogHandler.List, requireAuth)

	// --- Operational endpoints ---
	e.GET("/health", healthHandler.Liveness)       // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
