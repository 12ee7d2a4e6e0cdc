package rest

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"blog-api/app/port"
	"blog-api/app/rest/handlers"
	custommw "blog-api/app/rest/middleware"
	"blog-api/app/utils/validator"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger        *slog.Logger
	AuthorUsecase port.AuthorUsecase
	PostUsecase   port.PostUsecase
	HealthChecker handlers.HealthChecker
	EnableDebug   bool
	EnableMetrics bool
}

// NewRouter creates and configures the Echo router
func NewRouter(config RouterConfig) *echo.Echo {
	e := echo.New()

	e.HideBanner = true
	e.Debug = config.EnableDebug
	e.Validator = validator.New()

	// Create handlers
	authorHandler := handlers.NewAuthorHandler(config.AuthorUsecase, config.Logger)
	postHandler := handlers.NewPostHandler(config.PostUsecase, config.Logger)
	healthHandler := handlers.NewHealthHandler(config.HealthChecker, config.Logger)

	rateLimiter := custommw.NewRateLimiter()

	// Global middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string {
			return uuid.New().String()
		},
	}))
	e.Use(custommw.DefaultCORS())
	e.Use(custommw.SecurityHeaders())
	e.Use(rateLimiter.RateLimit())
	if config.EnableMetrics {
		e.Use(custommw.Metrics())
	}

	// Author resource
	e.POST("/authors", authorHandler.CreateAuthor)
	e.GET("/authors", authorHandler.ListAuthors)
	e.GET("/authors/:id", authorHandler.GetAuthor)
	e.PUT("/authors/:id", authorHandler.UpdateAuthor)
	e.DELETE("/authors/:id", authorHandler.DeleteAuthor)
	e.GET("/authors/:id/posts", authorHandler.ListAuthorPosts)

	// Post resource
	e.POST("/posts", postHandler.CreatePost)
	e.GET("/posts", postHandler.ListPosts)
	e.GET("/posts/:id", postHandler.GetPost)
	e.PUT("/posts/:id", postHandler.UpdatePost)
	e.DELETE("/posts/:id", postHandler.DeletePost)

	// Health endpoints
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/health/ready", healthHandler.ReadinessCheck)
	e.GET("/health/live", healthHandler.LivenessCheck)

	// Metrics endpoint (if enabled)
	if config.EnableMetrics {
		e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	}

	return e
}
