package di

import (
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	"blog-api/app/config"
	"blog-api/app/driver/database"
	"blog-api/app/gateway"
	"blog-api/app/port"
	"blog-api/app/rest"
	"blog-api/app/usecase"
)

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	DB *database.DB

	// Gateways
	AuthorGateway port.AuthorGateway
	PostGateway   port.PostGateway

	// Usecases
	AuthorUsecase port.AuthorUsecase
	PostUsecase   port.PostUsecase
}

// NewContainer creates and initializes a new dependency injection container
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	// Initialize database connection
	var err error
	container.DB, err = database.NewConnection(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Create the schema at startup if absent
	if cfg.AutoMigrate {
		if err := container.DB.AutoMigrate(); err != nil {
			container.DB.Close()
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	// Initialize repositories
	authorRepository := database.NewAuthorRepository(container.DB.GORM(), logger)
	postRepository := database.NewPostRepository(container.DB.GORM(), logger)

	// Initialize gateways
	container.AuthorGateway = gateway.NewAuthorGateway(authorRepository, logger)
	container.PostGateway = gateway.NewPostGateway(postRepository, logger)

	// Initialize usecases
	container.AuthorUsecase = usecase.NewAuthorUsecase(container.AuthorGateway, container.PostGateway, logger)
	container.PostUsecase = usecase.NewPostUsecase(container.PostGateway, container.AuthorGateway, logger)

	logger.Info("Container initialized with full dependency stack")

	return container, nil
}

// CreateRouter creates and returns a fully configured Echo router
func (c *Container) CreateRouter() *echo.Echo {
	routerConfig := rest.RouterConfig{
		Logger:        c.Logger,
		AuthorUsecase: c.AuthorUsecase,
		PostUsecase:   c.PostUsecase,
		HealthChecker: c.DB,
		EnableDebug:   c.Config.LogLevel == "debug",
		EnableMetrics: c.Config.EnableMetrics,
	}

	router := rest.NewRouter(routerConfig)

	c.Logger.Info("Full API router created")
	return router
}

// Close closes all resources
func (c *Container) Close() error {
	if c.DB != nil {
		c.DB.Close()
	}

	c.Logger.Info("Container closed successfully")
	return nil
}
