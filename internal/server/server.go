package server

import (
	"net/http"
	"time"

	"github.com/flowbaker/infomaniak/internal/controllers"
	"github.com/flowbaker/infomaniak/internal/middlewares"
	"github.com/flowbaker/infomaniak/internal/version"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/logger"
)

const serviceName = "infomaniak-executor"

type HTTPServerDependencies struct {
	ExecutorController *controllers.ExecutorController

	// MetricsHandler is mounted on /metrics when set.
	MetricsHandler http.Handler

	// APIKey protects every route except /health and /metrics when set.
	APIKey string

	// DisableRequestLog turns off the access log, mostly for tests.
	DisableRequestLog bool
}

func NewHTTPServer(deps HTTPServerDependencies) *fiber.App {
	router := fiber.New(fiber.Config{
		AppName: serviceName,
	})

	router.Use(cors.New())
	if !deps.DisableRequestLog {
		router.Use(logger.New())
	}

	router.Get("/health", func(c fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":    "healthy",
			"service":   serviceName,
			"version":   version.GetVersion(),
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	if deps.MetricsHandler != nil {
		router.Get("/metrics", adaptor.HTTPHandler(deps.MetricsHandler))
	}

	api := router.Group("/")
	if deps.APIKey != "" {
		api.Use(middlewares.APIKeyMiddleware(deps.APIKey))
	}

	api.Get("/integrations", deps.ExecutorController.ListIntegrations)
	api.Post("/executions", deps.ExecutorController.StartExecution)
	api.Post("/connection-test", deps.ExecutorController.TestConnection)
	api.Post("/peek-data", deps.ExecutorController.PeekData)

	return router
}
