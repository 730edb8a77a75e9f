package http

import (
	"context"
	"time"

	"github.com/airspace-service/internal/config"
	"github.com/airspace-service/internal/delivery/http/handler"
	"github.com/airspace-service/internal/delivery/http/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Server is the Fiber HTTP front of the conversion engine.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	airspaceHandler *handler.AirspaceHandler
	convertHandler  *handler.ConvertHandler
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	airspaceHandler *handler.AirspaceHandler,
	convertHandler *handler.ConvertHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Airspace Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:             app,
		config:          cfg,
		logger:          logger,
		airspaceHandler: airspaceHandler,
		convertHandler:  convertHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Dataset views for the settings UI
	api.Get("/airspace/index", s.airspaceHandler.GetIndex)
	api.Get("/airspace/release", s.airspaceHandler.GetRelease)

	// Conversion
	api.Post("/convert", s.convertHandler.Convert)
}

func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
