package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/campus-maps/internal/config"
	"github.com/campus-maps/internal/delivery/http/handler"
	"github.com/campus-maps/internal/delivery/http/middleware"
	"github.com/campus-maps/internal/pkg/errors"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	pageHandler        *handler.PageHandler
	lineMapperHandler  *handler.LineMapperHandler
	campusPathsHandler *handler.CampusPathsHandler
	sessionHandler     *handler.SessionHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	pageHandler *handler.PageHandler,
	lineMapperHandler *handler.LineMapperHandler,
	campusPathsHandler *handler.CampusPathsHandler,
	sessionHandler *handler.SessionHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Campus Maps",
		ReadTimeout:  10 * time.Second,
		IdleTimeout:  60 * time.Second,
		BodyLimit:    2 * 1024 * 1024,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:                app,
		config:             cfg,
		logger:             logger,
		pageHandler:        pageHandler,
		lineMapperHandler:  lineMapperHandler,
		campusPathsHandler: campusPathsHandler,
		sessionHandler:     sessionHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	session := middleware.Session(s.config.Session.TTL)

	// Pages
	s.app.Get("/", s.pageHandler.Index)
	s.app.Get("/lines", session, s.pageHandler.LineMapper)
	s.app.Post("/lines", session, s.pageHandler.SubmitLineMapper)
	s.app.Get("/campus", session, s.pageHandler.CampusPaths)
	s.app.Post("/campus", session, s.pageHandler.SubmitCampusPaths)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Line mapper
	lines := api.Group("/lines", session)
	lines.Get("/state", s.lineMapperHandler.GetState)
	lines.Post("/mount", s.lineMapperHandler.Mount)
	lines.Post("/events", s.lineMapperHandler.PostEvent)

	// Campus path finder
	campus := api.Group("/campus", session)
	campus.Get("/state", s.campusPathsHandler.GetState)
	campus.Post("/mount", s.campusPathsHandler.Mount)
	campus.Post("/events", s.campusPathsHandler.PostEvent)

	api.Delete("/session", session, s.sessionHandler.End)
}

// App returns the underlying fiber app (used by tests).
func (s *Server) App() *fiber.App {
	return s.app
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		appCode := errors.ErrInternalServer.Code
		message := errors.ErrInternalServer.Message

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			appCode = "HTTP_ERROR"
			message = e.Message
		} else if appErr, ok := errors.As(err); ok {
			code = appErr.StatusCode
			appCode = appErr.Code
			message = appErr.Message
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    appCode,
				"message": message,
			},
		})
	}
}
