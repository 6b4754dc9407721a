package http_handler

import (
	"context"
	"errors"
	"net"

	"github.com/anthanhphan/go-file-board/internal/filehost/config"
	"github.com/anthanhphan/go-file-board/internal/filehost/port"
	sdklogger "github.com/anthanhphan/gosdk/logger"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type Server struct {
	app   *fiber.App
	cfg   *config.Config
	files port.FileService
	board port.NoticeBoard
}

func NewServer(cfg *config.Config, files port.FileService, board port.NoticeBoard) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit:             cfg.Server.BodyLimit,
		DisableStartupMessage: true,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New())

	s := &Server{
		app:   app,
		cfg:   cfg,
		files: files,
		board: board,
	}

	s.registerRoutes()

	return s
}

// registerRoutes is the full route table. fiber matches in registration order,
// so the fixed paths must come before the wildcard file routes.
func (s *Server) registerRoutes() {
	s.app.Get("/notice", s.handleGetNotice)
	s.app.Post("/notice", s.handlePostNotice)
	s.app.Get("/ws", s.requireUpgrade, websocket.New(s.handleSocket))

	s.app.Get("/", s.handleIndex)
	s.app.Post("/", s.handleUpload)

	s.app.Put("/*", s.handlePut)
	s.app.Get("/*", s.handleDownload)
	s.app.Delete("/*", s.handleDelete)
}

func (s *Server) Start() error {
	return s.app.Listen(s.cfg.Server.Addr)
}

// Listener serves on an already bound listener.
func (s *Server) Listener(ln net.Listener) error {
	return s.app.Listener(ln)
}

func (s *Server) Stop(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func (s *Server) sendJSONError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

// sendServiceError maps a service error onto its HTTP status.
func (s *Server) sendServiceError(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	if status >= fiber.StatusInternalServerError {
		sdklogger.Errorw("Request failed", "method", c.Method(), "path", c.Path(), "error", err.Error())
	}
	return s.sendJSONError(c, status, err.Error())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, port.ErrInvalidName), errors.Is(err, port.ErrInvalidRequest):
		return fiber.StatusBadRequest
	case errors.Is(err, port.ErrUnsupportedMediaType):
		return fiber.StatusUnsupportedMediaType
	case errors.Is(err, port.ErrFileNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}
