// Package httpapi is the HTTP front of the service. Routing, request
// logging, and the bearer-token gate live here; all domain logic stays in
// the services.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/dberestov/taskdeck/internal/logging"
	"github.com/dberestov/taskdeck/internal/server/auth"
	"github.com/dberestov/taskdeck/internal/server/tasks"
	"github.com/dberestov/taskdeck/internal/server/users"
)

type Server struct {
	address   string
	logger    logging.Logger
	users     *users.Service
	tasks     *tasks.Service
	tokens    *auth.TokenService
	staticDir string
}

func NewServer(address string, l logging.Logger, us *users.Service, ts *tasks.Service, tokens *auth.TokenService, staticDir string) *Server {
	return &Server{
		address:   address,
		logger:    l.With("module", "http_server"),
		users:     us,
		tasks:     ts,
		tokens:    tokens,
		staticDir: staticDir,
	}
}

// Handler builds the routed echo instance. Exposed separately from Run so
// tests can drive it with httptest.
func (s *Server) Handler() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(s.requestLogger)

	api := e.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/register", s.handleRegister)
	authGroup.POST("/login", s.handleLogin)
	authGroup.POST("/logout", s.handleLogout)
	authGroup.GET("/me", s.handleMe, s.requireAuth)

	todos := api.Group("/todos", s.requireAuth)
	todos.GET("", s.handleListTodos)
	todos.POST("", s.handleCreateTodo)
	todos.PUT("/:id", s.handleUpdateTodo)
	todos.DELETE("/:id", s.handleDeleteTodo)

	if s.staticDir != "" {
		e.Static("/", s.staticDir)
	}

	return e
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	e := s.Handler()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(shutdownCtx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := e.Start(s.address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// requestLogger emits one structured line per request.
func (s *Server) requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		req := c.Request()
		s.logger.Info(req.Context(), "request",
			"method", req.Method,
			"path", req.URL.Path,
			"status", c.Response().Status,
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
		)
		return nil
	}
}
