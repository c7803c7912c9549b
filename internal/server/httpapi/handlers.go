package httpapi

import (
	"errors"
	"net/http"
	"regexp"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/dberestov/taskdeck/internal/common"
	"github.com/dberestov/taskdeck/internal/server/tasks"
)

// emailPattern is a shape check only: something before and after an @ and a
// dot in the domain part. Real validation is delivery.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const minPasswordLength = 8

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type createTodoRequest struct {
	Text string `json:"text"`
}

type updateTodoRequest struct {
	Text      *string `json:"text"`
	Completed *bool   `json:"completed"`
}

func (s *Server) handleRegister(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Email and password are required"})
	}
	if !emailPattern.MatchString(req.Email) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid email format"})
	}
	if len(req.Password) < minPasswordLength {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Password must be at least 8 characters"})
	}

	user, err := s.users.Register(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateEmail) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "Email already registered"})
		}
		return s.internalError(c, err)
	}

	return c.JSON(http.StatusCreated, user)
}

func (s *Server) handleLogin(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Email and password are required"})
	}

	token, user, err := s.users.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid credentials"})
		}
		return s.internalError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"token": token,
		"user":  echo.Map{"id": user.ID, "email": user.Email},
	})
}

// handleLogout is stateless: tokens carry their own expiry and there is no
// revocation list, so the client just discards its copy.
func (s *Server) handleLogout(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"message": "Logged out successfully"})
}

func (s *Server) handleMe(c echo.Context) error {
	claims := claimsFrom(c)

	user, err := s.users.GetByID(c.Request().Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "User not found"})
		}
		return s.internalError(c, err)
	}

	return c.JSON(http.StatusOK, user)
}

func (s *Server) handleListTodos(c echo.Context) error {
	claims := claimsFrom(c)

	list, err := s.tasks.List(c.Request().Context(), claims.UserID)
	if err != nil {
		return s.internalError(c, err)
	}

	return c.JSON(http.StatusOK, list)
}

func (s *Server) handleCreateTodo(c echo.Context) error {
	claims := claimsFrom(c)

	var req createTodoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Todo text is required"})
	}

	task, err := s.tasks.Create(c.Request().Context(), claims.UserID, req.Text)
	if err != nil {
		if errors.Is(err, common.ErrValidation) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Todo text is required"})
		}
		return s.internalError(c, err)
	}

	return c.JSON(http.StatusCreated, task)
}

func (s *Server) handleUpdateTodo(c echo.Context) error {
	claims := claimsFrom(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid todo ID"})
	}

	var req updateTodoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}

	task, err := s.tasks.Update(c.Request().Context(), claims.UserID, id, tasks.Change{
		Text:      req.Text,
		Completed: req.Completed,
	})
	if err != nil {
		switch {
		case errors.Is(err, common.ErrValidation):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Todo text cannot be empty"})
		case errors.Is(err, common.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Todo not found"})
		}
		return s.internalError(c, err)
	}

	return c.JSON(http.StatusOK, task)
}

func (s *Server) handleDeleteTodo(c echo.Context) error {
	claims := claimsFrom(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid todo ID"})
	}

	task, err := s.tasks.Delete(c.Request().Context(), claims.UserID, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Todo not found"})
		}
		return s.internalError(c, err)
	}

	return c.JSON(http.StatusOK, task)
}

// internalError logs the real cause and reports a generic 500; internals
// never leak to the client.
func (s *Server) internalError(c echo.Context, err error) error {
	s.logger.Error(c.Request().Context(), "internal error", "error", err)
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error"})
}
