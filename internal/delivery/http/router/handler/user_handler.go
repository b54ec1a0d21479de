// Package handler contains the HTTP handlers for the public API.
package handler

import (
	"log/slog"
	"net/http"

	"lifelog/internal/delivery/http/response"
	"lifelog/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for account-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// pushTokenRequest carries the device token for push registration.
type pushTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

// RegisterUser handles the account registration request.
func (h *UserHandler) RegisterUser(c echo.Context) error {
	var input *usecase.RegisterUserInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.RegisterUser(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "User registered successfully")
}

// GetProfile handles the request to get the current user's profile.
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	user, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Profile retrieved successfully")
}

// Heartbeat stamps the caller's last-active timestamp. The app calls this on
// every foreground, which is what keeps their pending letters undelivered.
func (h *UserHandler) Heartbeat(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	if err := h.uc.Heartbeat(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Heartbeat recorded")
}

// RegisterPushToken stores the device's FCM token for the caller.
func (h *UserHandler) RegisterPushToken(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input *pushTokenRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid push token input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.RegisterPushToken(c.Request().Context(), userID, input.Token); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Push token registered")
}

// RemovePushToken clears the caller's FCM token.
func (h *UserHandler) RemovePushToken(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	if err := h.uc.RemovePushToken(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Push token removed")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// currentUserID extracts the authenticated user ID set by the auth middleware.
func currentUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get("userID").(uuid.UUID)

	return userID, ok
}
