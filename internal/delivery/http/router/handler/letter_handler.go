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

// LetterHandler holds dependencies for letter-related handlers.
type LetterHandler struct {
	uc     usecase.LetterUsecase
	logger *slog.Logger
}

// NewLetterHandler is the constructor for LetterHandler, injected by Fx.
func NewLetterHandler(uc usecase.LetterUsecase, logger *slog.Logger) *LetterHandler {
	return &LetterHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateLetter handles authoring a new letter.
func (h *LetterHandler) CreateLetter(c echo.Context) error {
	senderID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input *usecase.CreateLetterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid letter input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	letter, err := h.uc.CreateLetter(c.Request().Context(), senderID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, letter, "Letter created successfully")
}

// GetLetter handles retrieving a single letter. The usecase enforces that
// only the sender, or the recipient after delivery, may read it.
func (h *LetterHandler) GetLetter(c echo.Context) error {
	requesterID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	letterID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid letter ID")
	}

	letter, err := h.uc.GetLetter(c.Request().Context(), requesterID, letterID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, letter, "Letter retrieved successfully")
}

// ListLetters handles listing every letter the caller has authored.
func (h *LetterHandler) ListLetters(c echo.Context) error {
	senderID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	letters, err := h.uc.ListLettersBySender(c.Request().Context(), senderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, letters, "Letters retrieved successfully")
}
