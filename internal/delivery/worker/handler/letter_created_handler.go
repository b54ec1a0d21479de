package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"lifelog/config"
	deliverycontext "lifelog/internal/delivery/context"
	"lifelog/internal/domain/constants"
	"lifelog/internal/domain/repository"
	"lifelog/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// LetterCreatedHandler consumes letter.created events pushed by Pub/Sub and
// audits each new letter against the store.
type LetterCreatedHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	letterRepo     repository.LetterRepository
	userRepo       repository.UserRepository
}

// LetterCreatedHandlerParams holds dependencies for the LetterCreatedHandler
type LetterCreatedHandlerParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	LetterRepo repository.LetterRepository
	UserRepo   repository.UserRepository
}

// NewLetterCreatedHandler creates a new Pub/Sub push handler for letter.created events
func NewLetterCreatedHandler(params LetterCreatedHandlerParams) *LetterCreatedHandler {
	// Determine if we need to verify push auth based on config
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &LetterCreatedHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		letterRepo:     params.LetterRepo,
		userRepo:       params.UserRepo,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *LetterCreatedHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify Pub/Sub token in production for Google provider
	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Parse Pub/Sub message
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Decode base64 message data
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Parse letter event
	var event service.LetterEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse letter event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Extract request_id for distributed tracing
	requestID := h.extractRequestID(ctx, &pushMsg, &event)

	// Create request-scoped logger with request_id
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	// Update context with request_id and logger
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing letter event",
		slog.String("letter_id", event.LetterID),
		slog.String("type", event.Type),
	)

	// Process the event
	if err := h.processLetterCreated(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process letter event",
			slog.String("letter_id", event.LetterID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// Return 503 for retryable errors to trigger Pub/Sub retry
		// Return 200 for non-retryable errors to prevent infinite retries
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Letter event processed successfully",
		slog.String("letter_id", event.LetterID),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *LetterCreatedHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.LetterEvent) string {
	// 1. Try message attributes (from Pub/Sub)
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	// 2. Try event field (from JSON payload)
	if event.RequestID != "" {
		return event.RequestID
	}

	// 3. Try existing context (from RequestIDMiddleware via X-Request-Id header)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	// 4. Generate new UUID as fallback
	return uuid.New().String()
}

// processLetterCreated audits a freshly authored letter: the letter must
// exist and its recipient must still resolve. A letter that vanished is
// acked, a broken recipient reference is surfaced in the logs so support
// can follow up before delivery day.
func (h *LetterCreatedHandler) processLetterCreated(ctx context.Context, event *service.LetterEvent) error {
	reqLogger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	if event.Type != service.LetterEventCreated {
		reqLogger.Info("[Worker] Ignoring event of unexpected type",
			slog.String("type", event.Type),
		)

		return nil
	}

	letterID, err := uuid.Parse(event.LetterID)
	if err != nil {
		return errors.WithStack(err)
	}

	letter, err := h.letterRepo.FindLetterByID(ctx, letterID)
	if err != nil {
		if errors.Is(err, repository.ErrLetterNotFound) {
			reqLogger.Warn("[Worker] Letter referenced by event no longer exists",
				slog.String("letter_id", event.LetterID),
			)

			return nil
		}

		return newRetryableError(errors.WithStack(err))
	}

	if _, err := h.userRepo.FindUserByID(ctx, letter.RecipientID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			reqLogger.Warn("[Worker] Letter recipient does not resolve",
				slog.String("letter_id", event.LetterID),
				slog.String("recipient_id", letter.RecipientID.String()),
			)

			return nil
		}

		return newRetryableError(errors.WithStack(err))
	}

	return nil
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	// Get the Authorization header
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	// Extract Bearer token
	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// Construct the expected audience (the push endpoint URL)
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	// Validate the token using Google's ID token validator
	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	// Verify the token is from Google Pub/Sub
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	// Verify email is verified (if email claim exists)
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
