// Package handler contains the worker's HTTP handlers.
package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "lifelog/internal/delivery/context"
	"lifelog/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ScanHandler triggers an inactivity scan over all pending letters.
type ScanHandler struct {
	logger *slog.Logger
	scan   usecase.ScanUsecase
}

// ScanHandlerParams holds dependencies for the ScanHandler
type ScanHandlerParams struct {
	fx.In

	Logger *slog.Logger
	Scan   usecase.ScanUsecase
}

// NewScanHandler creates a new scan trigger handler
func NewScanHandler(params ScanHandlerParams) *ScanHandler {
	return &ScanHandler{
		logger: params.Logger,
		scan:   params.Scan,
	}
}

// HandleScan runs one inactivity scan and reports the per-letter outcome
// counts. A failed run returns 500 so external schedulers can alert on it;
// per-letter failures are already isolated inside the scan and only show up
// in the failed count.
func (h *ScanHandler) HandleScan(c echo.Context) error {
	ctx := c.Request().Context()
	reqLogger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	report, err := h.scan.RunScan(ctx)
	if err != nil {
		reqLogger.Error("[Worker] Scan run failed", slog.Any("error", err))

		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "scan failed"})
	}

	return c.JSON(http.StatusOK, report)
}
