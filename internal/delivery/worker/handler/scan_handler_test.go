package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	mockUsecase "lifelog/internal/mocks/usecase"
	"lifelog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scanHandlerFixtures holds all test dependencies for scan handler tests.
type scanHandlerFixtures struct {
	handler *ScanHandler
	scan    *mockUsecase.MockScanUsecase
}

func createTestScanHandler(t *testing.T) scanHandlerFixtures {
	scan := mockUsecase.NewMockScanUsecase(t)

	handler := NewScanHandler(ScanHandlerParams{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Scan:   scan,
	})

	return scanHandlerFixtures{
		handler: handler,
		scan:    scan,
	}
}

func newScanRequest(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/scan", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestScanHandler_HandleScan_Success(t *testing.T) {
	fx := createTestScanHandler(t)
	c, rec := newScanRequest(t)

	report := &usecase.ScanReport{
		Scanned:   5,
		Delivered: 1,
		Warned:    2,
		Skipped:   1,
		Failed:    1,
	}

	fx.scan.EXPECT().
		RunScan(c.Request().Context()).
		Return(report, nil)

	err := fx.handler.HandleScan(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var got usecase.ScanReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, *report, got)
}

func TestScanHandler_HandleScan_RunError(t *testing.T) {
	fx := createTestScanHandler(t)
	c, rec := newScanRequest(t)

	fx.scan.EXPECT().
		RunScan(c.Request().Context()).
		Return(nil, errors.New("database error"))

	err := fx.handler.HandleScan(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
