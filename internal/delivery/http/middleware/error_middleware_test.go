package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"laundrypro/internal/delivery/http/response"
	domainerrors "laundrypro/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newErrorTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestHandleHTTPError_AppError(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	c, rec := newErrorTestContext(t)

	m.HandleHTTPError(domainerrors.ErrUserNotFound, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	body := decodeErrorBody(t, rec)
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "USER_NOT_FOUND", body.Error.Code)
}

func TestHandleHTTPError_EchoHTTPError(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	c, rec := newErrorTestContext(t)

	m.HandleHTTPError(echo.NewHTTPError(http.StatusBadRequest, "Invalid order ID"), c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeErrorBody(t, rec)
	require.NotNil(t, body.Error)
	assert.Equal(t, "HTTP_ERROR", body.Error.Code)
	assert.Equal(t, "Invalid order ID", body.Message)
}

// Unrecognized errors often carry driver text such as hostnames or SQL
// fragments. That text belongs in the server log, never in the response.
func TestHandleHTTPError_UnknownErrorHidesInternalDetails(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	c, rec := newErrorTestContext(t)

	dbErr := errors.New(`pq: connection refused at db host "10.0.0.7"`)
	m.HandleHTTPError(errors.Wrap(dbErr, "failed to list orders"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "10.0.0.7")
	assert.NotContains(t, rec.Body.String(), "pq:")

	body := decodeErrorBody(t, rec)
	assert.False(t, body.Success)
	assert.Equal(t, "Internal server error", body.Message)
	require.NotNil(t, body.Error)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.Equal(t, "An unexpected error occurred", body.Error.Details)
}

func TestHandleHTTPError_CommittedResponseUntouched(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	c, rec := newErrorTestContext(t)

	require.NoError(t, c.NoContent(http.StatusNoContent))
	m.HandleHTTPError(errors.New("late failure"), c)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}
