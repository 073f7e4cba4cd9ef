package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"laundrypro/internal/delivery/http/validator"
	"laundrypro/internal/domain/entity"
	"laundrypro/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testActor builds a customer actor stored under the auth middleware's
// context key.
func testActor() usecase.Actor {
	return usecase.Actor{
		UserID: uuid.New(),
		Role:   entity.RoleCustomer,
	}
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestUserHandler_Register_MalformedBody(t *testing.T) {
	h := NewUserHandler(nil, newTestLogger())

	c, rec := newTestContext(t, http.MethodPost, "/auth/register", "{not json")

	err := h.Register(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestUserHandler_Register_MissingPassword(t *testing.T) {
	h := NewUserHandler(nil, newTestLogger())

	body := `{"phone":"+2348012345678","first_name":"Ada","last_name":"Obi"}`
	c, _ := newTestContext(t, http.MethodPost, "/auth/register", body)

	err := h.Register(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestUserHandler_Register_ShortPassword(t *testing.T) {
	h := NewUserHandler(nil, newTestLogger())

	body := `{"phone":"+2348012345678","password":"short","first_name":"Ada","last_name":"Obi"}`
	c, _ := newTestContext(t, http.MethodPost, "/auth/register", body)

	err := h.Register(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestUserHandler_Login_MissingPhone(t *testing.T) {
	h := NewUserHandler(nil, newTestLogger())

	c, _ := newTestContext(t, http.MethodPost, "/auth/login", `{"password":"secret-password"}`)

	err := h.Login(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestUserHandler_GetProfile_NoActor(t *testing.T) {
	h := NewUserHandler(nil, newTestLogger())

	c, rec := newTestContext(t, http.MethodGet, "/profile", "")

	err := h.GetProfile(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "MISSING_ACTOR")
}

func TestOrderHandler_CreateOrder_NoActor(t *testing.T) {
	h := NewOrderHandler(nil, newTestLogger())

	c, _ := newTestContext(t, http.MethodPost, "/orders", `{}`)

	err := h.CreateOrder(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestOrderHandler_GetOrder_InvalidID(t *testing.T) {
	h := NewOrderHandler(nil, newTestLogger())

	c, _ := newTestContext(t, http.MethodGet, "/orders/not-a-uuid", "")
	c.Set("actor", testActor())
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := h.GetOrder(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestOrderHandler_CreateOrder_EmptyItems(t *testing.T) {
	h := NewOrderHandler(nil, newTestLogger())

	body := `{
		"service_id": "0b6a8df4-5f31-4f0c-9a5b-9f3c7d1e2a3b",
		"branch_id": "1c7b9ef5-6a42-4a1d-8b6c-0a4d8e2f3b4c",
		"pickup_type": "dropoff",
		"pickup_scheduled_for": "2026-09-01T10:00:00Z",
		"items": []
	}`
	c, _ := newTestContext(t, http.MethodPost, "/orders", body)
	c.Set("actor", testActor())

	err := h.CreateOrder(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}
