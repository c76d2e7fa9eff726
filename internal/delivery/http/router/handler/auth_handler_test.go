package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"aula/internal/delivery/http/middleware"
	"aula/internal/delivery/http/validator"
	domainerrors "aula/internal/domain/errors"
	"aula/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAuthUsecase struct {
	mock.Mock
}

func (m *mockAuthUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.RegisterOutput), args.Error(1)
}

func (m *mockAuthUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.LoginOutput), args.Error(1)
}

// newTestServer wires the handler into a real echo instance with the central
// error handler, so the tests exercise the same outcome-to-status mapping the
// server uses.
func newTestServer(uc usecase.AuthUsecase) *echo.Echo {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	h := NewAuthHandler(uc, logger)
	e.POST("/api/auth/registro", h.Register)
	e.POST("/api/auth/login", h.Login)
	e.GET("/health", HealthCheck)

	return e
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestAuthHandler_Register_Created(t *testing.T) {
	uc := &mockAuthUsecase{}
	e := newTestServer(uc)

	output := &usecase.RegisterOutput{ID: uuid.New(), Name: "Ana", Email: "ana@x.com"}
	uc.On("Register", mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		Return(output, nil)

	rec := doJSON(t, e, http.MethodPost, "/api/auth/registro",
		`{"name":"Ana","email":"ana@x.com","password":"s3cr3t"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Usuario registrado", body["message"])

	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ana@x.com", data["email"])
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	uc := &mockAuthUsecase{}
	e := newTestServer(uc)

	uc.On("Register", mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrEmailAlreadyRegistered, "registration rejected"))

	rec := doJSON(t, e, http.MethodPost, "/api/auth/registro",
		`{"name":"Ana","email":"ana@x.com","password":"s3cr3t"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "El correo ya está registrado")
	assert.Contains(t, rec.Body.String(), "EMAIL_ALREADY_REGISTERED")
}

func TestAuthHandler_Register_ValidationFailed(t *testing.T) {
	uc := &mockAuthUsecase{}
	e := newTestServer(uc)

	// Missing name and password: rejected at the validator, before the usecase.
	rec := doJSON(t, e, http.MethodPost, "/api/auth/registro", `{"email":"ana@x.com"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Todos los campos son requeridos")
	uc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	uc := &mockAuthUsecase{}
	e := newTestServer(uc)

	output := &usecase.LoginOutput{Token: "signed.token.value"}
	uc.On("Login", mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(output, nil)

	rec := doJSON(t, e, http.MethodPost, "/api/auth/login",
		`{"email":"ana@x.com","password":"s3cr3t"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Acceso concedido")
	assert.Contains(t, rec.Body.String(), "signed.token.value")
}

func TestAuthHandler_Login_UserNotFound(t *testing.T) {
	uc := &mockAuthUsecase{}
	e := newTestServer(uc)

	uc.On("Login", mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrUserNotFound, "login failed"))

	rec := doJSON(t, e, http.MethodPost, "/api/auth/login",
		`{"email":"nobody@x.com","password":"s3cr3t"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Usuario no encontrado")
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	uc := &mockAuthUsecase{}
	e := newTestServer(uc)

	uc.On("Login", mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed"))

	rec := doJSON(t, e, http.MethodPost, "/api/auth/login",
		`{"email":"ana@x.com","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Contraseña incorrecta")
}

func TestAuthHandler_UnexpectedErrorIsOpaque(t *testing.T) {
	uc := &mockAuthUsecase{}
	e := newTestServer(uc)

	uc.On("Login", mock.Anything, mock.Anything).
		Return(nil, errors.New("pq: connection refused on 10.0.0.7"))

	rec := doJSON(t, e, http.MethodPost, "/api/auth/login",
		`{"email":"ana@x.com","password":"s3cr3t"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Error en el servidor")
	// Internal details stay in the logs, not the response.
	assert.NotContains(t, rec.Body.String(), "connection refused")
	assert.NotContains(t, rec.Body.String(), "10.0.0.7")
}

func TestHealthCheck(t *testing.T) {
	e := newTestServer(&mockAuthUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
