package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"aula/internal/delivery/http/middleware"
	"aula/internal/delivery/http/validator"
	"aula/internal/domain/entity"
	domainerrors "aula/internal/domain/errors"
	"aula/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockCourseUsecase struct {
	mock.Mock
}

func (m *mockCourseUsecase) List(ctx context.Context) ([]*entity.Course, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Course), args.Error(1)
}

func (m *mockCourseUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entity.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Course), args.Error(1)
}

func (m *mockCourseUsecase) Create(ctx context.Context, input *usecase.CourseInput) (*entity.Course, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Course), args.Error(1)
}

func (m *mockCourseUsecase) Update(ctx context.Context, id uuid.UUID, input *usecase.CourseInput) (*entity.Course, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Course), args.Error(1)
}

func (m *mockCourseUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func newCourseTestServer(uc usecase.CourseUsecase) *echo.Echo {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	h := NewCourseHandler(uc, logger)
	e.GET("/api/cursos", h.List)
	e.GET("/api/cursos/:id", h.GetByID)
	e.POST("/api/cursos", h.Create)

	return e
}

func TestCourseHandler_List(t *testing.T) {
	uc := &mockCourseUsecase{}
	e := newCourseTestServer(uc)

	uc.On("List", mock.Anything).Return([]*entity.Course{
		{ID: uuid.New(), Name: "Go desde cero"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/cursos", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Go desde cero")
}

func TestCourseHandler_GetByID_NotFound(t *testing.T) {
	uc := &mockCourseUsecase{}
	e := newCourseTestServer(uc)

	uc.On("GetByID", mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrCourseNotFound, "course lookup failed"))

	req := httptest.NewRequest(http.MethodGet, "/api/cursos/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Curso no encontrado")
}

func TestCourseHandler_GetByID_BadIdentifier(t *testing.T) {
	uc := &mockCourseUsecase{}
	e := newCourseTestServer(uc)

	req := httptest.NewRequest(http.MethodGet, "/api/cursos/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Identificador de curso inválido")
	uc.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestCourseHandler_Create(t *testing.T) {
	uc := &mockCourseUsecase{}
	e := newCourseTestServer(uc)

	uc.On("Create", mock.Anything, mock.AnythingOfType("*usecase.CourseInput")).
		Return(&entity.Course{ID: uuid.New(), Name: "Go desde cero"}, nil)

	rec := doJSON(t, e, http.MethodPost, "/api/cursos", `{"name":"Go desde cero","price":49.9}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Curso creado")
}

func TestCourseHandler_Create_MissingName(t *testing.T) {
	uc := &mockCourseUsecase{}
	e := newCourseTestServer(uc)

	rec := doJSON(t, e, http.MethodPost, "/api/cursos", `{"price":49.9}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
