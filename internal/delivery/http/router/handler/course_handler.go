package handler

import (
	"log/slog"
	"net/http"

	"aula/internal/delivery/http/response"
	"aula/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CourseHandler holds dependencies for course catalog handlers.
type CourseHandler struct {
	uc     usecase.CourseUsecase
	logger *slog.Logger
}

// NewCourseHandler is the constructor for CourseHandler, injected by Fx.
func NewCourseHandler(uc usecase.CourseUsecase, logger *slog.Logger) *CourseHandler {
	return &CourseHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles listing the whole catalog.
func (h *CourseHandler) List(c echo.Context) error {
	courses, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, courses, "")
}

// GetByID handles fetching a single course.
func (h *CourseHandler) GetByID(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Identificador de curso inválido")
	}

	course, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, course, "")
}

// Create handles adding a course to the catalog.
func (h *CourseHandler) Create(c echo.Context) error {
	var input usecase.CourseInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de curso inválidos")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Datos de curso inválidos")
	}

	course, err := h.uc.Create(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, course, "Curso creado")
}

// Update handles replacing a course's fields.
func (h *CourseHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Identificador de curso inválido")
	}

	var input usecase.CourseInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de curso inválidos")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Datos de curso inválidos")
	}

	course, err := h.uc.Update(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, course, "Curso actualizado")
}

// Delete handles removing a course from the catalog.
func (h *CourseHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Identificador de curso inválido")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Curso eliminado"}, "Curso eliminado")
}
