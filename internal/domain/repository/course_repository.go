package repository

import (
	"context"
	"errors"

	"aula/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCourseNotFound is a domain-specific error returned when a course is not found.
var ErrCourseNotFound = errors.New("course not found")

// CourseRepository defines the standard operations for course catalog persistence.
type CourseRepository interface {
	// List retrieves every course in the catalog.
	List(ctx context.Context) ([]*entity.Course, error)

	// FindByID retrieves a single course by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Course, error)

	// Create persists a new course entity and fills in the assigned ID.
	Create(ctx context.Context, course *entity.Course) error

	// Update modifies an existing course entity.
	Update(ctx context.Context, course *entity.Course) error

	// Delete removes a course by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
