package impl

import (
	"context"
	"log/slog"

	"aula/internal/domain/entity"
	domainerrors "aula/internal/domain/errors"
	"aula/internal/domain/repository"
	"aula/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// courseService implements the CourseUsecase interface.
type courseService struct {
	courseRepo repository.CourseRepository
	logger     *slog.Logger
}

// CourseServiceParams holds dependencies for courseService, injected by Fx.
type CourseServiceParams struct {
	fx.In

	CourseRepo repository.CourseRepository
	Logger     *slog.Logger
}

// NewCourseService is the constructor for courseService.
func NewCourseService(params CourseServiceParams) usecase.CourseUsecase {
	return &courseService{
		courseRepo: params.CourseRepo,
		logger:     params.Logger,
	}
}

// List returns the whole catalog.
func (srv *courseService) List(ctx context.Context) ([]*entity.Course, error) {
	courses, err := srv.courseRepo.List(ctx)
	if err != nil {
		srv.logger.Error("Failed to list courses", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list courses")
	}

	return courses, nil
}

// GetByID returns a single course or the not-found error.
func (srv *courseService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Course, error) {
	course, err := srv.courseRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCourseNotFound, "course lookup failed")
		}
		srv.logger.Error("Failed to find course", slog.Any("courseID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find course")
	}

	return course, nil
}

// Create adds a new catalog entry.
func (srv *courseService) Create(ctx context.Context, input *usecase.CourseInput) (*entity.Course, error) {
	if input == nil || input.Name == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "course name is required")
	}

	course := &entity.Course{
		Name:        input.Name,
		Description: input.Description,
		Instructor:  input.Instructor,
		Price:       input.Price,
	}

	if err := srv.courseRepo.Create(ctx, course); err != nil {
		srv.logger.Error("Failed to create course", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create course")
	}

	srv.logger.Info("Course created", slog.Any("courseID", course.ID))

	return course, nil
}

// Update replaces the mutable fields of an existing catalog entry.
func (srv *courseService) Update(ctx context.Context, id uuid.UUID, input *usecase.CourseInput) (*entity.Course, error) {
	if input == nil || input.Name == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "course name is required")
	}

	course := &entity.Course{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
		Instructor:  input.Instructor,
		Price:       input.Price,
	}

	if err := srv.courseRepo.Update(ctx, course); err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCourseNotFound, "course update failed")
		}
		srv.logger.Error("Failed to update course", slog.Any("courseID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update course")
	}

	return srv.GetByID(ctx, id)
}

// Delete removes a catalog entry.
func (srv *courseService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.courseRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return errors.Wrap(domainerrors.ErrCourseNotFound, "course delete failed")
		}
		srv.logger.Error("Failed to delete course", slog.Any("courseID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete course")
	}

	srv.logger.Info("Course deleted", slog.Any("courseID", id))

	return nil
}
