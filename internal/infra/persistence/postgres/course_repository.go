package postgres

import (
	"context"

	"aula/internal/domain/entity"
	domainerrors "aula/internal/domain/errors"
	"aula/internal/domain/repository"
	"aula/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// courseRepository implements the repository.CourseRepository interface using GORM.
type courseRepository struct {
	db *gorm.DB
}

// NewCourseRepository is the constructor for courseRepository.
func NewCourseRepository(db *gorm.DB) repository.CourseRepository {
	return &courseRepository{db: db}
}

// List retrieves every course in the catalog.
func (repo *courseRepository) List(ctx context.Context) ([]*entity.Course, error) {
	var courseModels []*model.CourseModel
	if err := repo.db.WithContext(ctx).Order("created_at").Find(&courseModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list courses")
	}

	courses := make([]*entity.Course, 0, len(courseModels))
	for _, courseM := range courseModels {
		courses = append(courses, toCourseDomain(courseM))
	}

	return courses, nil
}

// FindByID retrieves a single course by its unique ID.
func (repo *courseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Course, error) {
	var courseM model.CourseModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&courseM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCourseNotFound
		}

		return nil, errors.Wrap(err, "failed to find course by id")
	}

	return toCourseDomain(&courseM), nil
}

// Create persists a new course entity to the database.
func (repo *courseRepository) Create(ctx context.Context, course *entity.Course) error {
	courseM := fromCourseDomain(course)

	if err := repo.db.WithContext(ctx).Create(courseM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required course information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create course")
	}

	course.ID = courseM.ID
	course.CreatedAt = courseM.CreatedAt
	course.UpdatedAt = courseM.UpdatedAt

	return nil
}

// Update modifies an existing course entity in the database.
func (repo *courseRepository) Update(ctx context.Context, course *entity.Course) error {
	courseM := fromCourseDomain(course)

	result := repo.db.WithContext(ctx).Model(&model.CourseModel{}).
		Where("id = ?", course.ID).
		Updates(map[string]any{
			"name":        courseM.Name,
			"description": courseM.Description,
			"instructor":  courseM.Instructor,
			"price":       courseM.Price,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update course")
	}

	// No rows affected means the course does not exist.
	if result.RowsAffected == 0 {
		return repository.ErrCourseNotFound
	}

	return nil
}

// Delete removes a course by its ID.
func (repo *courseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CourseModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete course")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCourseNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toCourseDomain(data *model.CourseModel) *entity.Course {
	if data == nil {
		return nil
	}

	return &entity.Course{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Instructor:  data.Instructor,
		Price:       data.Price,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromCourseDomain(data *entity.Course) *model.CourseModel {
	if data == nil {
		return nil
	}

	return &model.CourseModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Instructor:  data.Instructor,
		Price:       data.Price,
	}
}
