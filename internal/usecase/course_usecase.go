package usecase

import (
	"context"

	"aula/internal/domain/entity"

	"github.com/google/uuid"
)

// CourseInput defines the data for creating or updating a catalog entry.
type CourseInput struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Instructor  string  `json:"instructor"`
	Price       float64 `json:"price" validate:"gte=0"`
}

// CourseUsecase defines the interface for course catalog operations.
// These are pass-through data access with existence checks only.
type CourseUsecase interface {
	List(ctx context.Context) ([]*entity.Course, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Course, error)
	Create(ctx context.Context, input *CourseInput) (*entity.Course, error)
	Update(ctx context.Context, id uuid.UUID, input *CourseInput) (*entity.Course, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
