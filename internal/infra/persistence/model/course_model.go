package model

import (
	"time"

	"github.com/google/uuid"
)

// CourseModel mirrors the 'courses' table.
type CourseModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Instructor  string    `gorm:"type:varchar(100)"`
	Price       float64   `gorm:"type:numeric(10,2)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CourseModel) TableName() string {
	return "courses"
}
