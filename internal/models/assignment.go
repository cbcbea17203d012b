package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Assignment is a due-dated task published for a course.
type Assignment struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	CourseID    string    `gorm:"size:36;not null;index" json:"course_id"`
	Course      Course    `gorm:"foreignKey:CourseID" json:"course"`
	Title       string    `gorm:"not null" json:"title"`
	Description *string   `gorm:"type:text" json:"description"`
	DueDate     time.Time `gorm:"not null" json:"due_date"`
	MaxPoints   float64   `gorm:"not null;default:100" json:"max_points"`
	CreatedAt   time.Time `json:"created_at"`
}

func (a *Assignment) BeforeCreate(*gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
