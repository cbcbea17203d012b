package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Schedule is a weekly meeting slot for a course.
type Schedule struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CourseID  string    `gorm:"size:36;not null;index" json:"course_id"`
	Course    Course    `gorm:"foreignKey:CourseID" json:"course"`
	DayOfWeek string    `gorm:"size:20;not null" json:"day_of_week"`
	StartTime string    `gorm:"size:10;not null" json:"start_time"`
	EndTime   string    `gorm:"size:10;not null" json:"end_time"`
	Classroom *string   `gorm:"size:50" json:"classroom"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *Schedule) BeforeCreate(*gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
