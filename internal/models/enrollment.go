package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Enrollment statuses.
const (
	EnrollmentStatusEnrolled  = "enrolled"
	EnrollmentStatusDropped   = "dropped"
	EnrollmentStatusCompleted = "completed"
)

// Enrollment registers a student in a course.
type Enrollment struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`
	StudentID      string    `gorm:"size:36;not null;index" json:"student_id"`
	Student        Student   `gorm:"foreignKey:StudentID" json:"student"`
	CourseID       string    `gorm:"size:36;not null;index" json:"course_id"`
	Course         Course    `gorm:"foreignKey:CourseID" json:"course"`
	EnrollmentDate time.Time `gorm:"autoCreateTime" json:"enrollment_date"`
	Status         string    `gorm:"size:20;not null;default:enrolled" json:"status"`
	FinalGrade     *float64  `json:"final_grade"`
}

func (e *Enrollment) BeforeCreate(*gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
