package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Course statuses.
const (
	CourseStatusActive   = "active"
	CourseStatusInactive = "inactive"
)

// Course is a scheduled instance of a subject taught in an academic period.
type Course struct {
	ID               string         `gorm:"primaryKey;size:36" json:"id"`
	SubjectID        string         `gorm:"size:36;not null;index" json:"subject_id"`
	Subject          Subject        `gorm:"foreignKey:SubjectID" json:"subject"`
	TeacherID        string         `gorm:"size:36;not null;index" json:"teacher_id"`
	Teacher          Teacher        `gorm:"foreignKey:TeacherID" json:"teacher"`
	AcademicPeriodID string         `gorm:"size:36;not null;index" json:"academic_period_id"`
	AcademicPeriod   AcademicPeriod `gorm:"foreignKey:AcademicPeriodID" json:"academic_period"`
	CourseCode       string         `gorm:"size:50;uniqueIndex;not null" json:"course_code"`
	Schedule         *string        `gorm:"type:text" json:"schedule"`
	MaxStudents      int            `gorm:"default:30" json:"max_students"`
	Status           string         `gorm:"size:20;not null;default:active" json:"status"`
	CreatedAt        time.Time      `json:"created_at"`
}

func (c *Course) BeforeCreate(*gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
