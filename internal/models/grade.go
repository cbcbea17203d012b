package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Grade records one graded assessment event within an enrollment.
type Grade struct {
	ID             string     `gorm:"primaryKey;size:36" json:"id"`
	EnrollmentID   string     `gorm:"size:36;not null;index" json:"enrollment_id"`
	Enrollment     Enrollment `gorm:"foreignKey:EnrollmentID" json:"enrollment"`
	AssessmentType string     `gorm:"size:50;not null" json:"assessment_type"`
	AssessmentName string     `gorm:"not null" json:"assessment_name"`
	Grade          float64    `gorm:"not null" json:"grade"`
	MaxGrade       float64    `gorm:"not null;default:100" json:"max_grade"`
	Weight         *float64   `json:"weight"`
	AssessmentDate time.Time  `gorm:"not null" json:"assessment_date"`
	CreatedAt      time.Time  `json:"created_at"`
}

func (g *Grade) BeforeCreate(*gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}
