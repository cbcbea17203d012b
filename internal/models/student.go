package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Student lifecycle states.
const (
	StudentStatusActive   = "active"
	StudentStatusInactive = "inactive"
	StudentStatusAtRisk   = "at_risk"
)

// Student is the academic profile attached to a user with the student role.
type Student struct {
	ID             string     `gorm:"primaryKey;size:36" json:"id"`
	UserID         string     `gorm:"size:36;not null;index" json:"user_id"`
	User           User       `gorm:"foreignKey:UserID" json:"user"`
	StudentCode    string     `gorm:"size:50;uniqueIndex;not null" json:"student_code"`
	Grade          string     `gorm:"size:20;not null" json:"grade"`
	DateOfBirth    *time.Time `json:"date_of_birth"`
	Address        *string    `gorm:"type:text" json:"address"`
	Phone          *string    `gorm:"size:20" json:"phone"`
	EnrollmentDate time.Time  `gorm:"not null" json:"enrollment_date"`
	Status         string     `gorm:"size:20;not null;default:active" json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
}

func (s *Student) BeforeCreate(*gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
