package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Attendance statuses.
const (
	AttendanceStatusPresent = "present"
	AttendanceStatusAbsent  = "absent"
	AttendanceStatusLate    = "late"
	AttendanceStatusExcused = "excused"
)

// Attendance records one class-day attendance mark for an enrollment.
type Attendance struct {
	ID           string     `gorm:"primaryKey;size:36" json:"id"`
	EnrollmentID string     `gorm:"size:36;not null;index" json:"enrollment_id"`
	Enrollment   Enrollment `gorm:"foreignKey:EnrollmentID" json:"enrollment"`
	Date         time.Time  `gorm:"not null" json:"date"`
	Status       string     `gorm:"size:20;not null" json:"status"`
	Notes        *string    `gorm:"type:text" json:"notes"`
	CreatedAt    time.Time  `json:"created_at"`
}

// TableName keeps the historical singular table name.
func (Attendance) TableName() string { return "attendance" }

func (a *Attendance) BeforeCreate(*gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
