package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Teacher lifecycle states.
const (
	TeacherStatusActive   = "active"
	TeacherStatusOnLeave  = "on_leave"
	TeacherStatusInactive = "inactive"
)

// Teacher is the employment profile attached to a user with the teacher role.
type Teacher struct {
	ID             string      `gorm:"primaryKey;size:36" json:"id"`
	UserID         string      `gorm:"size:36;not null;index" json:"user_id"`
	User           User        `gorm:"foreignKey:UserID" json:"user"`
	TeacherCode    string      `gorm:"size:50;uniqueIndex;not null" json:"teacher_code"`
	DepartmentID   *string     `gorm:"size:36" json:"department_id"`
	Department     *Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	Specialization *string     `gorm:"type:text" json:"specialization"`
	HireDate       time.Time   `gorm:"not null" json:"hire_date"`
	Status         string      `gorm:"size:20;not null;default:active" json:"status"`
	Phone          *string     `gorm:"size:20" json:"phone"`
	CreatedAt      time.Time   `json:"created_at"`
}

func (t *Teacher) BeforeCreate(*gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
