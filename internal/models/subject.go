package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Subject is a catalog entry ("Calculus") that courses instantiate per period.
type Subject struct {
	ID           string      `gorm:"primaryKey;size:36" json:"id"`
	Name         string      `gorm:"size:255;not null" json:"name"`
	Code         string      `gorm:"size:20;uniqueIndex;not null" json:"code"`
	Description  *string     `gorm:"type:text" json:"description"`
	Credits      int         `gorm:"not null;default:3" json:"credits"`
	DepartmentID *string     `gorm:"size:36" json:"department_id"`
	Department   *Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
}

func (s *Subject) BeforeCreate(*gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
