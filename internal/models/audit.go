package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AuditLog captures one successful mutation performed through the API.
type AuditLog struct {
	ID         string            `gorm:"primaryKey;size:36" json:"id"`
	ActorID    string            `gorm:"size:36;not null;index" json:"actor_id"`
	Action     string            `gorm:"size:20;not null" json:"action"`
	Resource   string            `gorm:"size:50;not null;index" json:"resource"`
	ResourceID string            `gorm:"size:36" json:"resource_id"`
	Metadata   datatypes.JSONMap `gorm:"type:json" json:"metadata"`
	CreatedAt  time.Time         `json:"created_at"`
}

func (a *AuditLog) BeforeCreate(*gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
