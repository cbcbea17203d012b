package service

import (
	"context"

	"github.com/rs/zerolog"
	"gorm.io/datatypes"

	"github.com/edunexo/academico-api/internal/models"
	"github.com/edunexo/academico-api/internal/repository"
)

// AuditService records and serves the mutation audit trail. Recording is
// best effort: a failed audit write never fails the mutation it describes.
type AuditService interface {
	Record(ctx context.Context, actorID, action, resource, resourceID string, metadata map[string]interface{})
	List(ctx context.Context, limit int) ([]models.AuditLog, error)
}

type auditService struct {
	repo   repository.AuditLogRepository
	logger zerolog.Logger
}

// NewAuditService builds an audit service.
func NewAuditService(repo repository.AuditLogRepository, logger zerolog.Logger) AuditService {
	return &auditService{
		repo:   repo,
		logger: logger.With().Str("component", "audit_service").Logger(),
	}
}

func (s *auditService) Record(ctx context.Context, actorID, action, resource, resourceID string, metadata map[string]interface{}) {
	entry := models.AuditLog{
		ActorID:    actorID,
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		Metadata:   datatypes.JSONMap(metadata),
	}

	if err := s.repo.Create(ctx, &entry); err != nil {
		s.logger.Error().Err(err).
			Str("resource", resource).
			Str("action", action).
			Msg("failed to record audit entry")
	}
}

func (s *auditService) List(ctx context.Context, limit int) ([]models.AuditLog, error) {
	return s.repo.List(ctx, limit)
}
