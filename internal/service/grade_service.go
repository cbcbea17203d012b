package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/edunexo/academico-api/internal/dto"
	"github.com/edunexo/academico-api/internal/models"
	"github.com/edunexo/academico-api/internal/repository"
)

// Grade error sentinels.
var (
	ErrGradeNotFound    = errors.New("grade not found")
	ErrGradeOutOfBounds = errors.New("grade exceeds the maximum grade")
)

// GradeService manages assessment grades.
type GradeService interface {
	List(ctx context.Context) ([]models.Grade, error)
	ListByEnrollment(ctx context.Context, enrollmentID string) ([]models.Grade, error)
	Create(ctx context.Context, payload dto.GradeCreateRequest) (models.Grade, error)
	Update(ctx context.Context, id string, payload dto.GradeUpdateRequest) (models.Grade, error)
	Delete(ctx context.Context, id string) error
}

type gradeService struct {
	repo        repository.GradeRepository
	enrollments repository.EnrollmentRepository
	validator   *validator.Validate
	logger      zerolog.Logger
}

// NewGradeService builds a grade service.
func NewGradeService(repo repository.GradeRepository, enrollments repository.EnrollmentRepository, validate *validator.Validate, logger zerolog.Logger) GradeService {
	return &gradeService{
		repo:        repo,
		enrollments: enrollments,
		validator:   validate,
		logger:      logger.With().Str("component", "grade_service").Logger(),
	}
}

func (s *gradeService) List(ctx context.Context) ([]models.Grade, error) {
	return s.repo.List(ctx)
}

func (s *gradeService) ListByEnrollment(ctx context.Context, enrollmentID string) ([]models.Grade, error) {
	return s.repo.ListByEnrollment(ctx, enrollmentID)
}

func (s *gradeService) Create(ctx context.Context, payload dto.GradeCreateRequest) (models.Grade, error) {
	if err := s.validator.Struct(payload); err != nil {
		return models.Grade{}, err
	}

	if _, err := s.enrollments.GetByID(ctx, payload.EnrollmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Grade{}, ErrEnrollmentNotFound
		}
		return models.Grade{}, err
	}

	assessmentDate, err := time.Parse(dateLayout, payload.AssessmentDate)
	if err != nil {
		return models.Grade{}, err
	}

	grade := models.Grade{
		EnrollmentID:   payload.EnrollmentID,
		AssessmentType: payload.AssessmentType,
		AssessmentName: payload.AssessmentName,
		Grade:          *payload.Grade,
		MaxGrade:       100,
		Weight:         payload.Weight,
		AssessmentDate: assessmentDate,
	}
	if payload.MaxGrade != nil {
		grade.MaxGrade = *payload.MaxGrade
	}

	if grade.Grade > grade.MaxGrade {
		return models.Grade{}, ErrGradeOutOfBounds
	}

	if err := s.repo.Create(ctx, &grade); err != nil {
		return models.Grade{}, err
	}

	s.logger.Info().Str("grade_id", grade.ID).Str("enrollment_id", grade.EnrollmentID).Msg("grade recorded")

	return grade, nil
}

func (s *gradeService) Update(ctx context.Context, id string, payload dto.GradeUpdateRequest) (models.Grade, error) {
	if err := s.validator.Struct(payload); err != nil {
		return models.Grade{}, err
	}

	grade, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Grade{}, ErrGradeNotFound
		}
		return models.Grade{}, err
	}

	if payload.AssessmentType != nil {
		grade.AssessmentType = *payload.AssessmentType
	}
	if payload.AssessmentName != nil {
		grade.AssessmentName = *payload.AssessmentName
	}
	if payload.Grade != nil {
		grade.Grade = *payload.Grade
	}
	if payload.MaxGrade != nil {
		grade.MaxGrade = *payload.MaxGrade
	}
	if payload.Weight != nil {
		grade.Weight = payload.Weight
	}

	if grade.Grade > grade.MaxGrade {
		return models.Grade{}, ErrGradeOutOfBounds
	}

	if err := s.repo.Update(ctx, &grade); err != nil {
		return models.Grade{}, err
	}

	s.logger.Info().Str("grade_id", grade.ID).Msg("grade updated")

	return grade, nil
}

func (s *gradeService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGradeNotFound
		}
		return err
	}

	s.logger.Info().Str("grade_id", id).Msg("grade deleted")
	return nil
}
