package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/edunexo/academico-api/internal/dto"
	"github.com/edunexo/academico-api/internal/models"
	"github.com/edunexo/academico-api/internal/repository"
)

// Subject error sentinels.
var (
	ErrSubjectNotFound      = errors.New("subject not found")
	ErrDuplicateSubjectCode = errors.New("subject code already in use")
	ErrSubjectInUse         = errors.New("subject still referenced by courses")
)

// SubjectService exposes CRUD over catalog subjects.
type SubjectService interface {
	List(ctx context.Context) ([]models.Subject, error)
	Get(ctx context.Context, id string) (models.Subject, error)
	Create(ctx context.Context, payload dto.SubjectCreateRequest) (models.Subject, error)
	Update(ctx context.Context, id string, payload dto.SubjectUpdateRequest) (models.Subject, error)
	Delete(ctx context.Context, id string) error
}

type subjectService struct {
	repo        repository.SubjectRepository
	departments repository.DepartmentRepository
	courses     repository.CourseRepository
	validator   *validator.Validate
	logger      zerolog.Logger
}

// NewSubjectService builds a subject service.
func NewSubjectService(repo repository.SubjectRepository, departments repository.DepartmentRepository, courses repository.CourseRepository, validate *validator.Validate, logger zerolog.Logger) SubjectService {
	return &subjectService{
		repo:        repo,
		departments: departments,
		courses:     courses,
		validator:   validate,
		logger:      logger.With().Str("component", "subject_service").Logger(),
	}
}

func (s *subjectService) List(ctx context.Context) ([]models.Subject, error) {
	return s.repo.List(ctx)
}

func (s *subjectService) Get(ctx context.Context, id string) (models.Subject, error) {
	subject, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Subject{}, ErrSubjectNotFound
		}
		return models.Subject{}, err
	}

	return subject, nil
}

func (s *subjectService) Create(ctx context.Context, payload dto.SubjectCreateRequest) (models.Subject, error) {
	if err := s.validator.Struct(payload); err != nil {
		return models.Subject{}, err
	}

	if _, err := s.repo.GetByCode(ctx, payload.Code); err == nil {
		return models.Subject{}, ErrDuplicateSubjectCode
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Subject{}, err
	}

	if payload.DepartmentID != nil {
		if _, err := s.departments.GetByID(ctx, *payload.DepartmentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.Subject{}, ErrDepartmentNotFound
			}
			return models.Subject{}, err
		}
	}

	subject := models.Subject{
		Name:         payload.Name,
		Code:         payload.Code,
		Description:  payload.Description,
		DepartmentID: payload.DepartmentID,
		Credits:      3,
	}
	if payload.Credits != nil {
		subject.Credits = *payload.Credits
	}

	if err := s.repo.Create(ctx, &subject); err != nil {
		return models.Subject{}, err
	}

	s.logger.Info().Str("subject_id", subject.ID).Str("code", subject.Code).Msg("subject created")

	return subject, nil
}

func (s *subjectService) Update(ctx context.Context, id string, payload dto.SubjectUpdateRequest) (models.Subject, error) {
	if err := s.validator.Struct(payload); err != nil {
		return models.Subject{}, err
	}

	subject, err := s.Get(ctx, id)
	if err != nil {
		return models.Subject{}, err
	}

	if payload.DepartmentID != nil {
		if _, err := s.departments.GetByID(ctx, *payload.DepartmentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.Subject{}, ErrDepartmentNotFound
			}
			return models.Subject{}, err
		}
		subject.DepartmentID = payload.DepartmentID
	}
	if payload.Name != nil {
		subject.Name = *payload.Name
	}
	if payload.Description != nil {
		subject.Description = payload.Description
	}
	if payload.Credits != nil {
		subject.Credits = *payload.Credits
	}

	if err := s.repo.Update(ctx, &subject); err != nil {
		return models.Subject{}, err
	}

	return subject, nil
}

func (s *subjectService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	dependents, err := s.courses.CountBySubject(ctx, id)
	if err != nil {
		return err
	}
	if dependents > 0 {
		return ErrSubjectInUse
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSubjectNotFound
		}
		return err
	}

	s.logger.Info().Str("subject_id", id).Msg("subject deleted")
	return nil
}
