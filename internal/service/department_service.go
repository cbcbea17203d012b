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

// Department error sentinels.
var (
	ErrDepartmentNotFound = errors.New("department not found")
	ErrDepartmentInUse    = errors.New("department still referenced by teachers or subjects")
)

// DepartmentService exposes CRUD over academic departments.
type DepartmentService interface {
	List(ctx context.Context) ([]models.Department, error)
	Get(ctx context.Context, id string) (models.Department, error)
	Create(ctx context.Context, payload dto.DepartmentCreateRequest) (models.Department, error)
	Update(ctx context.Context, id string, payload dto.DepartmentUpdateRequest) (models.Department, error)
	Delete(ctx context.Context, id string) error
}

type departmentService struct {
	repo      repository.DepartmentRepository
	teachers  repository.TeacherRepository
	subjects  repository.SubjectRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewDepartmentService builds a department service.
func NewDepartmentService(repo repository.DepartmentRepository, teachers repository.TeacherRepository, subjects repository.SubjectRepository, validate *validator.Validate, logger zerolog.Logger) DepartmentService {
	return &departmentService{
		repo:      repo,
		teachers:  teachers,
		subjects:  subjects,
		validator: validate,
		logger:    logger.With().Str("component", "department_service").Logger(),
	}
}

func (s *departmentService) List(ctx context.Context) ([]models.Department, error) {
	return s.repo.List(ctx)
}

func (s *departmentService) Get(ctx context.Context, id string) (models.Department, error) {
	department, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Department{}, ErrDepartmentNotFound
		}
		return models.Department{}, err
	}

	return department, nil
}

func (s *departmentService) Create(ctx context.Context, payload dto.DepartmentCreateRequest) (models.Department, error) {
	if err := s.validator.Struct(payload); err != nil {
		return models.Department{}, err
	}

	department := models.Department{
		Name:        payload.Name,
		Description: payload.Description,
		Head:        payload.Head,
	}

	if err := s.repo.Create(ctx, &department); err != nil {
		return models.Department{}, err
	}

	s.logger.Info().Str("department_id", department.ID).Msg("department created")

	return department, nil
}

func (s *departmentService) Update(ctx context.Context, id string, payload dto.DepartmentUpdateRequest) (models.Department, error) {
	if err := s.validator.Struct(payload); err != nil {
		return models.Department{}, err
	}

	department, err := s.Get(ctx, id)
	if err != nil {
		return models.Department{}, err
	}

	if payload.Name != nil {
		department.Name = *payload.Name
	}
	if payload.Description != nil {
		department.Description = payload.Description
	}
	if payload.Head != nil {
		department.Head = payload.Head
	}

	if err := s.repo.Update(ctx, &department); err != nil {
		return models.Department{}, err
	}

	return department, nil
}

func (s *departmentService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	teacherCount, err := s.teachers.CountByDepartment(ctx, id)
	if err != nil {
		return err
	}
	if teacherCount > 0 {
		return ErrDepartmentInUse
	}

	subjectCount, err := s.subjects.CountByDepartment(ctx, id)
	if err != nil {
		return err
	}
	if subjectCount > 0 {
		return ErrDepartmentInUse
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDepartmentNotFound
		}
		return err
	}

	s.logger.Info().Str("department_id", id).Msg("department deleted")
	return nil
}
