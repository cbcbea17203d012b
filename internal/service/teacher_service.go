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

// Teacher error sentinels.
var (
	ErrTeacherNotFound      = errors.New("teacher not found")
	ErrDuplicateTeacherCode = errors.New("teacher code already in use")
	ErrTeacherProfileExists = errors.New("user already has a teacher profile")
	ErrTeacherHasCourses    = errors.New("teacher still teaches courses")
)

// TeacherService exposes CRUD over teacher profiles.
type TeacherService interface {
	List(ctx context.Context) ([]models.Teacher, error)
	Get(ctx context.Context, id string) (models.Teacher, error)
	Create(ctx context.Context, payload dto.TeacherCreateRequest) (models.Teacher, error)
	Update(ctx context.Context, id string, payload dto.TeacherUpdateRequest) (models.Teacher, error)
	Delete(ctx context.Context, id string) error
}

type teacherService struct {
	repo        repository.TeacherRepository
	users       repository.UserRepository
	departments repository.DepartmentRepository
	courses     repository.CourseRepository
	validator   *validator.Validate
	logger      zerolog.Logger
}

// NewTeacherService builds a teacher service.
func NewTeacherService(repo repository.TeacherRepository, users repository.UserRepository, departments repository.DepartmentRepository, courses repository.CourseRepository, validate *validator.Validate, logger zerolog.Logger) TeacherService {
	return &teacherService{
		repo:        repo,
		users:       users,
		departments: departments,
		courses:     courses,
		validator:   validate,
		logger:      logger.With().Str("component", "teacher_service").Logger(),
	}
}

func (s *teacherService) List(ctx context.Context) ([]models.Teacher, error) {
	return s.repo.List(ctx)
}

func (s *teacherService) Get(ctx context.Context, id string) (models.Teacher, error) {
	teacher, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Teacher{}, ErrTeacherNotFound
		}
		return models.Teacher{}, err
	}

	return teacher, nil
}

func (s *teacherService) Create(ctx context.Context, payload dto.TeacherCreateRequest) (models.Teacher, error) {
	if err := s.validator.Struct(payload); err != nil {
		return models.Teacher{}, err
	}

	user, err := s.users.GetByID(ctx, payload.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Teacher{}, ErrUserNotFound
		}
		return models.Teacher{}, err
	}

	if user.Role != models.RoleTeacher {
		return models.Teacher{}, ErrProfileRoleMismatch
	}

	if _, err := s.repo.GetByUserID(ctx, user.ID); err == nil {
		return models.Teacher{}, ErrTeacherProfileExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Teacher{}, err
	}

	if _, err := s.repo.GetByCode(ctx, payload.TeacherCode); err == nil {
		return models.Teacher{}, ErrDuplicateTeacherCode
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Teacher{}, err
	}

	if payload.DepartmentID != nil {
		if _, err := s.departments.GetByID(ctx, *payload.DepartmentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.Teacher{}, ErrDepartmentNotFound
			}
			return models.Teacher{}, err
		}
	}

	hireDate, err := time.Parse(dateLayout, payload.HireDate)
	if err != nil {
		return models.Teacher{}, err
	}

	teacher := models.Teacher{
		UserID:         payload.UserID,
		TeacherCode:    payload.TeacherCode,
		DepartmentID:   payload.DepartmentID,
		Specialization: payload.Specialization,
		HireDate:       hireDate,
		Status:         payload.Status,
		Phone:          payload.Phone,
	}
	if teacher.Status == "" {
		teacher.Status = models.TeacherStatusActive
	}

	if err := s.repo.Create(ctx, &teacher); err != nil {
		return models.Teacher{}, err
	}

	s.logger.Info().Str("teacher_id", teacher.ID).Msg("teacher created")

	return s.Get(ctx, teacher.ID)
}

func (s *teacherService) Update(ctx context.Context, id string, payload dto.TeacherUpdateRequest) (models.Teacher, error) {
	if err := s.validator.Struct(payload); err != nil {
		return models.Teacher{}, err
	}

	teacher, err := s.Get(ctx, id)
	if err != nil {
		return models.Teacher{}, err
	}

	if payload.DepartmentID != nil {
		if _, err := s.departments.GetByID(ctx, *payload.DepartmentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.Teacher{}, ErrDepartmentNotFound
			}
			return models.Teacher{}, err
		}
		teacher.DepartmentID = payload.DepartmentID
	}
	if payload.Specialization != nil {
		teacher.Specialization = payload.Specialization
	}
	if payload.Status != nil {
		teacher.Status = *payload.Status
	}
	if payload.Phone != nil {
		teacher.Phone = payload.Phone
	}

	if err := s.repo.Update(ctx, &teacher); err != nil {
		return models.Teacher{}, err
	}

	s.logger.Info().Str("teacher_id", teacher.ID).Msg("teacher updated")

	return s.Get(ctx, teacher.ID)
}

func (s *teacherService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	dependents, err := s.courses.CountByTeacher(ctx, id)
	if err != nil {
		return err
	}
	if dependents > 0 {
		return ErrTeacherHasCourses
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTeacherNotFound
		}
		return err
	}

	s.logger.Info().Str("teacher_id", id).Msg("teacher deleted")
	return nil
}
