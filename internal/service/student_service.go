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

// Student error sentinels.
var (
	ErrStudentNotFound       = errors.New("student not found")
	ErrDuplicateStudentCode  = errors.New("student code already in use")
	ErrStudentProfileExists  = errors.New("user already has a student profile")
	ErrProfileRoleMismatch   = errors.New("user role does not match profile type")
	ErrStudentHasEnrollments = errors.New("student still has enrollments")
)

const dateLayout = "2006-01-02"

// StudentService exposes CRUD over student profiles.
type StudentService interface {
	List(ctx context.Context) ([]models.Student, error)
	Get(ctx context.Context, id string) (models.Student, error)
	Create(ctx context.Context, payload dto.StudentCreateRequest) (models.Student, error)
	Update(ctx context.Context, id string, payload dto.StudentUpdateRequest) (models.Student, error)
	Delete(ctx context.Context, id string) error
}

type studentService struct {
	repo        repository.StudentRepository
	users       repository.UserRepository
	enrollments repository.EnrollmentRepository
	validator   *validator.Validate
	logger      zerolog.Logger
}

// NewStudentService builds a student service.
func NewStudentService(repo repository.StudentRepository, users repository.UserRepository, enrollments repository.EnrollmentRepository, validate *validator.Validate, logger zerolog.Logger) StudentService {
	return &studentService{
		repo:        repo,
		users:       users,
		enrollments: enrollments,
		validator:   validate,
		logger:      logger.With().Str("component", "student_service").Logger(),
	}
}

func (s *studentService) List(ctx context.Context) ([]models.Student, error) {
	return s.repo.List(ctx)
}

func (s *studentService) Get(ctx context.Context, id string) (models.Student, error) {
	student, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Student{}, ErrStudentNotFound
		}
		return models.Student{}, err
	}

	return student, nil
}

func (s *studentService) Create(ctx context.Context, payload dto.StudentCreateRequest) (models.Student, error) {
	if err := s.validator.Struct(payload); err != nil {
		return models.Student{}, err
	}

	user, err := s.users.GetByID(ctx, payload.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Student{}, ErrUserNotFound
		}
		return models.Student{}, err
	}

	if user.Role != models.RoleStudent {
		return models.Student{}, ErrProfileRoleMismatch
	}

	if _, err := s.repo.GetByUserID(ctx, user.ID); err == nil {
		return models.Student{}, ErrStudentProfileExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Student{}, err
	}

	if _, err := s.repo.GetByCode(ctx, payload.StudentCode); err == nil {
		return models.Student{}, ErrDuplicateStudentCode
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Student{}, err
	}

	enrollmentDate, err := time.Parse(dateLayout, payload.EnrollmentDate)
	if err != nil {
		return models.Student{}, err
	}

	student := models.Student{
		UserID:         payload.UserID,
		StudentCode:    payload.StudentCode,
		Grade:          payload.Grade,
		Address:        payload.Address,
		Phone:          payload.Phone,
		EnrollmentDate: enrollmentDate,
		Status:         payload.Status,
	}
	if student.Status == "" {
		student.Status = models.StudentStatusActive
	}
	if payload.DateOfBirth != nil {
		dob, err := time.Parse(dateLayout, *payload.DateOfBirth)
		if err != nil {
			return models.Student{}, err
		}
		student.DateOfBirth = &dob
	}

	if err := s.repo.Create(ctx, &student); err != nil {
		return models.Student{}, err
	}

	s.logger.Info().Str("student_id", student.ID).Msg("student created")

	return s.Get(ctx, student.ID)
}

func (s *studentService) Update(ctx context.Context, id string, payload dto.StudentUpdateRequest) (models.Student, error) {
	if err := s.validator.Struct(payload); err != nil {
		return models.Student{}, err
	}

	student, err := s.Get(ctx, id)
	if err != nil {
		return models.Student{}, err
	}

	if payload.Grade != nil {
		student.Grade = *payload.Grade
	}
	if payload.DateOfBirth != nil {
		dob, err := time.Parse(dateLayout, *payload.DateOfBirth)
		if err != nil {
			return models.Student{}, err
		}
		student.DateOfBirth = &dob
	}
	if payload.Address != nil {
		student.Address = payload.Address
	}
	if payload.Phone != nil {
		student.Phone = payload.Phone
	}
	if payload.Status != nil {
		student.Status = *payload.Status
	}

	if err := s.repo.Update(ctx, &student); err != nil {
		return models.Student{}, err
	}

	s.logger.Info().Str("student_id", student.ID).Msg("student updated")

	return s.Get(ctx, student.ID)
}

func (s *studentService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	dependents, err := s.enrollments.CountByStudent(ctx, id)
	if err != nil {
		return err
	}
	if dependents > 0 {
		return ErrStudentHasEnrollments
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStudentNotFound
		}
		return err
	}

	s.logger.Info().Str("student_id", id).Msg("student deleted")
	return nil
}
