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

// Enrollment error sentinels.
var (
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	ErrEnrollmentFilter   = errors.New("either studentId or courseId must be provided")
)

// EnrollmentService manages student course registrations.
type EnrollmentService interface {
	ListByStudent(ctx context.Context, studentID string) ([]models.Enrollment, error)
	ListByCourse(ctx context.Context, courseID string) ([]models.Enrollment, error)
	Get(ctx context.Context, id string) (models.Enrollment, error)
	Create(ctx context.Context, payload dto.EnrollmentCreateRequest) (models.Enrollment, error)
	Update(ctx context.Context, id string, payload dto.EnrollmentUpdateRequest) (models.Enrollment, error)
}

type enrollmentService struct {
	repo      repository.EnrollmentRepository
	students  repository.StudentRepository
	courses   repository.CourseRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewEnrollmentService builds an enrollment service.
func NewEnrollmentService(repo repository.EnrollmentRepository, students repository.StudentRepository, courses repository.CourseRepository, validate *validator.Validate, logger zerolog.Logger) EnrollmentService {
	return &enrollmentService{
		repo:      repo,
		students:  students,
		courses:   courses,
		validator: validate,
		logger:    logger.With().Str("component", "enrollment_service").Logger(),
	}
}

func (s *enrollmentService) ListByStudent(ctx context.Context, studentID string) ([]models.Enrollment, error) {
	return s.repo.ListByStudent(ctx, studentID)
}

func (s *enrollmentService) ListByCourse(ctx context.Context, courseID string) ([]models.Enrollment, error) {
	return s.repo.ListByCourse(ctx, courseID)
}

func (s *enrollmentService) Get(ctx context.Context, id string) (models.Enrollment, error) {
	enrollment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Enrollment{}, ErrEnrollmentNotFound
		}
		return models.Enrollment{}, err
	}

	return enrollment, nil
}

func (s *enrollmentService) Create(ctx context.Context, payload dto.EnrollmentCreateRequest) (models.Enrollment, error) {
	if err := s.validator.Struct(payload); err != nil {
		return models.Enrollment{}, err
	}

	if _, err := s.students.GetByID(ctx, payload.StudentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Enrollment{}, ErrStudentNotFound
		}
		return models.Enrollment{}, err
	}
	if _, err := s.courses.GetByID(ctx, payload.CourseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Enrollment{}, ErrCourseNotFound
		}
		return models.Enrollment{}, err
	}

	enrollment := models.Enrollment{
		StudentID: payload.StudentID,
		CourseID:  payload.CourseID,
		Status:    payload.Status,
	}
	if enrollment.Status == "" {
		enrollment.Status = models.EnrollmentStatusEnrolled
	}

	if err := s.repo.Create(ctx, &enrollment); err != nil {
		return models.Enrollment{}, err
	}

	s.logger.Info().
		Str("enrollment_id", enrollment.ID).
		Str("student_id", enrollment.StudentID).
		Str("course_id", enrollment.CourseID).
		Msg("enrollment created")

	return s.Get(ctx, enrollment.ID)
}

func (s *enrollmentService) Update(ctx context.Context, id string, payload dto.EnrollmentUpdateRequest) (models.Enrollment, error) {
	if err := s.validator.Struct(payload); err != nil {
		return models.Enrollment{}, err
	}

	enrollment, err := s.Get(ctx, id)
	if err != nil {
		return models.Enrollment{}, err
	}

	if payload.Status != nil {
		enrollment.Status = *payload.Status
	}
	if payload.FinalGrade != nil {
		enrollment.FinalGrade = payload.FinalGrade
	}

	if err := s.repo.Update(ctx, &enrollment); err != nil {
		return models.Enrollment{}, err
	}

	s.logger.Info().Str("enrollment_id", enrollment.ID).Msg("enrollment updated")

	return s.Get(ctx, enrollment.ID)
}
