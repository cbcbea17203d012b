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

// ErrAssignmentDueDate indicates a malformed or past due date.
var ErrAssignmentDueDate = errors.New("invalid assignment due date")

// AttendanceService records and lists per-enrollment attendance.
type AttendanceService interface {
	ListByEnrollment(ctx context.Context, enrollmentID string) ([]models.Attendance, error)
	Create(ctx context.Context, payload dto.AttendanceCreateRequest) (models.Attendance, error)
}

// ScheduleService manages weekly course schedules.
type ScheduleService interface {
	ListByCourse(ctx context.Context, courseID string) ([]models.Schedule, error)
	Create(ctx context.Context, payload dto.ScheduleCreateRequest) (models.Schedule, error)
}

// AssignmentService manages course assignments.
type AssignmentService interface {
	ListByCourse(ctx context.Context, courseID string) ([]models.Assignment, error)
	Create(ctx context.Context, payload dto.AssignmentCreateRequest) (models.Assignment, error)
}

type attendanceService struct {
	repo        repository.AttendanceRepository
	enrollments repository.EnrollmentRepository
	validator   *validator.Validate
	logger      zerolog.Logger
}

// NewAttendanceService builds an attendance service.
func NewAttendanceService(repo repository.AttendanceRepository, enrollments repository.EnrollmentRepository, validate *validator.Validate, logger zerolog.Logger) AttendanceService {
	return &attendanceService{
		repo:        repo,
		enrollments: enrollments,
		validator:   validate,
		logger:      logger.With().Str("component", "attendance_service").Logger(),
	}
}

func (s *attendanceService) ListByEnrollment(ctx context.Context, enrollmentID string) ([]models.Attendance, error) {
	return s.repo.ListByEnrollment(ctx, enrollmentID)
}

func (s *attendanceService) Create(ctx context.Context, payload dto.AttendanceCreateRequest) (models.Attendance, error) {
	if err := s.validator.Struct(payload); err != nil {
		return models.Attendance{}, err
	}

	if _, err := s.enrollments.GetByID(ctx, payload.EnrollmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Attendance{}, ErrEnrollmentNotFound
		}
		return models.Attendance{}, err
	}

	date, err := time.Parse(dateLayout, payload.Date)
	if err != nil {
		return models.Attendance{}, err
	}

	record := models.Attendance{
		EnrollmentID: payload.EnrollmentID,
		Date:         date,
		Status:       payload.Status,
		Notes:        payload.Notes,
	}

	if err := s.repo.Create(ctx, &record); err != nil {
		return models.Attendance{}, err
	}

	s.logger.Info().Str("attendance_id", record.ID).Str("status", record.Status).Msg("attendance recorded")

	return record, nil
}

type scheduleService struct {
	repo      repository.ScheduleRepository
	courses   repository.CourseRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewScheduleService builds a schedule service.
func NewScheduleService(repo repository.ScheduleRepository, courses repository.CourseRepository, validate *validator.Validate, logger zerolog.Logger) ScheduleService {
	return &scheduleService{
		repo:      repo,
		courses:   courses,
		validator: validate,
		logger:    logger.With().Str("component", "schedule_service").Logger(),
	}
}

func (s *scheduleService) ListByCourse(ctx context.Context, courseID string) ([]models.Schedule, error) {
	return s.repo.ListByCourse(ctx, courseID)
}

func (s *scheduleService) Create(ctx context.Context, payload dto.ScheduleCreateRequest) (models.Schedule, error) {
	if err := s.validator.Struct(payload); err != nil {
		return models.Schedule{}, err
	}

	if _, err := s.courses.GetByID(ctx, payload.CourseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Schedule{}, ErrCourseNotFound
		}
		return models.Schedule{}, err
	}

	slot := models.Schedule{
		CourseID:  payload.CourseID,
		DayOfWeek: payload.DayOfWeek,
		StartTime: payload.StartTime,
		EndTime:   payload.EndTime,
		Classroom: payload.Classroom,
	}

	if err := s.repo.Create(ctx, &slot); err != nil {
		return models.Schedule{}, err
	}

	s.logger.Info().Str("schedule_id", slot.ID).Str("course_id", slot.CourseID).Msg("schedule slot created")

	return slot, nil
}

type assignmentService struct {
	repo      repository.AssignmentRepository
	courses   repository.CourseRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewAssignmentService builds an assignment service.
func NewAssignmentService(repo repository.AssignmentRepository, courses repository.CourseRepository, validate *validator.Validate, logger zerolog.Logger) AssignmentService {
	return &assignmentService{
		repo:      repo,
		courses:   courses,
		validator: validate,
		logger:    logger.With().Str("component", "assignment_service").Logger(),
	}
}

func (s *assignmentService) ListByCourse(ctx context.Context, courseID string) ([]models.Assignment, error) {
	return s.repo.ListByCourse(ctx, courseID)
}

func (s *assignmentService) Create(ctx context.Context, payload dto.AssignmentCreateRequest) (models.Assignment, error) {
	if err := s.validator.Struct(payload); err != nil {
		return models.Assignment{}, err
	}

	if _, err := s.courses.GetByID(ctx, payload.CourseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Assignment{}, ErrCourseNotFound
		}
		return models.Assignment{}, err
	}

	dueDate, err := time.Parse(time.RFC3339, payload.DueDate)
	if err != nil {
		return models.Assignment{}, ErrAssignmentDueDate
	}

	assignment := models.Assignment{
		CourseID:    payload.CourseID,
		Title:       payload.Title,
		Description: payload.Description,
		DueDate:     dueDate,
		MaxPoints:   100,
	}
	if payload.MaxPoints != nil {
		assignment.MaxPoints = *payload.MaxPoints
	}

	if err := s.repo.Create(ctx, &assignment); err != nil {
		return models.Assignment{}, err
	}

	s.logger.Info().Str("assignment_id", assignment.ID).Str("course_id", assignment.CourseID).Msg("assignment created")

	return assignment, nil
}
