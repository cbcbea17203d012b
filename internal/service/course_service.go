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

// Course error sentinels.
var (
	ErrCourseNotFound      = errors.New("course not found")
	ErrDuplicateCourseCode = errors.New("course code already in use")
	ErrCourseHasDependents = errors.New("course still has enrollments, schedules or assignments")
)

// CourseService exposes CRUD over scheduled courses.
type CourseService interface {
	List(ctx context.Context) ([]models.Course, error)
	Get(ctx context.Context, id string) (models.Course, error)
	Create(ctx context.Context, payload dto.CourseCreateRequest) (models.Course, error)
	Update(ctx context.Context, id string, payload dto.CourseUpdateRequest) (models.Course, error)
	Delete(ctx context.Context, id string) error
}

type courseService struct {
	repo        repository.CourseRepository
	subjects    repository.SubjectRepository
	teachers    repository.TeacherRepository
	periods     repository.PeriodRepository
	enrollments repository.EnrollmentRepository
	schedules   repository.ScheduleRepository
	assignments repository.AssignmentRepository
	validator   *validator.Validate
	logger      zerolog.Logger
}

// CourseServiceDeps groups the repositories the course service needs.
type CourseServiceDeps struct {
	Courses     repository.CourseRepository
	Subjects    repository.SubjectRepository
	Teachers    repository.TeacherRepository
	Periods     repository.PeriodRepository
	Enrollments repository.EnrollmentRepository
	Schedules   repository.ScheduleRepository
	Assignments repository.AssignmentRepository
}

// NewCourseService builds a course service.
func NewCourseService(deps CourseServiceDeps, validate *validator.Validate, logger zerolog.Logger) CourseService {
	return &courseService{
		repo:        deps.Courses,
		subjects:    deps.Subjects,
		teachers:    deps.Teachers,
		periods:     deps.Periods,
		enrollments: deps.Enrollments,
		schedules:   deps.Schedules,
		assignments: deps.Assignments,
		validator:   validate,
		logger:      logger.With().Str("component", "course_service").Logger(),
	}
}

func (s *courseService) List(ctx context.Context) ([]models.Course, error) {
	return s.repo.List(ctx)
}

func (s *courseService) Get(ctx context.Context, id string) (models.Course, error) {
	course, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Course{}, ErrCourseNotFound
		}
		return models.Course{}, err
	}

	return course, nil
}

func (s *courseService) Create(ctx context.Context, payload dto.CourseCreateRequest) (models.Course, error) {
	if err := s.validator.Struct(payload); err != nil {
		return models.Course{}, err
	}

	if _, err := s.repo.GetByCode(ctx, payload.CourseCode); err == nil {
		return models.Course{}, ErrDuplicateCourseCode
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Course{}, err
	}

	if _, err := s.subjects.GetByID(ctx, payload.SubjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Course{}, ErrSubjectNotFound
		}
		return models.Course{}, err
	}
	if _, err := s.teachers.GetByID(ctx, payload.TeacherID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Course{}, ErrTeacherNotFound
		}
		return models.Course{}, err
	}
	if _, err := s.periods.GetByID(ctx, payload.AcademicPeriodID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Course{}, ErrPeriodNotFound
		}
		return models.Course{}, err
	}

	course := models.Course{
		SubjectID:        payload.SubjectID,
		TeacherID:        payload.TeacherID,
		AcademicPeriodID: payload.AcademicPeriodID,
		CourseCode:       payload.CourseCode,
		Schedule:         payload.Schedule,
		MaxStudents:      30,
		Status:           payload.Status,
	}
	if payload.MaxStudents != nil {
		course.MaxStudents = *payload.MaxStudents
	}
	if course.Status == "" {
		course.Status = models.CourseStatusActive
	}

	if err := s.repo.Create(ctx, &course); err != nil {
		return models.Course{}, err
	}

	s.logger.Info().Str("course_id", course.ID).Str("code", course.CourseCode).Msg("course created")

	return s.Get(ctx, course.ID)
}

func (s *courseService) Update(ctx context.Context, id string, payload dto.CourseUpdateRequest) (models.Course, error) {
	if err := s.validator.Struct(payload); err != nil {
		return models.Course{}, err
	}

	course, err := s.Get(ctx, id)
	if err != nil {
		return models.Course{}, err
	}

	if payload.TeacherID != nil {
		if _, err := s.teachers.GetByID(ctx, *payload.TeacherID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.Course{}, ErrTeacherNotFound
			}
			return models.Course{}, err
		}
		course.TeacherID = *payload.TeacherID
	}
	if payload.Schedule != nil {
		course.Schedule = payload.Schedule
	}
	if payload.MaxStudents != nil {
		course.MaxStudents = *payload.MaxStudents
	}
	if payload.Status != nil {
		course.Status = *payload.Status
	}

	if err := s.repo.Update(ctx, &course); err != nil {
		return models.Course{}, err
	}

	s.logger.Info().Str("course_id", course.ID).Msg("course updated")

	return s.Get(ctx, course.ID)
}

func (s *courseService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	counts := []func(context.Context, string) (int64, error){
		s.enrollments.CountByCourse,
		s.schedules.CountByCourse,
		s.assignments.CountByCourse,
	}
	for _, count := range counts {
		n, err := count(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return ErrCourseHasDependents
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCourseNotFound
		}
		return err
	}

	s.logger.Info().Str("course_id", id).Msg("course deleted")
	return nil
}
