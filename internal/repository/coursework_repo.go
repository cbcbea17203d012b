package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/edunexo/academico-api/internal/models"
)

// AttendanceRepository provides access to attendance records.
type AttendanceRepository interface {
	ListByEnrollment(ctx context.Context, enrollmentID string) ([]models.Attendance, error)
	Create(ctx context.Context, record *models.Attendance) error
}

// ScheduleRepository provides access to weekly course schedules.
type ScheduleRepository interface {
	ListByCourse(ctx context.Context, courseID string) ([]models.Schedule, error)
	Create(ctx context.Context, slot *models.Schedule) error
	CountByCourse(ctx context.Context, courseID string) (int64, error)
}

// AssignmentRepository provides access to course assignments.
type AssignmentRepository interface {
	ListByCourse(ctx context.Context, courseID string) ([]models.Assignment, error)
	Create(ctx context.Context, assignment *models.Assignment) error
	CountByCourse(ctx context.Context, courseID string) (int64, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository constructs an attendance repository.
func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) ListByEnrollment(ctx context.Context, enrollmentID string) ([]models.Attendance, error) {
	var records []models.Attendance
	err := r.db.WithContext(ctx).
		Where("enrollment_id = ?", enrollmentID).
		Order("date DESC").
		Find(&records).Error
	return records, err
}

func (r *attendanceRepository) Create(ctx context.Context, record *models.Attendance) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(record).Error
}

type scheduleRepository struct {
	db *gorm.DB
}

// NewScheduleRepository constructs a schedule repository.
func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) ListByCourse(ctx context.Context, courseID string) ([]models.Schedule, error) {
	var slots []models.Schedule
	err := r.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("day_of_week ASC, start_time ASC").
		Find(&slots).Error
	return slots, err
}

func (r *scheduleRepository) Create(ctx context.Context, slot *models.Schedule) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(slot).Error
}

func (r *scheduleRepository) CountByCourse(ctx context.Context, courseID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Schedule{}).
		Where("course_id = ?", courseID).
		Count(&count).Error
	return count, err
}

type assignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository constructs an assignment repository.
func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepository{db: db}
}

func (r *assignmentRepository) ListByCourse(ctx context.Context, courseID string) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := r.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("due_date ASC").
		Find(&assignments).Error
	return assignments, err
}

func (r *assignmentRepository) Create(ctx context.Context, assignment *models.Assignment) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(assignment).Error
}

func (r *assignmentRepository) CountByCourse(ctx context.Context, courseID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Assignment{}).
		Where("course_id = ?", courseID).
		Count(&count).Error
	return count, err
}
