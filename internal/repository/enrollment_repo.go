package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/edunexo/academico-api/internal/models"
)

// EnrollmentRepository provides access to student course registrations.
type EnrollmentRepository interface {
	ListByStudent(ctx context.Context, studentID string) ([]models.Enrollment, error)
	ListByCourse(ctx context.Context, courseID string) ([]models.Enrollment, error)
	GetByID(ctx context.Context, id string) (models.Enrollment, error)
	Create(ctx context.Context, enrollment *models.Enrollment) error
	Update(ctx context.Context, enrollment *models.Enrollment) error
	CountByStudent(ctx context.Context, studentID string) (int64, error)
	CountByCourse(ctx context.Context, courseID string) (int64, error)
}

type enrollmentRepository struct {
	db *gorm.DB
}

// NewEnrollmentRepository constructs an enrollment repository.
func NewEnrollmentRepository(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

func (r *enrollmentRepository) ListByStudent(ctx context.Context, studentID string) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	err := r.db.WithContext(ctx).
		Preload("Course.Subject").
		Where("student_id = ?", studentID).
		Order("enrollment_date DESC").
		Find(&enrollments).Error
	return enrollments, err
}

func (r *enrollmentRepository) ListByCourse(ctx context.Context, courseID string) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	err := r.db.WithContext(ctx).
		Preload("Student.User").
		Where("course_id = ?", courseID).
		Order("enrollment_date DESC").
		Find(&enrollments).Error
	return enrollments, err
}

func (r *enrollmentRepository) GetByID(ctx context.Context, id string) (models.Enrollment, error) {
	var enrollment models.Enrollment
	err := r.db.WithContext(ctx).
		Preload("Student.User").
		Preload("Course.Subject").
		First(&enrollment, "id = ?", id).Error
	if err != nil {
		return models.Enrollment{}, err
	}

	return enrollment, nil
}

func (r *enrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(enrollment).Error
}

func (r *enrollmentRepository) Update(ctx context.Context, enrollment *models.Enrollment) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(enrollment).Error
}

func (r *enrollmentRepository) CountByStudent(ctx context.Context, studentID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Enrollment{}).
		Where("student_id = ?", studentID).
		Count(&count).Error
	return count, err
}

func (r *enrollmentRepository) CountByCourse(ctx context.Context, courseID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Enrollment{}).
		Where("course_id = ?", courseID).
		Count(&count).Error
	return count, err
}
