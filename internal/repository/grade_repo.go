package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/edunexo/academico-api/internal/models"
)

// GradeRepository provides access to assessment grades.
type GradeRepository interface {
	List(ctx context.Context) ([]models.Grade, error)
	ListByEnrollment(ctx context.Context, enrollmentID string) ([]models.Grade, error)
	GetByID(ctx context.Context, id string) (models.Grade, error)
	Create(ctx context.Context, grade *models.Grade) error
	Update(ctx context.Context, grade *models.Grade) error
	Delete(ctx context.Context, id string) error
}

type gradeRepository struct {
	db *gorm.DB
}

// NewGradeRepository constructs a grade repository.
func NewGradeRepository(db *gorm.DB) GradeRepository {
	return &gradeRepository{db: db}
}

func (r *gradeRepository) List(ctx context.Context) ([]models.Grade, error) {
	var grades []models.Grade
	err := r.db.WithContext(ctx).
		Preload("Enrollment.Student.User").
		Preload("Enrollment.Course.Subject").
		Order("created_at DESC").
		Find(&grades).Error
	return grades, err
}

func (r *gradeRepository) ListByEnrollment(ctx context.Context, enrollmentID string) ([]models.Grade, error) {
	var grades []models.Grade
	err := r.db.WithContext(ctx).
		Where("enrollment_id = ?", enrollmentID).
		Order("assessment_date DESC").
		Find(&grades).Error
	return grades, err
}

func (r *gradeRepository) GetByID(ctx context.Context, id string) (models.Grade, error) {
	var grade models.Grade
	if err := r.db.WithContext(ctx).First(&grade, "id = ?", id).Error; err != nil {
		return models.Grade{}, err
	}

	return grade, nil
}

func (r *gradeRepository) Create(ctx context.Context, grade *models.Grade) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(grade).Error
}

func (r *gradeRepository) Update(ctx context.Context, grade *models.Grade) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(grade).Error
}

func (r *gradeRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Grade{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
