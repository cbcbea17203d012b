package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/edunexo/academico-api/internal/models"
)

// StatisticsRepository serves the dashboard aggregate counts.
type StatisticsRepository interface {
	CountStudents(ctx context.Context) (int64, error)
	CountTeachers(ctx context.Context) (int64, error)
	CountActiveCourses(ctx context.Context) (int64, error)
	CountDepartments(ctx context.Context) (int64, error)
}

type statisticsRepository struct {
	db *gorm.DB
}

// NewStatisticsRepository constructs a statistics repository.
func NewStatisticsRepository(db *gorm.DB) StatisticsRepository {
	return &statisticsRepository{db: db}
}

func (r *statisticsRepository) CountStudents(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Student{}).Count(&count).Error
	return count, err
}

func (r *statisticsRepository) CountTeachers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Teacher{}).Count(&count).Error
	return count, err
}

func (r *statisticsRepository) CountActiveCourses(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Course{}).
		Where("status = ?", models.CourseStatusActive).
		Count(&count).Error
	return count, err
}

func (r *statisticsRepository) CountDepartments(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Department{}).Count(&count).Error
	return count, err
}
