package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/edunexo/academico-api/internal/models"
)

// TeacherRepository provides access to teacher profiles.
type TeacherRepository interface {
	List(ctx context.Context) ([]models.Teacher, error)
	GetByID(ctx context.Context, id string) (models.Teacher, error)
	GetByUserID(ctx context.Context, userID string) (models.Teacher, error)
	GetByCode(ctx context.Context, code string) (models.Teacher, error)
	Create(ctx context.Context, teacher *models.Teacher) error
	Update(ctx context.Context, teacher *models.Teacher) error
	Delete(ctx context.Context, id string) error
	CountByDepartment(ctx context.Context, departmentID string) (int64, error)
}

type teacherRepository struct {
	db *gorm.DB
}

// NewTeacherRepository constructs a teacher repository.
func NewTeacherRepository(db *gorm.DB) TeacherRepository {
	return &teacherRepository{db: db}
}

func (r *teacherRepository) List(ctx context.Context) ([]models.Teacher, error) {
	var teachers []models.Teacher
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Department").
		Order("created_at DESC").
		Find(&teachers).Error
	return teachers, err
}

func (r *teacherRepository) GetByID(ctx context.Context, id string) (models.Teacher, error) {
	var teacher models.Teacher
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Department").
		First(&teacher, "id = ?", id).Error
	if err != nil {
		return models.Teacher{}, err
	}

	return teacher, nil
}

func (r *teacherRepository) GetByUserID(ctx context.Context, userID string) (models.Teacher, error) {
	var teacher models.Teacher
	if err := r.db.WithContext(ctx).First(&teacher, "user_id = ?", userID).Error; err != nil {
		return models.Teacher{}, err
	}

	return teacher, nil
}

func (r *teacherRepository) GetByCode(ctx context.Context, code string) (models.Teacher, error) {
	var teacher models.Teacher
	if err := r.db.WithContext(ctx).First(&teacher, "teacher_code = ?", code).Error; err != nil {
		return models.Teacher{}, err
	}

	return teacher, nil
}

func (r *teacherRepository) Create(ctx context.Context, teacher *models.Teacher) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(teacher).Error
}

func (r *teacherRepository) Update(ctx context.Context, teacher *models.Teacher) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(teacher).Error
}

func (r *teacherRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Teacher{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *teacherRepository) CountByDepartment(ctx context.Context, departmentID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Teacher{}).
		Where("department_id = ?", departmentID).
		Count(&count).Error
	return count, err
}
