package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/edunexo/academico-api/internal/models"
)

// PeriodRepository provides access to academic periods.
type PeriodRepository interface {
	List(ctx context.Context) ([]models.AcademicPeriod, error)
	GetByID(ctx context.Context, id string) (models.AcademicPeriod, error)
	GetActive(ctx context.Context) (models.AcademicPeriod, error)
	Create(ctx context.Context, period *models.AcademicPeriod) error
	Update(ctx context.Context, period *models.AcademicPeriod) error
	// SetActive flips the given period to active and every other period to
	// inactive inside one transaction.
	SetActive(ctx context.Context, id string) error
}

type periodRepository struct {
	db *gorm.DB
}

// NewPeriodRepository constructs an academic period repository.
func NewPeriodRepository(db *gorm.DB) PeriodRepository {
	return &periodRepository{db: db}
}

func (r *periodRepository) List(ctx context.Context) ([]models.AcademicPeriod, error) {
	var periods []models.AcademicPeriod
	err := r.db.WithContext(ctx).Order("start_date DESC").Find(&periods).Error
	return periods, err
}

func (r *periodRepository) GetByID(ctx context.Context, id string) (models.AcademicPeriod, error) {
	var period models.AcademicPeriod
	if err := r.db.WithContext(ctx).First(&period, "id = ?", id).Error; err != nil {
		return models.AcademicPeriod{}, err
	}

	return period, nil
}

func (r *periodRepository) GetActive(ctx context.Context) (models.AcademicPeriod, error) {
	var period models.AcademicPeriod
	if err := r.db.WithContext(ctx).First(&period, "is_active = ?", true).Error; err != nil {
		return models.AcademicPeriod{}, err
	}

	return period, nil
}

func (r *periodRepository) Create(ctx context.Context, period *models.AcademicPeriod) error {
	return r.db.WithContext(ctx).Create(period).Error
}

func (r *periodRepository) Update(ctx context.Context, period *models.AcademicPeriod) error {
	return r.db.WithContext(ctx).Save(period).Error
}

func (r *periodRepository) SetActive(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.AcademicPeriod{}).
			Where("id = ?", id).
			Update("is_active", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return tx.Model(&models.AcademicPeriod{}).
			Where("id <> ?", id).
			Update("is_active", false).Error
	})
}
