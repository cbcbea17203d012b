package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/edunexo/academico-api/internal/models"
)

func TestPeriodRepositorySetActiveSwitchesSinglePeriod(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPeriodRepository(db)

	first := models.AcademicPeriod{Name: "2025-1", StartDate: time.Now().AddDate(0, -6, 0), EndDate: time.Now().AddDate(0, -1, 0), IsActive: true}
	second := models.AcademicPeriod{Name: "2025-2", StartDate: time.Now(), EndDate: time.Now().AddDate(0, 5, 0)}
	require.NoError(t, repo.Create(context.Background(), &first))
	require.NoError(t, repo.Create(context.Background(), &second))

	require.NoError(t, repo.SetActive(context.Background(), second.ID))

	active, err := repo.GetActive(context.Background())
	require.NoError(t, err)
	require.Equal(t, second.ID, active.ID)

	var count int64
	require.NoError(t, db.Model(&models.AcademicPeriod{}).Where("is_active = ?", true).Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestPeriodRepositorySetActiveUnknownID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPeriodRepository(db)

	existing := models.AcademicPeriod{Name: "2025-1", StartDate: time.Now(), EndDate: time.Now().AddDate(0, 5, 0), IsActive: true}
	require.NoError(t, repo.Create(context.Background(), &existing))

	err := repo.SetActive(context.Background(), "missing-id")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	active, err := repo.GetActive(context.Background())
	require.NoError(t, err)
	require.Equal(t, existing.ID, active.ID, "failed switch must not deactivate the current period")
}
