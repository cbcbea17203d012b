package service

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/edunexo/academico-api/internal/dto"
	"github.com/edunexo/academico-api/internal/repository"
)

func newPeriodService(t *testing.T) PeriodService {
	t.Helper()
	db := setupServiceDB(t)
	return NewPeriodService(repository.NewPeriodRepository(db), validator.New(validator.WithRequiredStructEnabled()), testLogger())
}

func TestPeriodServiceCreateRejectsInvertedDates(t *testing.T) {
	svc := newPeriodService(t)

	_, err := svc.Create(context.Background(), dto.PeriodCreateRequest{
		Name:      "2026-1",
		StartDate: "2026-06-01",
		EndDate:   "2026-01-01",
	})
	require.ErrorIs(t, err, ErrPeriodDatesInvalid)
}

func TestPeriodServiceActivateKeepsSingleActive(t *testing.T) {
	svc := newPeriodService(t)

	first, err := svc.Create(context.Background(), dto.PeriodCreateRequest{
		Name:      "2026-1",
		StartDate: "2026-01-01",
		EndDate:   "2026-06-30",
		IsActive:  true,
	})
	require.NoError(t, err)
	require.True(t, first.IsActive)

	second, err := svc.Create(context.Background(), dto.PeriodCreateRequest{
		Name:      "2026-2",
		StartDate: "2026-07-01",
		EndDate:   "2026-12-15",
	})
	require.NoError(t, err)
	require.False(t, second.IsActive)

	activated, err := svc.Activate(context.Background(), second.ID)
	require.NoError(t, err)
	require.True(t, activated.IsActive)

	active, err := svc.GetActive(context.Background())
	require.NoError(t, err)
	require.Equal(t, second.ID, active.ID)

	previous, err := svc.Get(context.Background(), first.ID)
	require.NoError(t, err)
	require.False(t, previous.IsActive)
}

func TestPeriodServiceGetActiveNone(t *testing.T) {
	svc := newPeriodService(t)

	_, err := svc.GetActive(context.Background())
	require.ErrorIs(t, err, ErrNoActivePeriod)
}

func TestPeriodServiceActivateUnknown(t *testing.T) {
	svc := newPeriodService(t)

	_, err := svc.Activate(context.Background(), "missing-id")
	require.ErrorIs(t, err, ErrPeriodNotFound)
}
