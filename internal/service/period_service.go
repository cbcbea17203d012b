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

// Academic period error sentinels.
var (
	ErrPeriodNotFound     = errors.New("academic period not found")
	ErrPeriodDatesInvalid = errors.New("period end date must be after start date")
	ErrNoActivePeriod     = errors.New("no active academic period")
)

// PeriodService manages academic periods and the single-active invariant.
type PeriodService interface {
	List(ctx context.Context) ([]models.AcademicPeriod, error)
	Get(ctx context.Context, id string) (models.AcademicPeriod, error)
	GetActive(ctx context.Context) (models.AcademicPeriod, error)
	Create(ctx context.Context, payload dto.PeriodCreateRequest) (models.AcademicPeriod, error)
	Update(ctx context.Context, id string, payload dto.PeriodUpdateRequest) (models.AcademicPeriod, error)
	Activate(ctx context.Context, id string) (models.AcademicPeriod, error)
}

type periodService struct {
	repo      repository.PeriodRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewPeriodService builds an academic period service.
func NewPeriodService(repo repository.PeriodRepository, validate *validator.Validate, logger zerolog.Logger) PeriodService {
	return &periodService{
		repo:      repo,
		validator: validate,
		logger:    logger.With().Str("component", "period_service").Logger(),
	}
}

func (s *periodService) List(ctx context.Context) ([]models.AcademicPeriod, error) {
	return s.repo.List(ctx)
}

func (s *periodService) Get(ctx context.Context, id string) (models.AcademicPeriod, error) {
	period, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.AcademicPeriod{}, ErrPeriodNotFound
		}
		return models.AcademicPeriod{}, err
	}

	return period, nil
}

func (s *periodService) GetActive(ctx context.Context) (models.AcademicPeriod, error) {
	period, err := s.repo.GetActive(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.AcademicPeriod{}, ErrNoActivePeriod
		}
		return models.AcademicPeriod{}, err
	}

	return period, nil
}

func (s *periodService) Create(ctx context.Context, payload dto.PeriodCreateRequest) (models.AcademicPeriod, error) {
	if err := s.validator.Struct(payload); err != nil {
		return models.AcademicPeriod{}, err
	}

	start, err := time.Parse(dateLayout, payload.StartDate)
	if err != nil {
		return models.AcademicPeriod{}, err
	}
	end, err := time.Parse(dateLayout, payload.EndDate)
	if err != nil {
		return models.AcademicPeriod{}, err
	}
	if !end.After(start) {
		return models.AcademicPeriod{}, ErrPeriodDatesInvalid
	}

	period := models.AcademicPeriod{
		Name:      payload.Name,
		StartDate: start,
		EndDate:   end,
	}

	if err := s.repo.Create(ctx, &period); err != nil {
		return models.AcademicPeriod{}, err
	}

	if payload.IsActive {
		return s.Activate(ctx, period.ID)
	}

	s.logger.Info().Str("period_id", period.ID).Msg("academic period created")

	return period, nil
}

func (s *periodService) Update(ctx context.Context, id string, payload dto.PeriodUpdateRequest) (models.AcademicPeriod, error) {
	if err := s.validator.Struct(payload); err != nil {
		return models.AcademicPeriod{}, err
	}

	period, err := s.Get(ctx, id)
	if err != nil {
		return models.AcademicPeriod{}, err
	}

	if payload.Name != nil {
		period.Name = *payload.Name
	}
	if payload.StartDate != nil {
		start, err := time.Parse(dateLayout, *payload.StartDate)
		if err != nil {
			return models.AcademicPeriod{}, err
		}
		period.StartDate = start
	}
	if payload.EndDate != nil {
		end, err := time.Parse(dateLayout, *payload.EndDate)
		if err != nil {
			return models.AcademicPeriod{}, err
		}
		period.EndDate = end
	}
	if !period.EndDate.After(period.StartDate) {
		return models.AcademicPeriod{}, ErrPeriodDatesInvalid
	}

	if err := s.repo.Update(ctx, &period); err != nil {
		return models.AcademicPeriod{}, err
	}

	s.logger.Info().Str("period_id", period.ID).Msg("academic period updated")

	return period, nil
}

func (s *periodService) Activate(ctx context.Context, id string) (models.AcademicPeriod, error) {
	if err := s.repo.SetActive(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.AcademicPeriod{}, ErrPeriodNotFound
		}
		return models.AcademicPeriod{}, err
	}

	s.logger.Info().Str("period_id", id).Msg("academic period activated")

	return s.Get(ctx, id)
}
