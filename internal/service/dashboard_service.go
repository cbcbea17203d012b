package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/edunexo/academico-api/internal/dto"
	"github.com/edunexo/academico-api/internal/repository"
)

// DashboardService serves the aggregate statistics snapshot.
type DashboardService interface {
	GetStatistics(ctx context.Context) (dto.StatisticsResponse, error)
}

type dashboardService struct {
	repo     repository.StatisticsRepository
	cache    *redis.Client
	cacheTTL time.Duration
	logger   zerolog.Logger
}

// NewDashboardService constructs the dashboard service.
func NewDashboardService(repo repository.StatisticsRepository, cache *redis.Client, ttl time.Duration, logger zerolog.Logger) DashboardService {
	return &dashboardService{
		repo:     repo,
		cache:    cache,
		cacheTTL: ttl,
		logger:   logger.With().Str("component", "dashboard_service").Logger(),
	}
}

func (s *dashboardService) GetStatistics(ctx context.Context) (dto.StatisticsResponse, error) {
	const cacheKey = "dashboard:statistics"
	tracer := otel.Tracer("github.com/edunexo/academico-api/internal/service/dashboard")
	ctx, span := tracer.Start(ctx, "dashboard.statistics")
	span.SetAttributes(attribute.String("dashboard.cache_key", cacheKey))
	defer span.End()

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, cacheKey).Result()
		if err == nil {
			var response dto.StatisticsResponse
			if unmarshalErr := json.Unmarshal([]byte(cached), &response); unmarshalErr == nil {
				response.CacheHit = true
				span.SetAttributes(attribute.Bool("dashboard.cache_hit", true))
				return response, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn().Err(err).Msg("failed to read statistics cache")
			span.RecordError(err)
		}
	}

	var (
		response dto.StatisticsResponse
		err      error
	)

	if response.TotalStudents, err = s.repo.CountStudents(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "count_students_failed")
		return dto.StatisticsResponse{}, err
	}
	if response.TotalTeachers, err = s.repo.CountTeachers(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "count_teachers_failed")
		return dto.StatisticsResponse{}, err
	}
	if response.ActiveCourses, err = s.repo.CountActiveCourses(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "count_courses_failed")
		return dto.StatisticsResponse{}, err
	}
	if response.TotalDepartments, err = s.repo.CountDepartments(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "count_departments_failed")
		return dto.StatisticsResponse{}, err
	}

	if s.cache != nil {
		if payload, marshalErr := json.Marshal(response); marshalErr == nil {
			if cacheErr := s.cache.Set(ctx, cacheKey, payload, s.cacheTTL).Err(); cacheErr != nil {
				s.logger.Warn().Err(cacheErr).Msg("failed to write statistics cache")
			}
		}
	}

	return response, nil
}
