package service

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type statsRepoStub struct {
	students    int64
	teachers    int64
	courses     int64
	departments int64
	calls       int
}

func (s *statsRepoStub) CountStudents(context.Context) (int64, error) {
	s.calls++
	return s.students, nil
}

func (s *statsRepoStub) CountTeachers(context.Context) (int64, error) {
	return s.teachers, nil
}

func (s *statsRepoStub) CountActiveCourses(context.Context) (int64, error) {
	return s.courses, nil
}

func (s *statsRepoStub) CountDepartments(context.Context) (int64, error) {
	return s.departments, nil
}

func TestDashboardServiceStatistics(t *testing.T) {
	repo := &statsRepoStub{students: 120, teachers: 14, courses: 9, departments: 4}
	svc := NewDashboardService(repo, nil, 0, testLogger())

	stats, err := svc.GetStatistics(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(120), stats.TotalStudents)
	require.Equal(t, int64(14), stats.TotalTeachers)
	require.Equal(t, int64(9), stats.ActiveCourses)
	require.Equal(t, int64(4), stats.TotalDepartments)
	require.False(t, stats.CacheHit)
}

func TestDashboardServiceStatisticsCache(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	defer client.Close()

	repo := &statsRepoStub{students: 50, teachers: 5, courses: 3, departments: 2}
	svc := NewDashboardService(repo, client, time.Minute, testLogger())

	first, err := svc.GetStatistics(context.Background())
	require.NoError(t, err)
	require.False(t, first.CacheHit)

	second, err := svc.GetStatistics(context.Background())
	require.NoError(t, err)
	require.True(t, second.CacheHit)
	require.Equal(t, first.TotalStudents, second.TotalStudents)
	require.Equal(t, 1, repo.calls, "cached read must not hit the store")
}
