package integration_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/edunexo/academico-api/internal/config"
	"github.com/edunexo/academico-api/internal/handler"
	"github.com/edunexo/academico-api/internal/middleware"
	"github.com/edunexo/academico-api/internal/models"
	"github.com/edunexo/academico-api/internal/repository"
	"github.com/edunexo/academico-api/internal/router"
	"github.com/edunexo/academico-api/internal/service"
	"github.com/edunexo/academico-api/internal/session"
)

const cookieName = "academico_session"

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Department{},
		&models.AcademicPeriod{},
		&models.Student{},
		&models.Teacher{},
		&models.Subject{},
		&models.Course{},
		&models.Enrollment{},
		&models.Grade{},
		&models.Attendance{},
		&models.Schedule{},
		&models.Assignment{},
		&models.AuditLog{},
	))

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })

	sessions := session.NewStore(client, time.Hour)
	validate := validator.New(validator.WithRequiredStructEnabled())
	logger := zerolog.New(io.Discard)

	userRepo := repository.NewUserRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	teacherRepo := repository.NewTeacherRepository(db)
	departmentRepo := repository.NewDepartmentRepository(db)
	subjectRepo := repository.NewSubjectRepository(db)
	periodRepo := repository.NewPeriodRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	gradeRepo := repository.NewGradeRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	statisticsRepo := repository.NewStatisticsRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)

	authService := service.NewAuthService(userRepo, validate, logger)
	studentService := service.NewStudentService(studentRepo, userRepo, enrollmentRepo, validate, logger)
	teacherService := service.NewTeacherService(teacherRepo, userRepo, departmentRepo, courseRepo, validate, logger)
	departmentService := service.NewDepartmentService(departmentRepo, teacherRepo, subjectRepo, validate, logger)
	subjectService := service.NewSubjectService(subjectRepo, departmentRepo, courseRepo, validate, logger)
	periodService := service.NewPeriodService(periodRepo, validate, logger)
	courseService := service.NewCourseService(service.CourseServiceDeps{
		Courses:     courseRepo,
		Subjects:    subjectRepo,
		Teachers:    teacherRepo,
		Periods:     periodRepo,
		Enrollments: enrollmentRepo,
		Schedules:   scheduleRepo,
		Assignments: assignmentRepo,
	}, validate, logger)
	enrollmentService := service.NewEnrollmentService(enrollmentRepo, studentRepo, courseRepo, validate, logger)
	gradeService := service.NewGradeService(gradeRepo, enrollmentRepo, validate, logger)
	attendanceService := service.NewAttendanceService(attendanceRepo, enrollmentRepo, validate, logger)
	scheduleService := service.NewScheduleService(scheduleRepo, courseRepo, validate, logger)
	assignmentService := service.NewAssignmentService(assignmentRepo, courseRepo, validate, logger)
	dashboardService := service.NewDashboardService(statisticsRepo, client, time.Minute, logger)
	auditService := service.NewAuditService(auditRepo, logger)

	cfg := config.Config{AppName: "academico-test", AppEnv: "test", SessionCookie: cookieName}

	app := fiber.New()
	router.Register(app, cfg, router.Dependencies{
		AuthHandler:       handler.NewAuthHandler(authService, sessions, cookieName, false, logger),
		StudentHandler:    handler.NewStudentHandler(studentService, logger),
		TeacherHandler:    handler.NewTeacherHandler(teacherService, logger),
		DepartmentHandler: handler.NewDepartmentHandler(departmentService, logger),
		SubjectHandler:    handler.NewSubjectHandler(subjectService, logger),
		PeriodHandler:     handler.NewPeriodHandler(periodService, logger),
		CourseHandler:     handler.NewCourseHandler(courseService, logger),
		EnrollmentHandler: handler.NewEnrollmentHandler(enrollmentService, logger),
		GradeHandler:      handler.NewGradeHandler(gradeService, logger),
		AttendanceHandler: handler.NewAttendanceHandler(attendanceService, logger),
		ScheduleHandler:   handler.NewScheduleHandler(scheduleService, logger),
		AssignmentHandler: handler.NewAssignmentHandler(assignmentService, logger),
		DashboardHandler:  handler.NewDashboardHandler(dashboardService, logger),
		AuditHandler:      handler.NewAuditHandler(auditService, logger),
		SessionMiddleware: middleware.SessionProtected(sessions, authService, cookieName),
		AuditMiddleware:   middleware.Audit(auditService),
		Policy:            middleware.DefaultPolicy,
	})

	return app
}

func jsonRequest(t *testing.T, method, path string, payload interface{}, cookie *http.Cookie) *http.Request {
	t.Helper()
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	return req
}

func decode(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, target))
}

func registerAndLogin(t *testing.T, app *fiber.App, email, role string) *http.Cookie {
	t.Helper()

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/register", map[string]string{
		"email":    email,
		"password": "pw1234",
		"name":     "Test " + role,
		"role":     role,
	}, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    email,
		"password": "pw1234",
	}, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	for _, cookie := range resp.Cookies() {
		if cookie.Name == cookieName {
			return cookie
		}
	}
	t.Fatal("login response carried no session cookie")
	return nil
}

func TestEndToEndAdminDepartmentFlow(t *testing.T) {
	app := setupApp(t)
	admin := registerAndLogin(t, app, "a@x.edu", models.RoleAdmin)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/departments", map[string]string{"name": "Math"}, admin))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created struct {
		Data models.Department `json:"data"`
	}
	decode(t, resp, &created)
	require.NotEmpty(t, created.Data.ID)

	resp, err = app.Test(jsonRequest(t, http.MethodGet, "/api/departments", nil, admin))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var listed struct {
		Data []models.Department `json:"data"`
	}
	decode(t, resp, &listed)
	require.Len(t, listed.Data, 1)
	require.Equal(t, created.Data.ID, listed.Data[0].ID)
}

func TestEndToEndRoleGates(t *testing.T) {
	app := setupApp(t)
	student := registerAndLogin(t, app, "s@x.edu", models.RoleStudent)

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/students", nil, student))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, "students list is readable by any authenticated role")

	resp, err = app.Test(jsonRequest(t, http.MethodPost, "/api/students", map[string]string{
		"user_id":         "whatever",
		"student_code":    "STU-X",
		"grade":           "10A",
		"enrollment_date": "2026-02-01",
	}, student))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, http.MethodGet, "/api/students", nil, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, http.MethodGet, "/api/audit", nil, student))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestEndToEndAuditTrailRecordsMutations(t *testing.T) {
	app := setupApp(t)
	admin := registerAndLogin(t, app, "auditor@x.edu", models.RoleAdmin)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/departments", map[string]string{"name": "Physics"}, admin))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, http.MethodGet, "/api/audit", nil, admin))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var audit struct {
		Data []models.AuditLog `json:"data"`
	}
	decode(t, resp, &audit)
	require.NotEmpty(t, audit.Data)
	require.Equal(t, "create", audit.Data[0].Action)
	require.Equal(t, "departments", audit.Data[0].Resource)
}

func TestEndToEndDashboardStatistics(t *testing.T) {
	app := setupApp(t)
	admin := registerAndLogin(t, app, "stats@x.edu", models.RoleAdmin)
	registerAndLogin(t, app, "pupil@x.edu", models.RoleStudent)

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/dashboard/statistics", nil, admin))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var stats struct {
		Data struct {
			TotalStudents int64 `json:"total_students"`
			TotalTeachers int64 `json:"total_teachers"`
		} `json:"data"`
	}
	decode(t, resp, &stats)
	require.Equal(t, int64(1), stats.Data.TotalStudents)
}

func TestEndToEndLogoutInvalidatesSession(t *testing.T) {
	app := setupApp(t)
	admin := registerAndLogin(t, app, "bye@x.edu", models.RoleAdmin)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/logout", nil, admin))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, http.MethodGet, "/api/auth/me", nil, admin))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, http.MethodPost, "/api/auth/logout", nil, admin))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}
