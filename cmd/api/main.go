package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/edunexo/academico-api/internal/config"
	"github.com/edunexo/academico-api/internal/database"
	"github.com/edunexo/academico-api/internal/handler"
	"github.com/edunexo/academico-api/internal/middleware"
	"github.com/edunexo/academico-api/internal/models"
	"github.com/edunexo/academico-api/internal/repository"
	"github.com/edunexo/academico-api/internal/router"
	"github.com/edunexo/academico-api/internal/service"
	"github.com/edunexo/academico-api/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
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
	); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	redisClient, err := database.ConnectRedis(cfg.RedisURL)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()

	sessions := session.NewStore(redisClient, cfg.SessionTTL)

	validate := validator.New(validator.WithRequiredStructEnabled())

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
	dashboardService := service.NewDashboardService(statisticsRepo, redisClient, cfg.StatsCacheTTL, logger)
	auditService := service.NewAuditService(auditRepo, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		AuthHandler:       handler.NewAuthHandler(authService, sessions, cfg.SessionCookie, cfg.IsProduction(), logger),
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
		SessionMiddleware: middleware.SessionProtected(sessions, authService, cfg.SessionCookie),
		AuditMiddleware:   middleware.Audit(auditService),
		Policy:            middleware.DefaultPolicy,
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
