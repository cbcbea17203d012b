package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/edunexo/academico-api/internal/config"
	"github.com/edunexo/academico-api/internal/handler"
	"github.com/edunexo/academico-api/internal/middleware"
	"github.com/edunexo/academico-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	AuthHandler       *handler.AuthHandler
	StudentHandler    *handler.StudentHandler
	TeacherHandler    *handler.TeacherHandler
	DepartmentHandler *handler.DepartmentHandler
	SubjectHandler    *handler.SubjectHandler
	PeriodHandler     *handler.PeriodHandler
	CourseHandler     *handler.CourseHandler
	EnrollmentHandler *handler.EnrollmentHandler
	GradeHandler      *handler.GradeHandler
	AttendanceHandler *handler.AttendanceHandler
	ScheduleHandler   *handler.ScheduleHandler
	AssignmentHandler *handler.AssignmentHandler
	DashboardHandler  *handler.DashboardHandler
	AuditHandler      *handler.AuditHandler

	SessionMiddleware fiber.Handler
	AuditMiddleware   fiber.Handler
	Policy            middleware.Policy
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))
	app.Get("/metrics", observability.MetricsHandler())

	sessionMiddleware := deps.SessionMiddleware
	if sessionMiddleware == nil {
		sessionMiddleware = func(c *fiber.Ctx) error { return c.Next() }
	}
	auditMiddleware := deps.AuditMiddleware
	if auditMiddleware == nil {
		auditMiddleware = func(c *fiber.Ctx) error { return c.Next() }
	}

	policy := deps.Policy
	if policy == nil {
		policy = middleware.DefaultPolicy
	}

	auth := api.Group("/auth")
	deps.AuthHandler.RegisterPublic(auth)
	deps.AuthHandler.RegisterProtected(auth.Group("", sessionMiddleware))

	resource := func(path, name string) fiber.Router {
		return api.Group(path, sessionMiddleware, middleware.Enforce(policy, name), auditMiddleware)
	}

	deps.StudentHandler.Register(resource("/students", "students"))
	deps.TeacherHandler.Register(resource("/teachers", "teachers"))
	deps.DepartmentHandler.Register(resource("/departments", "departments"))
	deps.SubjectHandler.Register(resource("/subjects", "subjects"))
	deps.PeriodHandler.Register(resource("/periods", "periods"))
	deps.CourseHandler.Register(resource("/courses", "courses"))
	deps.EnrollmentHandler.Register(resource("/enrollments", "enrollments"))
	deps.GradeHandler.Register(resource("/grades", "grades"))
	deps.AttendanceHandler.Register(resource("/attendance", "attendance"))
	deps.ScheduleHandler.Register(resource("/schedules", "schedules"))
	deps.AssignmentHandler.Register(resource("/assignments", "assignments"))

	dashboard := api.Group("/dashboard", sessionMiddleware)
	deps.DashboardHandler.Register(dashboard)

	audit := api.Group("/audit", sessionMiddleware, middleware.Require(policy, "audit", middleware.ActionRead))
	deps.AuditHandler.Register(audit)
}
