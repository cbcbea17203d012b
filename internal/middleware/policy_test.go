package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/edunexo/academico-api/internal/models"
)

func TestDefaultPolicyMatrix(t *testing.T) {
	cases := []struct {
		resource string
		action   Action
		role     string
		allowed  bool
	}{
		{"students", ActionRead, models.RoleStudent, true},
		{"students", ActionWrite, models.RoleTeacher, false},
		{"students", ActionWrite, models.RoleAdmin, true},
		{"students", ActionDelete, models.RoleTeacher, false},
		{"teachers", ActionDelete, models.RoleAdmin, true},
		{"departments", ActionWrite, models.RoleTeacher, false},
		{"departments", ActionRead, models.RoleStudent, true},
		{"subjects", ActionWrite, models.RoleAdmin, true},
		{"periods", ActionWrite, models.RoleStudent, false},
		{"schedules", ActionWrite, models.RoleTeacher, false},
		{"courses", ActionWrite, models.RoleTeacher, true},
		{"courses", ActionDelete, models.RoleTeacher, false},
		{"courses", ActionDelete, models.RoleAdmin, true},
		{"enrollments", ActionWrite, models.RoleTeacher, true},
		{"enrollments", ActionWrite, models.RoleStudent, false},
		{"grades", ActionWrite, models.RoleTeacher, true},
		{"grades", ActionDelete, models.RoleTeacher, true},
		{"grades", ActionDelete, models.RoleStudent, false},
		{"attendance", ActionWrite, models.RoleTeacher, true},
		{"assignments", ActionWrite, models.RoleStudent, false},
		{"audit", ActionRead, models.RoleAdmin, true},
		{"audit", ActionRead, models.RoleTeacher, false},
		{"dashboard", ActionRead, models.RoleStudent, true},
	}

	for _, tc := range cases {
		got := DefaultPolicy.Allows(tc.resource, tc.action, tc.role)
		require.Equalf(t, tc.allowed, got, "%s %s as %s", tc.action, tc.resource, tc.role)
	}
}

func TestEnforceDerivesActionFromMethod(t *testing.T) {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(LocalUserRole, models.RoleTeacher)
		return c.Next()
	})
	app.Use(Enforce(DefaultPolicy, "students"))
	app.Get("/students", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Post("/students", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Delete("/students/:id", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/students", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodPost, "/students", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, "/students/abc", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequireWithoutPrincipal(t *testing.T) {
	app := fiber.New()
	app.Use(Require(DefaultPolicy, "audit", ActionRead))
	app.Get("/audit", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/audit", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
