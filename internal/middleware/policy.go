package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/edunexo/academico-api/internal/models"
	"github.com/edunexo/academico-api/internal/utils"
)

// Action classifies what a route does to its resource.
type Action string

// Actions a policy can gate.
const (
	ActionRead   Action = "read"
	ActionWrite  Action = "write"
	ActionDelete Action = "delete"
)

// Policy maps resource and action to the roles allowed to perform it.
// Resources or actions absent from the table are allowed for any
// authenticated principal.
type Policy map[string]map[Action][]string

// DefaultPolicy is the authorization table for the API.
var DefaultPolicy = Policy{
	"students": {
		ActionWrite:  {models.RoleAdmin},
		ActionDelete: {models.RoleAdmin},
	},
	"teachers": {
		ActionWrite:  {models.RoleAdmin},
		ActionDelete: {models.RoleAdmin},
	},
	"departments": {
		ActionWrite: {models.RoleAdmin},
	},
	"subjects": {
		ActionWrite: {models.RoleAdmin},
	},
	"periods": {
		ActionWrite: {models.RoleAdmin},
	},
	"schedules": {
		ActionWrite: {models.RoleAdmin},
	},
	"courses": {
		ActionWrite:  {models.RoleAdmin, models.RoleTeacher},
		ActionDelete: {models.RoleAdmin},
	},
	"enrollments": {
		ActionWrite: {models.RoleAdmin, models.RoleTeacher},
	},
	"grades": {
		ActionWrite:  {models.RoleAdmin, models.RoleTeacher},
		ActionDelete: {models.RoleAdmin, models.RoleTeacher},
	},
	"attendance": {
		ActionWrite: {models.RoleAdmin, models.RoleTeacher},
	},
	"assignments": {
		ActionWrite: {models.RoleAdmin, models.RoleTeacher},
	},
	"audit": {
		ActionRead: {models.RoleAdmin},
	},
}

// Allows reports whether the role may perform the action on the resource.
func (p Policy) Allows(resource string, action Action, role string) bool {
	actions, ok := p[resource]
	if !ok {
		return true
	}
	roles, ok := actions[action]
	if !ok {
		return true
	}
	for _, allowed := range roles {
		if allowed == role {
			return true
		}
	}
	return false
}

// Enforce gates every route of a resource group, deriving the action from
// the request method.
func Enforce(policy Policy, resource string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		action := ActionRead
		switch c.Method() {
		case fiber.MethodPost, fiber.MethodPut, fiber.MethodPatch:
			action = ActionWrite
		case fiber.MethodDelete:
			action = ActionDelete
		}
		return Require(policy, resource, action)(c)
	}
}

// Require returns a gate enforcing the policy entry for (resource, action).
// It must run after SessionProtected.
func Require(policy Policy, resource string, action Action) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals(LocalUserRole).(string)
		if !ok || role == "" {
			return utils.SendError(c, fiber.StatusUnauthorized, "authentication required")
		}

		if !policy.Allows(resource, action, role) {
			return utils.SendError(c, fiber.StatusForbidden, "insufficient permissions")
		}

		return c.Next()
	}
}
