package utils

import "github.com/gofiber/fiber/v2"

// APIResponse is the envelope every endpoint answers with.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message"`
}

// SendSuccess answers 200 with the standard success envelope.
func SendSuccess(c *fiber.Ctx, message string, data interface{}) error {
	return SendSuccessWithStatus(c, fiber.StatusOK, message, data)
}

// SendSuccessWithStatus answers with the given status and the success envelope.
func SendSuccessWithStatus(c *fiber.Ctx, status int, message string, data interface{}) error {
	if status == 0 {
		status = fiber.StatusOK
	}

	return send(c, status, APIResponse{Success: true, Data: data, Message: orDefault(message, "success")})
}

// SendError answers with the given status and a failure envelope carrying no data.
func SendError(c *fiber.Ctx, status int, message string) error {
	return send(c, status, APIResponse{Success: false, Message: orDefault(message, "error")})
}

func send(c *fiber.Ctx, status int, body APIResponse) error {
	return c.Status(status).JSON(body)
}

func orDefault(message, fallback string) string {
	if message == "" {
		return fallback
	}
	return message
}
