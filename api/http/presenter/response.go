package presenter

import "github.com/gofiber/fiber/v2"

// ErrorResponse: тело любого ответа с ошибкой.
type ErrorResponse struct {
	Message string `json:"message"`
}

// StatusResponse: тело ответов health/ready.
type StatusResponse struct {
	Status  string `json:"status"`
	Details string `json:"details,omitempty"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}

func NoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
