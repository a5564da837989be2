package handlers

import "github.com/gofiber/fiber/v2"

const ReadinessMessage = "AI Career Mentor API is running!"

// HandleRoot handles GET /
func HandleRoot(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": ReadinessMessage,
	})
}
