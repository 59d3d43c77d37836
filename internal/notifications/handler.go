package notifications

import "github.com/gofiber/fiber/v2"

// Handler serves GET /api/notifications.
func Handler(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"items": List()})
}
