package routes

import "github.com/gofiber/fiber/v2"

const (
	Name    = "cab"
	Version = "v0.1"
)

func APIVersion(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"name":    Name,
		"version": Version,
	})
}
