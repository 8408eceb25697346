package controllers

import "github.com/gofiber/fiber/v2"

// HandleRoot serves the service banner.
func HandleRoot(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "NativoSEO backend",
	})
}
