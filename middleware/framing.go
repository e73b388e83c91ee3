package middleware

import "github.com/gofiber/fiber/v2"

// AllowFraming lets the client's embedded browser surface load the page from any origin.
func AllowFraming() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderXFrameOptions, "ALLOWALL")
		c.Set(fiber.HeaderContentSecurityPolicy, "frame-ancestors *")
		return c.Next()
	}
}
