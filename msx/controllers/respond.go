package controllers

import (
	"github.com/gofiber/fiber/v2"

	"msx-backend/msx/schema"
)

// sendDocument validates doc against kind before writing it as JSON. A document
// that fails validation is a server bug and surfaces as a 500.
func sendDocument(ctx *fiber.Ctx, v *schema.Validator, status int, kind schema.Kind, doc any) error {
	if err := v.Validate(kind, doc); err != nil {
		return err
	}
	return ctx.Status(status).JSON(doc)
}
