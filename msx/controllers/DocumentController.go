// Package controllers adapts the MSX documents and the interaction protocol to HTTP.
package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"msx-backend/msx/documents"
	"msx-backend/msx/models"
	"msx-backend/msx/schema"
)

// DocumentController serves the fixed documents and the service probes.
type DocumentController struct {
	Catalog   *documents.Catalog
	Validator *schema.Validator
	Now       func() time.Time
}

// NewDocumentController returns a controller serving catalog.
func NewDocumentController(catalog *documents.Catalog, v *schema.Validator) *DocumentController {
	return &DocumentController{Catalog: catalog, Validator: v, Now: time.Now}
}

// GetStartupController returns the startup descriptor.
func (dc *DocumentController) GetStartupController(ctx *fiber.Ctx) error {
	return sendDocument(ctx, dc.Validator, fiber.StatusOK, schema.KindStart, dc.Catalog.Startup)
}

// GetMenuController returns the top-level menu.
func (dc *DocumentController) GetMenuController(ctx *fiber.Ctx) error {
	return sendDocument(ctx, dc.Validator, fiber.StatusOK, schema.KindMenu, dc.Catalog.Menu)
}

// HealthController reports liveness with the current wall-clock time.
func (dc *DocumentController) HealthController(ctx *fiber.Ctx) error {
	return ctx.JSON(models.HealthStatus{
		Status:    "OK",
		Timestamp: dc.Now().UTC().Format(time.RFC3339Nano),
	})
}

// BannerController lists the service's endpoints.
func BannerController(endpoints []string) fiber.Handler {
	listed := append([]string(nil), endpoints...)
	return func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message":   "MSX Player Server is running!",
			"endpoints": listed,
		})
	}
}
