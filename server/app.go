// Package server assembles the fiber app from a routing table.
package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"msx-backend/config"
	"msx-backend/middleware"
	"msx-backend/msx/routes"
)

// New builds the app: middleware, the routing table, static assets under /msx
// and the JSON 404 fallback, in that order.
func New(cfg config.Config, table routes.Table) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               cfg.AppName,
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		ErrorHandler:          ErrorHandler,
		DisableStartupMessage: cfg.AppEnv == "production",
	})

	app.Use(middleware.RequestLogger())
	app.Use(fiberrecover.New(fiberrecover.Config{EnableStackTrace: cfg.AppEnv != "production"}))
	middleware.InitCors(app)

	for _, r := range table {
		app.Add(r.Method, r.Path, r.Handlers...)
	}

	// Client-side runtime scripts; misses fall through to the 404 handler.
	if cfg.PublicDir != "" {
		app.Static("/msx", cfg.PublicDir)
	}

	app.Use(func(c *fiber.Ctx) error {
		return fiber.ErrNotFound
	})

	return app
}

// ErrorHandler turns every error that reaches the top of the chain into JSON.
// Client errors raised by fiber keep their status; anything else is a generic
// 500 that never carries the underlying error.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		switch {
		case fe.Code == fiber.StatusNotFound:
			config.Logger.Info("404 for path", zap.String("path", c.Path()))
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Endpoint not found",
				"path":  c.Path(),
			})
		case fe.Code < fiber.StatusInternalServerError:
			return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
		}
	}

	config.Logger.Error("Unhandled request error",
		zap.String("request_id", middleware.RequestID(c)),
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Error(err),
	)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Something went wrong!",
	})
}
