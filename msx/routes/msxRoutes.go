// Package routes declares the HTTP surface as data. The table is built once at
// startup and handed to the server, which registers it.
package routes

import (
	"github.com/gofiber/fiber/v2"

	"msx-backend/middleware"
	"msx-backend/msx/controllers"
	"msx-backend/msx/documents"
)

// Route binds a method and path to its handler chain.
type Route struct {
	Method   string
	Path     string
	Handlers []fiber.Handler
}

// Table is the complete routing table of the service.
type Table []Route

// Paths lists the table's paths in declaration order.
func (t Table) Paths() []string {
	paths := make([]string, 0, len(t))
	for _, r := range t {
		paths = append(paths, r.Path)
	}
	return paths
}

// MSXRoutes builds the routing table. The root banner lists every other route.
func MSXRoutes(dc *controllers.DocumentController, ic *controllers.InteractionController) Table {
	t := Table{
		{fiber.MethodGet, "/health", []fiber.Handler{dc.HealthController}},
		{fiber.MethodGet, documents.StartPath, []fiber.Handler{dc.GetStartupController}},
		{fiber.MethodGet, "/start.json", []fiber.Handler{dc.GetStartupController}},
		{fiber.MethodGet, documents.MenuPath, []fiber.Handler{dc.GetMenuController}},
		{fiber.MethodGet, documents.SearchFormPath, []fiber.Handler{ic.SearchFormController}},
		{fiber.MethodGet, documents.SearchResultsPath, []fiber.Handler{ic.SearchResultsController}},
		{fiber.MethodGet, documents.PluginRequestPath, []fiber.Handler{ic.InteractionRequestController}},
		{fiber.MethodGet, documents.PluginInfoPath, []fiber.Handler{ic.PluginInfoController}},
		{fiber.MethodGet, documents.PluginPagePath, []fiber.Handler{middleware.AllowFraming(), ic.SearchPageController}},
	}
	root := Route{fiber.MethodGet, "/", []fiber.Handler{controllers.BannerController(t.Paths())}}
	return append(Table{root}, t...)
}
