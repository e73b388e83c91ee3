package server

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"msx-backend/config"
	"msx-backend/msx/controllers"
	"msx-backend/msx/documents"
	"msx-backend/msx/routes"
	"msx-backend/msx/schema"
	"msx-backend/msx/services"
)

// Bootstrap wires documents, services and controllers into a ready app.
func Bootstrap(cfg config.Config) (*fiber.App, error) {
	validator, err := schema.NewValidator()
	if err != nil {
		return nil, fmt.Errorf("document schemas: %w", err)
	}

	catalog, err := documents.NewCatalog(documents.Options{
		AppName:    cfg.AppName,
		AppVersion: cfg.AppVersion,
		BaseURL:    cfg.BaseURL,
	}, validator)
	if err != nil {
		return nil, fmt.Errorf("documents: %w", err)
	}

	results, err := documents.NewResultOptions(cfg.SearchResultCount, cfg.SampleVideoURL)
	if err != nil {
		return nil, fmt.Errorf("search results: %w", err)
	}
	interactionService := services.NewInteractionService(catalog.Form, results)

	documentController := controllers.NewDocumentController(catalog, validator)
	interactionController, err := controllers.NewInteractionController(interactionService, catalog, validator, cfg.PluginScriptURL)
	if err != nil {
		return nil, err
	}

	return New(cfg, routes.MSXRoutes(documentController, interactionController)), nil
}
