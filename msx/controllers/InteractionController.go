package controllers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"msx-backend/config"
	"msx-backend/msx/documents"
	"msx-backend/msx/models"
	"msx-backend/msx/schema"
	"msx-backend/msx/services"
	"msx-backend/msx/templates"
)

// InteractionController exposes the search plugin over its two transports:
// JSON endpoints and a self-registering HTML page.
type InteractionController struct {
	Service   *services.InteractionService
	Catalog   *documents.Catalog
	Validator *schema.Validator
	page      []byte
}

// NewInteractionController renders the plugin page once; its content is fixed.
func NewInteractionController(
	service *services.InteractionService,
	catalog *documents.Catalog,
	v *schema.Validator,
	pluginScriptURL string,
) (*InteractionController, error) {
	page, err := templates.RenderPluginPage(templates.PluginPageData{
		Plugin:          catalog.Plugin,
		Form:            catalog.Form,
		RequestURL:      catalog.URL(documents.PluginRequestPath),
		PluginScriptURL: pluginScriptURL,
	})
	if err != nil {
		return nil, err
	}
	return &InteractionController{Service: service, Catalog: catalog, Validator: v, page: page}, nil
}

// SearchPageController serves the HTML transport.
func (ic *InteractionController) SearchPageController(ctx *fiber.Ctx) error {
	ctx.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return ctx.Send(ic.page)
}

// SearchFormController is the JSON form of the init phase.
func (ic *InteractionController) SearchFormController(ctx *fiber.Ctx) error {
	doc, err := ic.Service.BuildDocument(models.PhaseInit, nil)
	if err != nil {
		return err
	}
	return sendDocument(ctx, ic.Validator, fiber.StatusOK, schema.KindContent, doc)
}

// SearchResultsController is the JSON form of the search phase. A blank query
// answers 400 with the empty-query document as body.
func (ic *InteractionController) SearchResultsController(ctx *fiber.Ctx) error {
	query := ctx.Query(models.QueryKey)
	doc, accepted, err := ic.Service.Search(query)
	if err != nil {
		return err
	}

	status := fiber.StatusOK
	if !accepted {
		config.Logger.Info("Rejected blank search query", zap.Int("length", len(query)))
		status = fiber.StatusBadRequest
	}
	return sendDocument(ctx, ic.Validator, status, schema.KindContent, doc)
}

// InteractionRequestController runs one protocol step for the HTML page. It
// always answers 200; failures travel in the response's success flag.
func (ic *InteractionController) InteractionRequestController(ctx *fiber.Ctx) error {
	data := ctx.Queries()
	req := models.InteractionRequest{DataID: data["dataId"], Data: make(map[string]string, len(data))}
	for k, v := range data {
		if k != "dataId" {
			req.Data[k] = v
		}
	}

	resp := ic.Service.Handle(req)
	if resp.Success {
		if err := ic.Validator.Validate(schema.KindContent, resp.Payload); err != nil {
			return err
		}
	}
	return ctx.JSON(resp)
}

// PluginInfoController advertises the plugin and the phases it understands.
func (ic *InteractionController) PluginInfoController(ctx *fiber.Ctx) error {
	return ctx.JSON(ic.Catalog.Plugin)
}
