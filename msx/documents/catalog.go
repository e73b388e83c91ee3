// Package documents builds the declarative UI documents served to the MSX client.
package documents

import (
	"fmt"

	"msx-backend/msx/actions"
	"msx-backend/msx/models"
	"msx-backend/msx/schema"
)

// Paths of the documents relative to the public base URL.
const (
	StartPath         = "/msx/start.json"
	MenuPath          = "/msx/menu.json"
	PluginPagePath    = "/msx/interaction/search.html"
	PluginRequestPath = "/msx/interaction/request"
	PluginInfoPath    = "/msx/interaction/info"
	SearchFormPath    = "/msx/interaction/search_form"
	SearchResultsPath = "/msx/search_results"
)

// SearchControlKey keys the form's input control and the commit action's placeholder.
const SearchControlKey = "search_query"

// Options configures the fixed documents.
type Options struct {
	AppName    string
	AppVersion string
	BaseURL    string
}

// Catalog holds the documents that are constant for the server's lifetime.
type Catalog struct {
	Startup models.StartupDescriptor
	Menu    models.UIDocument
	Form    models.UIDocument
	Plugin  models.PluginInfo
	baseURL string
}

// NewCatalog builds and validates the fixed documents.
func NewCatalog(opts Options, v *schema.Validator) (*Catalog, error) {
	startup, err := buildStartup(opts)
	if err != nil {
		return nil, err
	}
	menu, err := buildMenu(opts)
	if err != nil {
		return nil, err
	}
	form, err := BuildSearchForm()
	if err != nil {
		return nil, err
	}

	if err := v.Validate(schema.KindStart, startup); err != nil {
		return nil, err
	}
	if err := v.Validate(schema.KindMenu, menu); err != nil {
		return nil, err
	}
	if err := v.Validate(schema.KindContent, form); err != nil {
		return nil, err
	}

	return &Catalog{
		Startup: startup,
		Menu:    menu,
		Form:    form,
		Plugin:  SearchPluginInfo(),
		baseURL: opts.BaseURL,
	}, nil
}

// URL resolves a server path against the public base URL.
func (c *Catalog) URL(path string) string {
	return c.baseURL + path
}

// SearchPluginInfo is what the search plugin advertises in its Setup call.
func SearchPluginInfo() models.PluginInfo {
	return models.PluginInfo{
		ID:          "search.interaction.plugin",
		Version:     "1.0.0",
		Name:        "Search Plugin",
		Description: "Handles content search",
		Icon:        "search",
		Phases:      []string{models.PhaseInit, models.PhaseSearch},
	}
}

func buildStartup(opts Options) (models.StartupDescriptor, error) {
	param, err := actions.Menu(opts.BaseURL + MenuPath)
	if err != nil {
		return models.StartupDescriptor{}, fmt.Errorf("startup parameter: %w", err)
	}
	return models.StartupDescriptor{
		Name:      opts.AppName,
		Version:   opts.AppVersion,
		Parameter: param,
	}, nil
}

func buildMenu(opts Options) (models.UIDocument, error) {
	search, err := actions.InteractionRequest(models.PhaseInit, opts.BaseURL+PluginPagePath)
	if err != nil {
		return models.UIDocument{}, fmt.Errorf("menu search action: %w", err)
	}
	return models.UIDocument{
		Name:     "Search Menu",
		Headline: "Поиск контента",
		Menu: []models.MenuEntry{
			{Type: models.ItemSeparator, Label: "Поиск"},
			{
				Type:        models.ItemDefault,
				Title:       "Найти контент",
				Description: "Поиск фильмов и сериалов",
				Icon:        "search",
				Action:      search,
			},
		},
	}, nil
}
