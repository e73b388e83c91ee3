// Package templates renders the HTML transport of the interaction plugin.
package templates

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"

	"msx-backend/msx/models"
)

//go:embed search.html.tmpl
var searchPageSource string

var searchPage = template.Must(template.New("search.html").Parse(searchPageSource))

// PluginPageData is everything the page embeds.
type PluginPageData struct {
	Plugin          models.PluginInfo
	Form            models.UIDocument
	RequestURL      string
	PluginScriptURL string
}

// RenderPluginPage serializes the embedded values into the page. html/template
// escapes them for the script context they land in.
func RenderPluginPage(data PluginPageData) ([]byte, error) {
	var buf bytes.Buffer
	if err := searchPage.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render plugin page: %w", err)
	}
	return buf.Bytes(), nil
}
