// Package models holds the declarative UI documents exchanged with the MSX client.
// All values are built per request (or once at startup) and never mutated afterwards.
package models

// Document types understood by the client.
const (
	TypeList  = "list"
	TypePages = "pages"
)

// Item types.
const (
	ItemSpace     = "space"
	ItemControl   = "control"
	ItemButton    = "button"
	ItemSeparator = "separator"
	ItemDefault   = "item"
)

// Template carries layout and styling defaults applied to every item of a document.
type Template struct {
	Type   string `json:"type,omitempty"`
	Layout string `json:"layout,omitempty"`
	Color  string `json:"color,omitempty"`
	Icon   string `json:"icon,omitempty"`
}

// Control is an input widget embedded in a form item.
type Control struct {
	Type        string `json:"type"`
	Key         string `json:"key,omitempty"`
	Target      string `json:"target,omitempty"`
	Label       string `json:"label,omitempty"`
	Placeholder string `json:"placeholder,omitempty"`
}

// Selection binds a remote key to an action.
type Selection struct {
	Important bool   `json:"important,omitempty"`
	Key       string `json:"key"`
	Action    string `json:"action"`
}

// Item is one entry of a document's items; slice order is display order.
type Item struct {
	ID          string      `json:"id,omitempty"`
	Layout      string      `json:"layout,omitempty"`
	Type        string      `json:"type,omitempty"`
	Title       string      `json:"title,omitempty"`
	Label       string      `json:"label,omitempty"`
	Description string      `json:"description,omitempty"`
	Icon        string      `json:"icon,omitempty"`
	Alignment   string      `json:"alignment,omitempty"`
	Action      string      `json:"action,omitempty"`
	Control     *Control    `json:"control,omitempty"`
	Selection   []Selection `json:"selection,omitempty"`
}

// MenuEntry is one entry of a top-level menu.
type MenuEntry struct {
	Type        string `json:"type"`
	Label       string `json:"label,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Action      string `json:"action,omitempty"`
}

// UIDocument describes a screen. Content documents set Type and Items,
// menu documents set Menu.
type UIDocument struct {
	Type     string      `json:"type,omitempty"`
	Name     string      `json:"name,omitempty"`
	Headline string      `json:"headline,omitempty"`
	Focus    bool        `json:"focus,omitempty"`
	Template *Template   `json:"template,omitempty"`
	Items    []Item      `json:"items,omitempty"`
	Menu     []MenuEntry `json:"menu,omitempty"`
}

// StartupDescriptor is the first document the client loads. Parameter points
// at the next document, e.g. "menu:https://host/msx/menu.json".
type StartupDescriptor struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	Parameter string `json:"parameter"`
}

// HealthStatus is the liveness probe body.
type HealthStatus struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
