package models

// Protocol phases carried in InteractionRequest.DataID.
const (
	PhaseInit   = "init"
	PhaseSearch = "search"
)

// QueryKey is the data key holding the user's search input.
const QueryKey = "query"

// InteractionRequest is one call of the plugin lifecycle. The server keeps no
// session: the phase travels with every request.
type InteractionRequest struct {
	DataID string            `json:"dataId"`
	Data   map[string]string `json:"data,omitempty"`
}

// Query returns data.query, or "" when absent.
func (r InteractionRequest) Query() string {
	if r.Data == nil {
		return ""
	}
	return r.Data[QueryKey]
}

// InteractionResponse answers an InteractionRequest. Payload is a *UIDocument
// when Success is true and a diagnostic string otherwise.
type InteractionResponse struct {
	Success bool `json:"success"`
	Payload any  `json:"payload"`
}

// PluginInfo is what the interaction plugin advertises about itself.
type PluginInfo struct {
	ID          string   `json:"id"`
	Version     string   `json:"version"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Phases      []string `json:"phases"`
}
