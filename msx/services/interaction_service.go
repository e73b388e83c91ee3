// Package services implements the interaction plugin protocol. The server holds
// no session: each request names its phase and gets a complete answer.
package services

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"msx-backend/config"
	"msx-backend/msx/documents"
	"msx-backend/msx/models"
)

// ErrUnknownPhase is returned by BuildDocument for a dataId outside the lifecycle.
var ErrUnknownPhase = errors.New("unknown request")

// InteractionService answers init and search requests of the search plugin.
type InteractionService struct {
	form    models.UIDocument
	results documents.ResultOptions
}

// NewInteractionService returns a service answering init with form.
func NewInteractionService(form models.UIDocument, results documents.ResultOptions) *InteractionService {
	return &InteractionService{form: form, results: results}
}

// BuildDocument maps a phase and its data to the document the client shows.
// A blank search query yields the empty-query document, not an error.
func (s *InteractionService) BuildDocument(phase string, data map[string]string) (models.UIDocument, error) {
	switch phase {
	case models.PhaseInit:
		return s.form, nil
	case models.PhaseSearch:
		doc, _, err := s.Search(data[models.QueryKey])
		return doc, err
	default:
		return models.UIDocument{}, fmt.Errorf("%w: %s", ErrUnknownPhase, phase)
	}
}

// Search returns the results document, or the empty-query document with
// accepted=false when query is blank.
func (s *InteractionService) Search(query string) (doc models.UIDocument, accepted bool, err error) {
	if documents.IsBlankQuery(query) {
		return documents.EmptyQueryDocument(), false, nil
	}
	doc, err = documents.ResultsDocument(query, s.results)
	if err != nil {
		return models.UIDocument{}, false, err
	}
	return doc, true, nil
}

// Handle runs one protocol step. Unknown phases answer success=false with a
// diagnostic; Handle itself never fails.
func (s *InteractionService) Handle(req models.InteractionRequest) models.InteractionResponse {
	doc, err := s.BuildDocument(req.DataID, req.Data)
	switch {
	case err == nil:
		return models.InteractionResponse{Success: true, Payload: doc}
	case errors.Is(err, ErrUnknownPhase):
		config.Logger.Warn("Unknown interaction request", zap.String("dataId", req.DataID))
		return models.InteractionResponse{Success: false, Payload: "Unknown request: " + req.DataID}
	default:
		config.Logger.Error("Failed to build interaction document", zap.String("dataId", req.DataID), zap.Error(err))
		return models.InteractionResponse{Success: false, Payload: "Request failed: " + req.DataID}
	}
}
