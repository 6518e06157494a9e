package blueprint

import (
	"context"
	"encoding/json"
	"log/slog"
)

// FormProvider supplies the form definitions used to resolve fields of form nodes.
type FormProvider interface {
	FormDefinitions(ctx context.Context, tenantID string, graph *GraphData) ([]FormDefinition, error)
}

// GraphForms serves the form definitions embedded in the graph document itself.
type GraphForms struct{}

func (GraphForms) FormDefinitions(_ context.Context, _ string, graph *GraphData) ([]FormDefinition, error) {
	if graph == nil {
		return []FormDefinition{}, nil
	}
	return DecodeFormDefinitions(graph.Forms), nil
}

// DecodeFormDefinitions decodes a loosely typed forms list.
// Entries that are not form definitions are skipped.
func DecodeFormDefinitions(raw []json.RawMessage) []FormDefinition {
	forms := make([]FormDefinition, 0, len(raw))
	for i, entry := range raw {
		var form FormDefinition
		if err := json.Unmarshal(entry, &form); err != nil {
			slog.Debug("Skipping undecodable form definition", "index", i, "error", err)
			continue
		}
		forms = append(forms, form)
	}
	return forms
}
