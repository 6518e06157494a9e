package blueprint

import (
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// this file node.go contains the struct definitions of the blueprint graph (nodes, edges and form definitions).

// FormNodeType is the only node type that takes part in prefill.
const FormNodeType = "form"

// GraphData is the blueprint graph document as returned by the blueprint API.
type GraphData struct {
	Schema      string      `json:"$schema"`
	ID          string      `json:"id"`
	TenantID    string      `json:"tenant_id"`
	BlueprintID string      `json:"blueprint_id,omitempty"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	Nodes       []GraphNode `json:"nodes"`
	Edges       []GraphEdge `json:"edges"`

	// defined elsewhere in the system, kept as-is
	Forms    []json.RawMessage `json:"forms"`
	Branches []json.RawMessage `json:"branches"`
	Triggers []json.RawMessage `json:"triggers"`
}

type GraphNode struct {
	ID       string   `json:"id"`
	Type     string   `json:"type"`
	Position Position `json:"position"`
	Data     NodeData `json:"data"`
}

// Position is only used for display.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type NodeData struct {
	ID               string         `json:"id"`
	ComponentKey     string         `json:"component_key"`
	ComponentType    string         `json:"component_type"`
	ComponentID      string         `json:"component_id"`
	Name             string         `json:"name"`
	Prerequisites    []string       `json:"prerequisites"`
	PermittedRoles   []string       `json:"permitted_roles"`
	InputMapping     map[string]any `json:"input_mapping"`
	SLADuration      SLADuration    `json:"sla_duration"`
	ApprovalRequired bool           `json:"approval_required"`
	ApprovalRoles    []string       `json:"approval_roles"`
}

type SLADuration struct {
	Number float64 `json:"number"`
	Unit   string  `json:"unit"`
}

// GraphEdge is a directed source -> target pair. Prefill resolution relies on prerequisites, not edges.
type GraphEdge struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// IsForm reports whether the node is a form node.
func (n GraphNode) IsForm() bool {
	return n.Type == FormNodeType
}

// FormDefinition is a form component keyed by the id referenced from NodeData.ComponentID.
// Only the field names of its schema are interpreted.
type FormDefinition struct {
	ID          string       `json:"id"`
	Name        string       `json:"name,omitempty"`
	FieldSchema *FieldSchema `json:"field_schema,omitempty"`
}

// FieldSchema keeps the properties in the order they were declared.
type FieldSchema struct {
	Type       string                                          `json:"type,omitempty"`
	Properties *orderedmap.OrderedMap[string, json.RawMessage] `json:"properties,omitempty"`
	Required   []string                                        `json:"required,omitempty"`
}

// Field pairs a field name with its opaque schema.
type Field struct {
	FieldName   string          `json:"fieldName"`
	FieldSchema json.RawMessage `json:"fieldSchema"`
}
