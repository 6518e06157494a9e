package blueprint

import "slices"

// this file graph.go contains read-only accessors over a fetched blueprint graph.

// GetFormsFromGraph returns every form node of the graph, in graph order.
func GetFormsFromGraph(graph *GraphData) []GraphNode {
	forms := []GraphNode{}
	if graph == nil {
		return forms
	}
	for _, node := range graph.Nodes {
		if node.IsForm() {
			forms = append(forms, node)
		}
	}
	return forms
}

// GetFormDependencies returns a copy of the prerequisites of the node with the given id.
// An unknown id yields an empty list.
func GetFormDependencies(graph *GraphData, formID string) []string {
	if graph == nil {
		return []string{}
	}
	node, ok := FindNode(graph.Nodes, formID)
	if !ok || node.Data.Prerequisites == nil {
		return []string{}
	}
	return slices.Clone(node.Data.Prerequisites)
}

// FindNode returns the first node with the given id.
func FindNode(nodes []GraphNode, id string) (GraphNode, bool) {
	for _, node := range nodes {
		if node.ID == id {
			return node, true
		}
	}
	return GraphNode{}, false
}

// findFormDefinition returns the first definition with the given id.
func findFormDefinition(forms []FormDefinition, id string) (FormDefinition, bool) {
	for _, form := range forms {
		if form.ID == id {
			return form, true
		}
	}
	return FormDefinition{}, false
}

// GetFieldsForFormNode lists the fields of the form definition the node points at,
// in the order the schema declares them. A missing definition or schema yields no fields.
func GetFieldsForFormNode(formNode GraphNode, forms []FormDefinition) []Field {
	fields := []Field{}

	def, ok := findFormDefinition(forms, formNode.Data.ComponentID)
	if !ok || def.FieldSchema == nil || def.FieldSchema.Properties == nil {
		return fields
	}

	for pair := def.FieldSchema.Properties.Oldest(); pair != nil; pair = pair.Next() {
		fields = append(fields, Field{
			FieldName:   pair.Key,
			FieldSchema: pair.Value,
		})
	}
	return fields
}
