package blueprint

import "strings"

// this file resolver.go computes the prefill sources available to a form node
// from its direct and transitive prerequisites.

const (
	DirectLabelPrefix     = "Direct:"
	TransitiveLabelPrefix = "Transitive:"

	DummyGlobalKey   = "dummy_global"
	DummyGlobalLabel = "Dummy Global Source"
)

// GetPrefillSourcesForFormNode returns the field sources of every direct prerequisite
// of formNode, then of every transitive one, followed by the global sources.
// Missing nodes and form definitions contribute nothing.
//
// edges is not used yet; prerequisites are the only dependency relation.
func GetPrefillSourcesForFormNode(formNode GraphNode, allNodes []GraphNode, forms []FormDefinition, edges []GraphEdge) []PrefillSource {
	// first node wins for duplicated ids
	nodeMap := make(map[string]GraphNode, len(allNodes))
	for _, node := range allNodes {
		if _, ok := nodeMap[node.ID]; !ok {
			nodeMap[node.ID] = node
		}
	}

	direct := formNode.Data.Prerequisites
	transitive := collectTransitive(nodeMap, direct)

	sources := []PrefillSource{}
	for _, id := range direct {
		sources = append(sources, fieldSourcesForNode(nodeMap, forms, id, DirectLabelPrefix)...)
	}
	for _, id := range transitive {
		sources = append(sources, fieldSourcesForNode(nodeMap, forms, id, TransitiveLabelPrefix)...)
	}

	return append(sources, globalSources()...)
}

// collectTransitive walks the prerequisites of every direct id depth first and returns
// the reachable ids that are not direct themselves, in order of discovery.
// Each id is expanded at most once, so cyclic prerequisites terminate.
func collectTransitive(nodeMap map[string]GraphNode, direct []string) []string {
	isDirect := make(map[string]bool, len(direct))
	for _, id := range direct {
		isDirect[id] = true
	}

	transitive := []string{}
	seen := make(map[string]bool)
	visited := make(map[string]bool)

	var traverse func(id string)
	traverse = func(id string) {
		if visited[id] {
			return
		}
		visited[id] = true

		node, ok := nodeMap[id]
		if !ok {
			return
		}
		for _, dep := range node.Data.Prerequisites {
			if !isDirect[dep] && !seen[dep] {
				seen[dep] = true
				transitive = append(transitive, dep)
			}
			traverse(dep)
		}
	}

	for _, id := range direct {
		traverse(id)
	}
	return transitive
}

// fieldSourcesForNode maps the fields of a node's form definition to form field sources.
func fieldSourcesForNode(nodeMap map[string]GraphNode, forms []FormDefinition, nodeID, labelPrefix string) []PrefillSource {
	node, ok := nodeMap[nodeID]
	if !ok {
		return nil
	}

	formName := strings.TrimSpace(labelPrefix + " " + node.Data.Name)

	fields := GetFieldsForFormNode(node, forms)
	sources := make([]PrefillSource, 0, len(fields))
	for _, field := range fields {
		sources = append(sources, FormFieldSource{
			FormID:    nodeID,
			FieldName: field.FieldName,
			FormName:  formName,
		})
	}
	return sources
}

// globalSources is the fixed list of non-form sources. It holds a single placeholder for now.
func globalSources() []PrefillSource {
	return []PrefillSource{
		GlobalSource{GlobalKey: DummyGlobalKey, Label: DummyGlobalLabel},
	}
}
