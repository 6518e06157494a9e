package blueprint

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func loadGraphBytes(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile("testdata/graph.json")
	require.NoError(t, err)
	return data
}

func loadGraph(t *testing.T) *GraphData {
	t.Helper()
	var graph GraphData
	require.NoError(t, json.Unmarshal(loadGraphBytes(t), &graph))
	return &graph
}

// formDef builds a form definition from its JSON so properties keep their declared order.
func formDef(t *testing.T, raw string) FormDefinition {
	t.Helper()
	var def FormDefinition
	require.NoError(t, json.Unmarshal([]byte(raw), &def))
	return def
}

func formNode(id, componentID, name string, prerequisites ...string) GraphNode {
	return GraphNode{
		ID:   id,
		Type: FormNodeType,
		Data: NodeData{
			ComponentID:   componentID,
			Name:          name,
			Prerequisites: prerequisites,
		},
	}
}

func fieldNames(fields []Field) []string {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.FieldName)
	}
	return names
}
