package blueprint

import (
	"context"
	"fmt"
	"log/slog"
)

// Service resolves prefill data on top of freshly fetched graphs. Nothing is cached;
// every call fetches again.
type Service struct {
	fetcher GraphFetcher
	forms   FormProvider
}

func NewService(fetcher GraphFetcher, forms FormProvider) *Service {
	if forms == nil {
		forms = GraphForms{}
	}
	return &Service{
		fetcher: fetcher,
		forms:   forms,
	}
}

// formNodeContext is everything needed to resolve one form node.
type formNodeContext struct {
	graph *GraphData
	node  GraphNode
	forms []FormDefinition
}

// loadFormNode fetches the graph, locates the form node and loads the form definitions.
// A failed fetch stops here, nothing else is looked up.
func (s *Service) loadFormNode(ctx context.Context, tenantID, blueprintID, nodeID string) (*formNodeContext, error) {
	graph, err := s.fetcher.GetActionBlueprintGraph(ctx, tenantID, blueprintID)
	if err != nil {
		return nil, err
	}
	if graph == nil {
		graph = &GraphData{}
	}

	node, ok := FindNode(graph.Nodes, nodeID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFormNodeNotFound, nodeID)
	}
	if !node.IsForm() {
		return nil, fmt.Errorf("%w: %s has type %q", ErrNotFormNode, nodeID, node.Type)
	}

	forms, err := s.forms.FormDefinitions(ctx, tenantID, graph)
	if err != nil {
		return nil, err
	}

	return &formNodeContext{graph: graph, node: node, forms: forms}, nil
}

// Graph returns the graph of a blueprint as fetched.
func (s *Service) Graph(ctx context.Context, tenantID, blueprintID string) (*GraphData, error) {
	return s.fetcher.GetActionBlueprintGraph(ctx, tenantID, blueprintID)
}

// Graphs fetches several blueprints of one tenant. Fetchers with their own batch method
// (such as *Client) are used as is, so the concurrency limit has a single owner.
func (s *Service) Graphs(ctx context.Context, tenantID string, blueprintIDs []string) ([]*GraphData, error) {
	if len(blueprintIDs) == 0 {
		return nil, ErrMissingBlueprintID
	}
	if bf, ok := s.fetcher.(BatchGraphFetcher); ok {
		return bf.GetActionBlueprintGraphs(ctx, tenantID, blueprintIDs)
	}
	return FetchGraphs(ctx, s.fetcher, tenantID, blueprintIDs, DefaultMaxConcurrency)
}

// FormNodes returns the form nodes of a blueprint.
func (s *Service) FormNodes(ctx context.Context, tenantID, blueprintID string) ([]GraphNode, error) {
	graph, err := s.fetcher.GetActionBlueprintGraph(ctx, tenantID, blueprintID)
	if err != nil {
		return nil, err
	}
	return GetFormsFromGraph(graph), nil
}

// Dependencies returns the declared prerequisites of a node; unknown nodes have none.
func (s *Service) Dependencies(ctx context.Context, tenantID, blueprintID, nodeID string) ([]string, error) {
	graph, err := s.fetcher.GetActionBlueprintGraph(ctx, tenantID, blueprintID)
	if err != nil {
		return nil, err
	}
	return GetFormDependencies(graph, nodeID), nil
}

// Fields returns the fields of a form node.
func (s *Service) Fields(ctx context.Context, tenantID, blueprintID, nodeID string) ([]Field, error) {
	fc, err := s.loadFormNode(ctx, tenantID, blueprintID, nodeID)
	if err != nil {
		return nil, err
	}
	return GetFieldsForFormNode(fc.node, fc.forms), nil
}

// PrefillSources returns the prefill candidates of a form node.
func (s *Service) PrefillSources(ctx context.Context, tenantID, blueprintID, nodeID string) ([]PrefillSource, error) {
	fc, err := s.loadFormNode(ctx, tenantID, blueprintID, nodeID)
	if err != nil {
		return nil, err
	}

	sources := GetPrefillSourcesForFormNode(fc.node, fc.graph.Nodes, fc.forms, fc.graph.Edges)
	for _, source := range sources {
		slog.Debug("Prefill source", "node id", nodeID, "source", DescribeSource(source))
	}
	return sources, nil
}
