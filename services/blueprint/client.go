package blueprint

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sourcegraph/conc/pool"
)

const (
	DefaultBaseURL        = "http://localhost:3000"
	DefaultTimeout        = 10 * time.Second
	DefaultMaxConcurrency = 4
)

// GraphFetcher retrieves blueprint graphs.
type GraphFetcher interface {
	GetActionBlueprintGraph(ctx context.Context, tenantID, blueprintID string) (*GraphData, error)
}

// BatchGraphFetcher retrieves several graphs of one tenant at once.
type BatchGraphFetcher interface {
	GetActionBlueprintGraphs(ctx context.Context, tenantID string, blueprintIDs []string) ([]*GraphData, error)
}

// Client talks to the blueprint API. It holds no state between calls and is safe for concurrent use.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	maxConcurrency int
}

type ClientOption func(*Client)

// WithHTTPClient replaces the underlying http client (its timeout included).
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithMaxConcurrency bounds the number of requests in flight for batch fetches.
func WithMaxConcurrency(n int) ClientOption {
	return func(c *Client) {
		if n > 0 {
			c.maxConcurrency = n
		}
	}
}

func NewClient(baseURL string, opts ...ClientOption) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		httpClient:     &http.Client{Timeout: DefaultTimeout},
		maxConcurrency: DefaultMaxConcurrency,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// graphPath builds /api/v1/{tenantId}/actions/blueprints/{blueprintId}/graph.
func graphPath(tenantID, blueprintID string) string {
	return fmt.Sprintf("/api/v1/%s/actions/blueprints/%s/graph", url.PathEscape(tenantID), url.PathEscape(blueprintID))
}

// GetActionBlueprintGraph fetches the graph of a blueprint with a single GET.
// The body is trusted to be a GraphData document. Failures are logged and returned, never retried.
func (c *Client) GetActionBlueprintGraph(ctx context.Context, tenantID, blueprintID string) (*GraphData, error) {
	graph, err := c.getGraph(ctx, tenantID, blueprintID)
	if err != nil {
		slog.Error("Error fetching graph data", "tenant id", tenantID, "blueprint id", blueprintID, "error", err)
		return nil, err
	}
	return graph, nil
}

func (c *Client) getGraph(ctx context.Context, tenantID, blueprintID string) (*GraphData, error) {
	endpoint := c.baseURL + graphPath(tenantID, blueprintID)
	slog.Debug("Fetching blueprint graph", "url", endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrFetchFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var graph GraphData
	if err := json.NewDecoder(resp.Body).Decode(&graph); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrResponseDecodeFailed, err)
	}
	return &graph, nil
}

// GetActionBlueprintGraphs fetches several blueprints of one tenant concurrently.
func (c *Client) GetActionBlueprintGraphs(ctx context.Context, tenantID string, blueprintIDs []string) ([]*GraphData, error) {
	return FetchGraphs(ctx, c, tenantID, blueprintIDs, c.maxConcurrency)
}

// FetchGraphs runs at most maxConcurrency fetches at a time and returns the graphs in the
// order of blueprintIDs. The first failure cancels the requests still running.
func FetchGraphs(ctx context.Context, fetcher GraphFetcher, tenantID string, blueprintIDs []string, maxConcurrency int) ([]*GraphData, error) {
	if maxConcurrency <= 0 {
		maxConcurrency = DefaultMaxConcurrency
	}
	graphs := make([]*GraphData, len(blueprintIDs))

	p := pool.New().
		WithMaxGoroutines(maxConcurrency).
		WithContext(ctx).
		WithCancelOnError().
		WithFirstError()

	for i, blueprintID := range blueprintIDs {
		i, blueprintID := i, blueprintID // per-iteration copy (go 1.21 loop semantics)
		p.Go(func(ctx context.Context) error {
			graph, err := fetcher.GetActionBlueprintGraph(ctx, tenantID, blueprintID)
			if err != nil {
				return fmt.Errorf("blueprint %s: %w", blueprintID, err)
			}
			graphs[i] = graph
			return nil
		})
	}

	if err := p.Wait(); err != nil {
		return nil, err
	}
	return graphs, nil
}
