package index

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Aleph-Alpha/vectorhub/v1/rest"
)

const component = "index"

// Client manages indexes on the control plane.
type Client struct {
	rest *rest.Client
}

// NewClient constructs an index management client on top of the shared
// transport.
func NewClient(rc *rest.Client) (*Client, error) {
	if rc == nil {
		return nil, fmt.Errorf("index: nil rest client")
	}
	return &Client{rest: rc}, nil
}

// Create creates a new index. Success status: 201.
func (c *Client) Create(ctx context.Context, req CreateRequest) (*rest.Envelope, error) {
	return c.rest.Do(ctx, rest.Request{
		Method:    http.MethodPost,
		Path:      "/indexes",
		Body:      req,
		Success:   []int{http.StatusCreated},
		Component: component,
		Operation: "create",
		Resource:  req.Name,
	})
}

// CreateForModel creates an index integrated with a hosted embedding
// model. Success status: 201.
func (c *Client) CreateForModel(ctx context.Context, req CreateForModelRequest) (*rest.Envelope, error) {
	return c.rest.Do(ctx, rest.Request{
		Method:    http.MethodPost,
		Path:      "/indexes/create-for-model",
		Body:      req,
		Success:   []int{http.StatusCreated},
		Component: component,
		Operation: "create_for_model",
		Resource:  req.Name,
	})
}

// List returns all indexes in the project. With
// rest.WithFlattenedContent the envelope content becomes one row per
// index.
func (c *Client) List(ctx context.Context, opts ...rest.CallOption) (*rest.Envelope, error) {
	env, err := c.rest.Do(ctx, rest.Request{
		Method:    http.MethodGet,
		Path:      "/indexes",
		Component: component,
		Operation: "list",
	})
	if err != nil {
		return nil, err
	}
	if rest.ApplyCallOptions(opts...).Flatten {
		if err := env.Flatten("indexes"); err != nil {
			return nil, err
		}
	}
	return env, nil
}

// Describe returns the configuration and status of one index, including
// its data-plane host.
func (c *Client) Describe(ctx context.Context, name string) (*rest.Envelope, error) {
	return c.rest.Do(ctx, rest.Request{
		Method:    http.MethodGet,
		Path:      "/indexes/" + name,
		Component: component,
		Operation: "describe",
		Resource:  name,
	})
}

// Configure changes mutable settings of an existing index.
func (c *Client) Configure(ctx context.Context, name string, req ConfigureRequest) (*rest.Envelope, error) {
	return c.rest.Do(ctx, rest.Request{
		Method:    http.MethodPatch,
		Path:      "/indexes/" + name,
		Body:      req,
		Component: component,
		Operation: "configure",
		Resource:  name,
	})
}

// Delete removes an index. Success statuses: 200, 202.
func (c *Client) Delete(ctx context.Context, name string) (*rest.Envelope, error) {
	return c.rest.Do(ctx, rest.Request{
		Method:    http.MethodDelete,
		Path:      "/indexes/" + name,
		Success:   []int{http.StatusOK, http.StatusAccepted},
		Component: component,
		Operation: "delete",
		Resource:  name,
	})
}

// DataPlaneHost resolves the per-index host that vector and import
// operations must be sent to. Data-plane clients cannot be constructed
// without it.
func (c *Client) DataPlaneHost(ctx context.Context, name string) (string, error) {
	env, err := c.Describe(ctx, name)
	if err != nil {
		return "", err
	}
	if !env.HasContent() {
		return "", fmt.Errorf("index: describe %q failed with status %d", name, env.StatusCode)
	}

	record, ok := env.Content.(map[string]any)
	if !ok {
		return "", fmt.Errorf("index: describe %q: unexpected content shape %T", name, env.Content)
	}
	host, ok := record["host"].(string)
	if !ok || host == "" {
		return "", fmt.Errorf("index: describe %q: no host in response", name)
	}
	return host, nil
}
