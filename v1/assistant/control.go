package assistant

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Aleph-Alpha/vectorhub/v1/rest"
)

const component = "assistant"

// Client manages assistants on the control plane.
type Client struct {
	rest *rest.Client
}

// NewClient constructs an assistant management client on top of the
// shared transport.
func NewClient(rc *rest.Client) (*Client, error) {
	if rc == nil {
		return nil, fmt.Errorf("assistant: nil rest client")
	}
	return &Client{rest: rc}, nil
}

// Create creates a new assistant.
func (c *Client) Create(ctx context.Context, req CreateRequest) (*rest.Envelope, error) {
	return c.rest.Do(ctx, rest.Request{
		Method:    http.MethodPost,
		Path:      "/assistant/assistants",
		Body:      req,
		Success:   []int{http.StatusOK, http.StatusCreated},
		Component: component,
		Operation: "create",
		Resource:  req.Name,
	})
}

// List returns all assistants in the project. With
// rest.WithFlattenedContent the envelope content becomes one row per
// assistant.
func (c *Client) List(ctx context.Context, opts ...rest.CallOption) (*rest.Envelope, error) {
	env, err := c.rest.Do(ctx, rest.Request{
		Method:    http.MethodGet,
		Path:      "/assistant/assistants",
		Component: component,
		Operation: "list",
	})
	if err != nil {
		return nil, err
	}
	if rest.ApplyCallOptions(opts...).Flatten {
		if err := env.Flatten("assistants"); err != nil {
			return nil, err
		}
	}
	return env, nil
}

// Describe returns one assistant's configuration and status, including
// its data-plane host.
func (c *Client) Describe(ctx context.Context, name string) (*rest.Envelope, error) {
	return c.rest.Do(ctx, rest.Request{
		Method:    http.MethodGet,
		Path:      "/assistant/assistants/" + name,
		Component: component,
		Operation: "describe",
		Resource:  name,
	})
}

// Update changes an assistant's instructions or metadata.
func (c *Client) Update(ctx context.Context, name string, req UpdateRequest) (*rest.Envelope, error) {
	return c.rest.Do(ctx, rest.Request{
		Method:    http.MethodPatch,
		Path:      "/assistant/assistants/" + name,
		Body:      req,
		Component: component,
		Operation: "update",
		Resource:  name,
	})
}

// Delete removes an assistant and its files. Success statuses: 200, 202.
func (c *Client) Delete(ctx context.Context, name string) (*rest.Envelope, error) {
	return c.rest.Do(ctx, rest.Request{
		Method:    http.MethodDelete,
		Path:      "/assistant/assistants/" + name,
		Success:   []int{http.StatusOK, http.StatusAccepted},
		Component: component,
		Operation: "delete",
		Resource:  name,
	})
}

// DataPlaneHost resolves the host that file and chat operations for this
// assistant must be sent to.
func (c *Client) DataPlaneHost(ctx context.Context, name string) (string, error) {
	env, err := c.Describe(ctx, name)
	if err != nil {
		return "", err
	}
	if !env.HasContent() {
		return "", fmt.Errorf("assistant: describe %q failed with status %d", name, env.StatusCode)
	}

	record, ok := env.Content.(map[string]any)
	if !ok {
		return "", fmt.Errorf("assistant: describe %q: unexpected content shape %T", name, env.Content)
	}
	host, ok := record["host"].(string)
	if !ok || host == "" {
		return "", fmt.Errorf("assistant: describe %q: no host in response", name)
	}
	return host, nil
}
