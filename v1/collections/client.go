package collections

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Aleph-Alpha/vectorhub/v1/rest"
)

const component = "collections"

// CreateRequest describes a new collection.
type CreateRequest struct {
	// Name is the unique collection name
	Name string `json:"name"`

	// Source is the pod-based index the collection snapshots
	Source string `json:"source"`
}

// Client manages collections on the control plane. A collection is a
// static snapshot of a pod-based index, usable later as the source of a
// new index.
type Client struct {
	rest *rest.Client
}

// NewClient constructs a collection management client on top of the
// shared transport.
func NewClient(rc *rest.Client) (*Client, error) {
	if rc == nil {
		return nil, fmt.Errorf("collections: nil rest client")
	}
	return &Client{rest: rc}, nil
}

// Create snapshots an index into a new collection. Success status: 201.
func (c *Client) Create(ctx context.Context, req CreateRequest) (*rest.Envelope, error) {
	return c.rest.Do(ctx, rest.Request{
		Method:    http.MethodPost,
		Path:      "/collections",
		Body:      req,
		Success:   []int{http.StatusCreated},
		Component: component,
		Operation: "create",
		Resource:  req.Name,
	})
}

// List returns all collections in the project. With
// rest.WithFlattenedContent the envelope content becomes one row per
// collection.
func (c *Client) List(ctx context.Context, opts ...rest.CallOption) (*rest.Envelope, error) {
	env, err := c.rest.Do(ctx, rest.Request{
		Method:    http.MethodGet,
		Path:      "/collections",
		Component: component,
		Operation: "list",
	})
	if err != nil {
		return nil, err
	}
	if rest.ApplyCallOptions(opts...).Flatten {
		if err := env.Flatten("collections"); err != nil {
			return nil, err
		}
	}
	return env, nil
}

// Describe returns the status and size of one collection.
func (c *Client) Describe(ctx context.Context, name string) (*rest.Envelope, error) {
	return c.rest.Do(ctx, rest.Request{
		Method:    http.MethodGet,
		Path:      "/collections/" + name,
		Component: component,
		Operation: "describe",
		Resource:  name,
	})
}

// Delete removes a collection. Success statuses: 200, 202.
func (c *Client) Delete(ctx context.Context, name string) (*rest.Envelope, error) {
	return c.rest.Do(ctx, rest.Request{
		Method:    http.MethodDelete,
		Path:      "/collections/" + name,
		Success:   []int{http.StatusOK, http.StatusAccepted},
		Component: component,
		Operation: "delete",
		Resource:  name,
	})
}
