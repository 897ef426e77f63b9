package imports

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Aleph-Alpha/vectorhub/v1/rest"
)

const component = "imports"

// StartRequest begins a bulk import from object storage into an index.
type StartRequest struct {
	// URI points at the import source, e.g. "s3://bucket/path/"
	URI string `json:"uri"`

	// IntegrationID names a stored storage integration for private
	// buckets
	IntegrationID string `json:"integrationId,omitempty"`

	// ErrorMode controls per-record failure handling
	ErrorMode *ErrorMode `json:"errorMode,omitempty"`
}

// ErrorMode controls how the server treats records that fail to import.
type ErrorMode struct {
	// OnError is "abort" or "continue"
	OnError string `json:"onError"`
}

// Client drives bulk imports on one index's data plane.
type Client struct {
	rest *rest.Client
	host string
}

// NewClient constructs a bulk import client for one index. The host comes
// from index.Client.DataPlaneHost.
func NewClient(rc *rest.Client, host string) (*Client, error) {
	if rc == nil {
		return nil, fmt.Errorf("imports: nil rest client")
	}
	if host == "" {
		return nil, rest.ErrMissingHost
	}
	return &Client{rest: rc, host: host}, nil
}

// Start begins an asynchronous bulk import and returns its id in the
// envelope content.
func (c *Client) Start(ctx context.Context, req StartRequest) (*rest.Envelope, error) {
	return c.rest.Do(ctx, rest.Request{
		Method:    http.MethodPost,
		BaseURL:   c.host,
		Path:      "/bulk/imports",
		Body:      req,
		Component: component,
		Operation: "start",
		Resource:  req.URI,
	})
}

// List returns one page of import jobs. With rest.WithFlattenedContent
// the envelope content becomes one row per job.
func (c *Client) List(ctx context.Context, limit int, paginationToken string, opts ...rest.CallOption) (*rest.Envelope, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	if paginationToken != "" {
		query.Set("paginationToken", paginationToken)
	}

	env, err := c.rest.Do(ctx, rest.Request{
		Method:    http.MethodGet,
		BaseURL:   c.host,
		Path:      "/bulk/imports",
		Query:     query,
		Component: component,
		Operation: "list",
	})
	if err != nil {
		return nil, err
	}
	if rest.ApplyCallOptions(opts...).Flatten {
		if err := env.Flatten("data"); err != nil {
			return nil, err
		}
	}
	return env, nil
}

// Describe returns the state of one import job.
func (c *Client) Describe(ctx context.Context, id string) (*rest.Envelope, error) {
	return c.rest.Do(ctx, rest.Request{
		Method:    http.MethodGet,
		BaseURL:   c.host,
		Path:      "/bulk/imports/" + id,
		Component: component,
		Operation: "describe",
		Resource:  id,
	})
}

// Cancel aborts a running import job. Cancelling a finished job is a
// server-side no-op that still succeeds.
func (c *Client) Cancel(ctx context.Context, id string) (*rest.Envelope, error) {
	return c.rest.Do(ctx, rest.Request{
		Method:    http.MethodDelete,
		BaseURL:   c.host,
		Path:      "/bulk/imports/" + id,
		Success:   []int{http.StatusOK, http.StatusAccepted},
		Component: component,
		Operation: "cancel",
		Resource:  id,
	})
}
