package vectors

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Aleph-Alpha/vectorhub/v1/rest"
)

const component = "vectors"

// Client operates on one index's vectors over its data plane. The host is
// per index and must be resolved first via index.Client.DataPlaneHost.
type Client struct {
	rest      *rest.Client
	host      string
	batchSize int
}

// Option customizes a vectors Client.
type Option func(*Client)

// WithBatchSize overrides the chunk size used by UpsertBatch.
// Default: 200.
func WithBatchSize(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.batchSize = n
		}
	}
}

// NewClient constructs a data-plane client for one index.
func NewClient(rc *rest.Client, host string, opts ...Option) (*Client, error) {
	if rc == nil {
		return nil, fmt.Errorf("vectors: nil rest client")
	}
	if host == "" {
		return nil, rest.ErrMissingHost
	}

	c := &Client{
		rest:      rc,
		host:      host,
		batchSize: defaultBatchSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Host returns the resolved data-plane host this client talks to.
func (c *Client) Host() string {
	return c.host
}

// Upsert inserts or overwrites vectors.
func (c *Client) Upsert(ctx context.Context, req UpsertRequest) (*rest.Envelope, error) {
	return c.rest.Do(ctx, rest.Request{
		Method:    http.MethodPost,
		BaseURL:   c.host,
		Path:      "/vectors/upsert",
		Body:      req,
		Component: component,
		Operation: "upsert",
		Resource:  c.host,
	})
}

// Query runs a similarity search. With rest.WithFlattenedContent the
// envelope content becomes one row per match, metadata widened into
// metadata_* columns.
func (c *Client) Query(ctx context.Context, req QueryRequest, opts ...rest.CallOption) (*rest.Envelope, error) {
	env, err := c.rest.Do(ctx, rest.Request{
		Method:    http.MethodPost,
		BaseURL:   c.host,
		Path:      "/query",
		Body:      req,
		Component: component,
		Operation: "query",
		Resource:  c.host,
	})
	if err != nil {
		return nil, err
	}
	if rest.ApplyCallOptions(opts...).Flatten {
		if err := env.Flatten("matches"); err != nil {
			return nil, err
		}
	}
	return env, nil
}

// Fetch retrieves vectors by id.
func (c *Client) Fetch(ctx context.Context, ids []string, namespace string) (*rest.Envelope, error) {
	query := url.Values{"ids": ids}
	if namespace != "" {
		query.Set("namespace", namespace)
	}
	return c.rest.Do(ctx, rest.Request{
		Method:    http.MethodGet,
		BaseURL:   c.host,
		Path:      "/vectors/fetch",
		Query:     query,
		Component: component,
		Operation: "fetch",
		Resource:  c.host,
	})
}

// Update changes one stored vector in place.
func (c *Client) Update(ctx context.Context, req UpdateRequest) (*rest.Envelope, error) {
	return c.rest.Do(ctx, rest.Request{
		Method:    http.MethodPost,
		BaseURL:   c.host,
		Path:      "/vectors/update",
		Body:      req,
		Component: component,
		Operation: "update",
		Resource:  c.host,
	})
}

// Delete removes vectors. A delete response typically has no body; the
// envelope reports success through its status code alone.
func (c *Client) Delete(ctx context.Context, req DeleteRequest) (*rest.Envelope, error) {
	return c.rest.Do(ctx, rest.Request{
		Method:    http.MethodPost,
		BaseURL:   c.host,
		Path:      "/vectors/delete",
		Body:      req,
		Component: component,
		Operation: "delete",
		Resource:  c.host,
	})
}

// List returns one page of vector ids matching a prefix. With
// rest.WithFlattenedContent the envelope content becomes one row per id.
func (c *Client) List(ctx context.Context, req ListRequest, opts ...rest.CallOption) (*rest.Envelope, error) {
	query := url.Values{}
	if req.Prefix != "" {
		query.Set("prefix", req.Prefix)
	}
	if req.Limit > 0 {
		query.Set("limit", strconv.Itoa(req.Limit))
	}
	if req.PaginationToken != "" {
		query.Set("paginationToken", req.PaginationToken)
	}
	if req.Namespace != "" {
		query.Set("namespace", req.Namespace)
	}

	env, err := c.rest.Do(ctx, rest.Request{
		Method:    http.MethodGet,
		BaseURL:   c.host,
		Path:      "/vectors/list",
		Query:     query,
		Component: component,
		Operation: "list",
		Resource:  c.host,
	})
	if err != nil {
		return nil, err
	}
	if rest.ApplyCallOptions(opts...).Flatten {
		if err := env.Flatten("vectors"); err != nil {
			return nil, err
		}
	}
	return env, nil
}

// DescribeIndexStats returns vector counts per namespace, optionally
// restricted by a metadata filter.
func (c *Client) DescribeIndexStats(ctx context.Context, filter map[string]any) (*rest.Envelope, error) {
	body := map[string]any{}
	if len(filter) > 0 {
		body["filter"] = filter
	}
	return c.rest.Do(ctx, rest.Request{
		Method:    http.MethodPost,
		BaseURL:   c.host,
		Path:      "/describe_index_stats",
		Body:      body,
		Component: component,
		Operation: "describe_index_stats",
		Resource:  c.host,
	})
}
