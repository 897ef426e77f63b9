package inference

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Aleph-Alpha/vectorhub/v1/rest"
)

const component = "inference"

// Client calls the hosted inference models on the control plane: batch
// embedding and reranking.
type Client struct {
	rest *rest.Client
}

// NewClient constructs an inference client on top of the shared
// transport.
func NewClient(rc *rest.Client) (*Client, error) {
	if rc == nil {
		return nil, fmt.Errorf("inference: nil rest client")
	}
	return &Client{rest: rc}, nil
}

// Embed computes embeddings for a batch of texts.
func (c *Client) Embed(ctx context.Context, req EmbedRequest) (*rest.Envelope, error) {
	if len(req.Inputs) == 0 {
		return nil, fmt.Errorf("inference: no inputs provided")
	}
	if req.Model == "" {
		return nil, fmt.Errorf("inference: model is required")
	}

	inputs := make([]embedInput, len(req.Inputs))
	for i, text := range req.Inputs {
		inputs[i] = embedInput{Text: text}
	}

	return c.rest.Do(ctx, rest.Request{
		Method: http.MethodPost,
		Path:   "/embed",
		Body: embedPayload{
			Model:      req.Model,
			Inputs:     inputs,
			Parameters: req.Parameters,
		},
		Component: component,
		Operation: "embed",
		Resource:  req.Model,
	})
}

// Rerank reorders candidate documents by relevance to a query. With
// rest.WithFlattenedContent the envelope content becomes one row per
// reranked document, the document record widened into document_* columns.
func (c *Client) Rerank(ctx context.Context, req RerankRequest, opts ...rest.CallOption) (*rest.Envelope, error) {
	if req.Model == "" {
		return nil, fmt.Errorf("inference: model is required")
	}
	if req.Query == "" {
		return nil, fmt.Errorf("inference: query is required")
	}
	if len(req.Documents) == 0 {
		return nil, fmt.Errorf("inference: no documents provided")
	}

	env, err := c.rest.Do(ctx, rest.Request{
		Method:    http.MethodPost,
		Path:      "/rerank",
		Body:      req,
		Component: component,
		Operation: "rerank",
		Resource:  req.Model,
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
