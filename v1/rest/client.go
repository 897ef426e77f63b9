package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/Aleph-Alpha/vectorhub/v1/observability"
)

const tracerName = "github.com/Aleph-Alpha/vectorhub/v1/rest"

// Doer executes a single HTTP request. *http.Client satisfies it; tests
// substitute fakes.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is the generic request executor shared by all endpoint packages.
// Every API operation funnels through Do: build URL, attach the Api-Key
// header, serialize the JSON body, issue one HTTP call, normalize the
// completed response into an Envelope.
//
// Client holds no mutable state after construction and is safe for
// concurrent use.
type Client struct {
	cfg      Config
	http     Doer
	logger   *zap.Logger
	observer observability.Observer
	tracer   trace.Tracer
}

// Option customizes a Client at construction time.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP transport.
func WithHTTPClient(d Doer) Option {
	return func(c *Client) { c.http = d }
}

// WithLogger attaches a structured logger. Default: zap.NewNop().
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithObserver attaches an observability hook notified once per operation.
func WithObserver(o observability.Observer) Option {
	return func(c *Client) { c.observer = o }
}

// NewClient constructs a Client from Config. It validates the config and
// fails fast on a missing API key or control-plane host, before any
// network call.
func NewClient(cfg *Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("rest: nil config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("rest: invalid config: %w", err)
	}

	timeout := cfg.HTTPTimeoutS
	if timeout <= 0 {
		timeout = DefaultHTTPTimeoutS
	}

	c := &Client{
		cfg:    *cfg,
		http:   &http.Client{Timeout: time.Duration(timeout) * time.Second},
		logger: zap.NewNop(),
		tracer: otel.Tracer(tracerName),
	}
	c.cfg.ControlPlaneHost = strings.TrimRight(c.cfg.ControlPlaneHost, "/")

	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Request describes one API operation for Do.
type Request struct {
	// Method is the HTTP method.
	Method string

	// BaseURL overrides the control-plane host for data-plane operations.
	// Empty means control plane.
	BaseURL string

	// Path is the relative endpoint path, e.g. "/indexes/docs".
	Path string

	// Query holds optional URL query parameters.
	Query url.Values

	// Body is the JSON request body, nil for body-less operations.
	Body any

	// RawBody bypasses JSON serialization for non-JSON payloads such as
	// multipart uploads. ContentType must be set alongside it and Body
	// must be nil.
	RawBody     io.Reader
	ContentType string

	// Success is the set of status codes treated as success for this
	// operation. Empty means 200 only.
	Success []int

	// Component and Operation name the call site for logging, tracing
	// and metrics, e.g. "vectors"/"query".
	Component string
	Operation string

	// Resource is the primary resource acted on (index name, assistant
	// name), reported to the observer.
	Resource string
}

// Do executes one API operation and normalizes the completed response.
//
// Transport failures (connection errors, timeouts, context cancellation)
// return a non-nil error and no envelope; they never fold into envelope
// fields. Non-success statuses and empty bodies are not errors — they
// surface through the returned Envelope. There are no retries; the caller
// decides from the status code.
func (c *Client) Do(ctx context.Context, r Request) (*Envelope, error) {
	base := r.BaseURL
	if base == "" {
		base = c.cfg.ControlPlaneHost
	}
	u, err := BuildURL(base, r.Path, r.Query)
	if err != nil {
		return nil, err
	}

	var payload []byte
	var bodyReader io.Reader
	contentType := ""
	switch {
	case r.Body != nil:
		payload, err = json.Marshal(r.Body)
		if err != nil {
			return nil, fmt.Errorf("rest: encode request body: %w", err)
		}
		bodyReader = bytes.NewReader(payload)
		contentType = "application/json"
	case r.RawBody != nil:
		bodyReader = r.RawBody
		contentType = r.ContentType
	}

	component, operation := r.Component, r.Operation
	if component == "" {
		component = "rest"
	}
	if operation == "" {
		operation = strings.ToLower(r.Method)
	}

	ctx, span := c.tracer.Start(ctx, component+"."+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", r.Method),
			attribute.String("url.full", u),
		),
	)
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, r.Method, u, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("rest: build request: %w", err)
	}
	req.Header.Set("Api-Key", c.cfg.APIKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent())
	req.Header.Set("X-Request-Id", uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	start := time.Now()
	httpResp, err := c.http.Do(req)
	duration := time.Since(start)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport failure")
		c.observeOperation(component, operation, r.Resource, duration, err, int64(len(payload)), 0)
		c.logger.Debug("request failed",
			zap.String("method", r.Method),
			zap.String("url", u),
			zap.Error(err),
		)
		return nil, fmt.Errorf("rest: %s %s: %w", r.Method, u, err)
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "read body")
		c.observeOperation(component, operation, r.Resource, duration, err, int64(len(payload)), httpResp.StatusCode)
		return nil, fmt.Errorf("rest: read response body: %w", err)
	}

	env := Normalize(&Response{
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header.Clone(),
		Body:       body,
	}, r.Success...)

	span.SetAttributes(attribute.Int("http.response.status_code", env.StatusCode))
	c.observeOperation(component, operation, r.Resource, duration, nil, int64(len(payload)), env.StatusCode)
	c.logger.Debug("request completed",
		zap.String("method", r.Method),
		zap.String("url", u),
		zap.Int("status", env.StatusCode),
		zap.Duration("duration", duration),
	)

	return env, nil
}

// Close releases idle transport connections. It exists for lifecycle
// symmetry with the Fx module.
func (c *Client) Close() error {
	if hc, ok := c.http.(*http.Client); ok {
		hc.CloseIdleConnections()
	}
	return nil
}

func (c *Client) userAgent() string {
	ua := "vectorhub-go"
	if c.cfg.SourceTag != "" {
		ua += "; source_tag=" + c.cfg.SourceTag
	}
	return ua
}

// BuildURL joins a base authority with a relative path and optional query
// parameters. Data-plane hosts are returned by describe calls without a
// scheme; https is assumed for them.
func BuildURL(base, path string, query url.Values) (string, error) {
	if base == "" {
		return "", ErrMissingHost
	}
	if !strings.Contains(base, "://") {
		base = "https://" + base
	}

	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("rest: parse base url %q: %w", base, err)
	}
	u.Path = strings.TrimRight(u.Path, "/") + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String(), nil
}
