// Package rest provides the transport core shared by every endpoint
// package: a generic request executor and the uniform result envelope.
//
// # Envelope
//
// Every API operation returns an [Envelope] with three fields: Raw (the
// completed HTTP response — status, headers, body bytes), Content (the
// parsed JSON body as a generic tree) and StatusCode. Content is nil
// whenever the status code falls outside the operation's success set, and
// also when a success body is empty or not JSON — an empty delete response
// is a valid outcome, not an error. Success codes vary per endpoint (200
// for most operations, 201 for creation, 202 for some deletions) and are
// supplied by the call site, not hard-coded in [Normalize].
//
// Transport failures never fold into the envelope: [Client.Do] returns
// them as ordinary Go errors and the envelope only exists for completed
// responses. There are no retries anywhere in this package; callers decide
// from the returned status code.
//
// # Executor
//
// [Client.Do] implements the one request pipeline every endpoint shares:
// build URL → attach Api-Key header → serialize JSON body → one HTTP call
// → normalize. Endpoint packages only declare method, path, body and
// success set.
//
//	cfg := &rest.Config{
//	    APIKey:           "...",
//	    ControlPlaneHost: "https://api.example.io",
//	}
//	client, err := rest.NewClient(cfg,
//	    rest.WithLogger(log),
//	    rest.WithObserver(obs),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	env, err := client.Do(ctx, rest.Request{
//	    Method:    http.MethodGet,
//	    Path:      "/indexes",
//	    Component: "index",
//	    Operation: "list",
//	})
//
// # Two Planes
//
// Management operations go to the fixed control-plane host from Config.
// Operations on a resource's contents go to that resource's own data-plane
// host, returned by a prior describe call and passed via Request.BaseURL.
// Data-plane wrappers fail with ErrMissingHost before any network call
// when no host has been resolved.
//
// # Configuration
//
// Config is explicit and copied at construction; NewConfigFromEnv loads it
// from VECTORHUB_* environment variables. A missing API key fails fast at
// construction with ErrMissingAPIKey.
//
// # Observability
//
// Do opens one OpenTelemetry client span per request and notifies the
// optional [observability.Observer] with component, operation, duration,
// payload size and status. Logging goes through a caller-supplied
// *zap.Logger at debug level; the default is a no-op logger.
package rest
