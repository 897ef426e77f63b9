package rest

import "errors"

// Common configuration errors. These are raised before any network call;
// everything server-side travels through the Envelope instead.
var (
	// ErrMissingAPIKey is returned when the client is constructed without
	// an API key.
	ErrMissingAPIKey = errors.New("rest: missing API key")

	// ErrMissingControlPlaneHost is returned when the client is
	// constructed without a control-plane host.
	ErrMissingControlPlaneHost = errors.New("rest: missing control plane host")

	// ErrMissingHost is returned when a data-plane request is attempted
	// without a resolved host. Data-plane hosts come from a prior
	// describe call.
	ErrMissingHost = errors.New("rest: missing data plane host")
)

// IsMissingAPIKeyError checks if the error is a missing-API-key error.
func IsMissingAPIKeyError(err error) bool {
	return errors.Is(err, ErrMissingAPIKey)
}

// IsMissingHostError checks if the error is a missing data-plane host error.
func IsMissingHostError(err error) bool {
	return errors.Is(err, ErrMissingHost)
}
