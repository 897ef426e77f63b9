package observability

import "time"

// OperationContext carries everything an observer needs to record a single
// client operation: what ran, against which resource, how long it took, and
// how it ended.
type OperationContext struct {
	// Component is the emitting package, e.g. "rest" or "imports".
	Component string

	// Operation is the logical operation name, e.g. "query" or "upsert".
	Operation string

	// Resource is the primary resource acted on (index name, assistant
	// name, import id).
	Resource string

	// SubResource is additional context like a namespace or file name.
	SubResource string

	// Duration is the wall-clock time of the operation.
	Duration time.Duration

	// Error is the transport error, if any. Non-success HTTP statuses are
	// not errors; they arrive via StatusCode.
	Error error

	// StatusCode is the HTTP status of the completed response, 0 when the
	// call never completed.
	StatusCode int

	// Size is the request payload size in bytes, when known.
	Size int64

	// Metadata holds free-form extra fields.
	Metadata map[string]interface{}
}

// Observer receives operation notifications from client packages.
// Implementations must be safe for concurrent use.
type Observer interface {
	ObserveOperation(ctx OperationContext)
}

// NopObserver discards all notifications.
type NopObserver struct{}

func (NopObserver) ObserveOperation(OperationContext) {}

// MultiObserver fans one notification out to several observers.
type MultiObserver []Observer

func (m MultiObserver) ObserveOperation(ctx OperationContext) {
	for _, o := range m {
		if o != nil {
			o.ObserveOperation(ctx)
		}
	}
}
