package rest

import (
	"time"

	"github.com/Aleph-Alpha/vectorhub/v1/observability"
)

// observeOperation notifies the observer about a completed operation if one
// is configured.
//
// Notes:
//   - resource: the index/assistant/import the operation acted on
//   - size: request payload bytes, 0 for body-less operations
func (c *Client) observeOperation(component, operation, resource string, duration time.Duration, err error, size int64, status int) {
	if c == nil || c.observer == nil {
		return
	}

	c.observer.ObserveOperation(observability.OperationContext{
		Component:  component,
		Operation:  operation,
		Resource:   resource,
		Duration:   duration,
		Error:      err,
		StatusCode: status,
		Size:       size,
	})
}
