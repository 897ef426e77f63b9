package rest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Aleph-Alpha/vectorhub/v1/tabular"
)

// Response is a completed HTTP exchange as supplied by the transport: the
// numeric status code, the header map and the fully drained body. No
// network I/O happens on a Response after construction.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Envelope is the uniform result of every API operation.
//
// Content holds the parsed JSON body as a generic tree (map[string]any,
// []any, scalars) and is nil whenever the status code falls outside the
// operation's success set, or the success body was empty or not JSON. Raw
// keeps the completed response for callers that need to inspect error
// bodies or headers; it is never mutated after creation.
type Envelope struct {
	Raw        *Response
	Content    any
	StatusCode int
}

// Normalize converts a completed response into an Envelope.
//
// The success set is a parameter of the call site because endpoints differ
// (200 for most operations, 201 for creation, 202 for some deletions); an
// empty success set means 200 only. On a success status the body is parsed
// leniently: an empty or non-JSON body yields nil Content without error,
// since delete-style operations legitimately return nothing. On any other
// status Content is nil unconditionally.
//
// Normalize never fails; a nil response produces a zero-status envelope.
func Normalize(resp *Response, success ...int) *Envelope {
	if resp == nil {
		return &Envelope{}
	}

	env := &Envelope{Raw: resp, StatusCode: resp.StatusCode}
	if !statusIn(resp.StatusCode, success) {
		return env
	}

	body := bytes.TrimSpace(resp.Body)
	if len(body) == 0 {
		return env
	}

	var content any
	if err := json.Unmarshal(body, &content); err != nil {
		return env
	}
	env.Content = content
	return env
}

func statusIn(code int, success []int) bool {
	if len(success) == 0 {
		return code == http.StatusOK
	}
	for _, s := range success {
		if code == s {
			return true
		}
	}
	return false
}

// HasContent reports whether the call succeeded with a parseable body.
func (e *Envelope) HasContent() bool {
	return e.Content != nil
}

// Flatten replaces Content with the tabular projection of the list stored
// under field. This is the one permitted envelope transform; StatusCode and
// Raw are untouched. Flattening an envelope without content is a no-op, so
// callers can request it unconditionally and still read the status off a
// failed call.
func (e *Envelope) Flatten(field string) error {
	if e.Content == nil {
		return nil
	}

	record, ok := e.Content.(map[string]any)
	if !ok {
		return fmt.Errorf("rest: flatten %q: content is %T, expected a record: %w", field, e.Content, tabular.ErrInvalidArgument)
	}
	list, ok := record[field]
	if !ok {
		return fmt.Errorf("rest: flatten %q: field not present: %w", field, tabular.ErrInvalidArgument)
	}

	table, err := tabular.FlattenValue(list)
	if err != nil {
		return fmt.Errorf("rest: flatten %q: %w", field, err)
	}
	e.Content = table
	return nil
}

// Table returns the flattened content, if Flatten has been applied.
func (e *Envelope) Table() (*tabular.Table, bool) {
	table, ok := e.Content.(*tabular.Table)
	return table, ok
}
