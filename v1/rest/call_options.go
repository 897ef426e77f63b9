package rest

// CallOption adjusts how a single endpoint call handles its result.
// Endpoint packages accept CallOptions on operations whose content has a
// natural tabular projection.
type CallOption func(*CallSettings)

// CallSettings is the resolved form of a CallOption list.
type CallSettings struct {
	// Flatten requests that envelope content be replaced with the
	// tabular projection of the operation's primary list field.
	Flatten bool
}

// ApplyCallOptions resolves a CallOption list into CallSettings.
func ApplyCallOptions(opts ...CallOption) CallSettings {
	var s CallSettings
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}

// WithFlattenedContent replaces the envelope content with the flattened
// table of the operation's primary list field (query matches, reranked
// rows, listed resources). Status code and raw response are unaffected.
func WithFlattenedContent() CallOption {
	return func(s *CallSettings) { s.Flatten = true }
}
