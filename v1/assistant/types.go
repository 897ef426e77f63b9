package assistant

// CreateRequest describes a new assistant.
type CreateRequest struct {
	// Name is the unique assistant name
	Name string `json:"name"`

	// Instructions steer the assistant's answers
	Instructions string `json:"instructions,omitempty"`

	// Region places the assistant, e.g. "us" or "eu"
	Region string `json:"region,omitempty"`

	// Metadata is free-form payload stored with the assistant
	Metadata map[string]any `json:"metadata,omitempty"`
}

// UpdateRequest changes an assistant's instructions or metadata.
type UpdateRequest struct {
	Instructions string         `json:"instructions,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
}

// Message is one turn of an assistant conversation.
type Message struct {
	// Role is "user" or "assistant"
	Role string `json:"role"`

	// Content is the message text
	Content string `json:"content"`
}

// ChatRequest asks the assistant to answer over its files.
type ChatRequest struct {
	// Messages is the conversation so far, ending with the user turn
	Messages []Message `json:"messages"`

	// Model overrides the default answering model
	Model string `json:"model,omitempty"`

	// Filter restricts retrieval to files matching this metadata filter
	Filter map[string]any `json:"filter,omitempty"`
}

// ContextRequest retrieves the snippets the assistant would ground an
// answer on, without generating one.
type ContextRequest struct {
	// Query is the retrieval query
	Query string `json:"query"`

	// Filter restricts retrieval to files matching this metadata filter
	Filter map[string]any `json:"filter,omitempty"`

	// TopK limits the number of snippets
	TopK int `json:"top_k,omitempty"`
}
