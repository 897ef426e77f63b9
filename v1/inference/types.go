package inference

// EmbedRequest computes embeddings for a batch of texts with a hosted
// model.
type EmbedRequest struct {
	// Model is the hosted embedding model name
	Model string `json:"model"`

	// Inputs are the texts to embed
	Inputs []string `json:"-"`

	// Parameters are model-specific options, e.g. input_type or truncate
	Parameters map[string]any `json:"parameters,omitempty"`
}

// embedPayload is the wire form: inputs go out as {"text": ...} records.
type embedPayload struct {
	Model      string         `json:"model"`
	Inputs     []embedInput   `json:"inputs"`
	Parameters map[string]any `json:"parameters,omitempty"`
}

type embedInput struct {
	Text string `json:"text"`
}

// RerankRequest reorders documents by relevance to a query using a hosted
// reranking model.
type RerankRequest struct {
	// Model is the hosted reranking model name
	Model string `json:"model"`

	// Query is the search query
	Query string `json:"query"`

	// Documents are the candidate records; RankFields selects which
	// field the model scores (default: "text")
	Documents []map[string]any `json:"documents"`

	// TopN limits how many reranked rows come back
	TopN int `json:"top_n,omitempty"`

	// RankFields names the document fields to rank on
	RankFields []string `json:"rank_fields,omitempty"`

	// ReturnDocuments includes the full documents in the response
	ReturnDocuments *bool `json:"return_documents,omitempty"`

	// Parameters are model-specific options
	Parameters map[string]any `json:"parameters,omitempty"`
}
