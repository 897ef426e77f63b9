package vectors

// Vector is a single point: an id, its dense values and optional sparse
// values and metadata.
type Vector struct {
	// ID is the unique identifier within the namespace
	ID string `json:"id"`

	// Values is the dense embedding
	Values []float32 `json:"values,omitempty"`

	// SparseValues is the optional sparse representation
	SparseValues *SparseValues `json:"sparseValues,omitempty"`

	// Metadata is free-form payload stored with the vector
	Metadata map[string]any `json:"metadata,omitempty"`
}

// SparseValues is a sparse vector in index/value form.
type SparseValues struct {
	Indices []uint32  `json:"indices"`
	Values  []float32 `json:"values"`
}

// UpsertRequest inserts or overwrites vectors in one namespace.
type UpsertRequest struct {
	Vectors   []Vector `json:"vectors"`
	Namespace string   `json:"namespace,omitempty"`
}

// QueryRequest is a similarity search. Exactly one of Vector or ID should
// be set; ID queries by a stored vector's embedding.
type QueryRequest struct {
	// Namespace scopes the search
	Namespace string `json:"namespace,omitempty"`

	// TopK is the maximum number of matches to return
	TopK int `json:"topK"`

	// Vector is the query embedding
	Vector []float32 `json:"vector,omitempty"`

	// SparseVector is the optional sparse part of a hybrid query
	SparseVector *SparseValues `json:"sparseVector,omitempty"`

	// ID queries by the embedding of a stored vector
	ID string `json:"id,omitempty"`

	// Filter restricts matches by metadata
	Filter map[string]any `json:"filter,omitempty"`

	// IncludeValues returns the stored embeddings with each match
	IncludeValues bool `json:"includeValues,omitempty"`

	// IncludeMetadata returns the stored metadata with each match
	IncludeMetadata bool `json:"includeMetadata,omitempty"`
}

// UpdateRequest changes a stored vector in place.
type UpdateRequest struct {
	ID string `json:"id"`

	// Values replaces the dense embedding when set
	Values []float32 `json:"values,omitempty"`

	// SparseValues replaces the sparse representation when set
	SparseValues *SparseValues `json:"sparseValues,omitempty"`

	// SetMetadata merges into the stored metadata
	SetMetadata map[string]any `json:"setMetadata,omitempty"`

	Namespace string `json:"namespace,omitempty"`
}

// DeleteRequest removes vectors by id, by metadata filter, or wholesale.
type DeleteRequest struct {
	IDs       []string       `json:"ids,omitempty"`
	DeleteAll bool           `json:"deleteAll,omitempty"`
	Namespace string         `json:"namespace,omitempty"`
	Filter    map[string]any `json:"filter,omitempty"`
}

// ListRequest pages through vector ids by prefix. Pagination beyond one
// page is the caller's loop; each call returns at most one page.
type ListRequest struct {
	Prefix          string
	Limit           int
	PaginationToken string
	Namespace       string
}
