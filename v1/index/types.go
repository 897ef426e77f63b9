package index

// CreateRequest describes a new index.
type CreateRequest struct {
	// Name is the unique index name
	Name string `json:"name"`

	// Dimension is the size of vectors stored in the index
	Dimension int `json:"dimension"`

	// Metric is the similarity metric ("cosine", "dotproduct", "euclidean").
	// The server defaults to cosine when omitted.
	Metric string `json:"metric,omitempty"`

	// Spec selects the deployment model; exactly one of Serverless or Pod
	// must be set.
	Spec Spec `json:"spec"`

	// DeletionProtection is "enabled" or "disabled"
	DeletionProtection string `json:"deletion_protection,omitempty"`

	// Tags are free-form key/value labels attached to the index
	Tags map[string]string `json:"tags,omitempty"`
}

// Spec selects between the serverless and pod-based deployment models.
type Spec struct {
	Serverless *ServerlessSpec `json:"serverless,omitempty"`
	Pod        *PodSpec        `json:"pod,omitempty"`
}

// ServerlessSpec places the index on managed serverless capacity.
type ServerlessSpec struct {
	// Cloud is the provider, e.g. "aws"
	Cloud string `json:"cloud"`

	// Region is the provider region, e.g. "us-east-1"
	Region string `json:"region"`
}

// PodSpec places the index on dedicated pods.
type PodSpec struct {
	// Environment is the pod environment, e.g. "us-east1-gcp"
	Environment string `json:"environment"`

	// PodType is the pod size, e.g. "p1.x1"
	PodType string `json:"pod_type"`

	// Pods is the total pod count
	Pods int `json:"pods,omitempty"`

	// Replicas is the number of replicas
	Replicas int `json:"replicas,omitempty"`

	// Shards is the number of shards
	Shards int `json:"shards,omitempty"`

	// SourceCollection seeds the index from an existing collection
	SourceCollection string `json:"source_collection,omitempty"`

	// MetadataConfig restricts which metadata fields are indexed
	MetadataConfig *MetadataConfig `json:"metadata_config,omitempty"`
}

// MetadataConfig restricts metadata indexing to the named fields.
type MetadataConfig struct {
	Indexed []string `json:"indexed"`
}

// CreateForModelRequest creates an index wired to a hosted embedding
// model, so records can be upserted as raw text.
type CreateForModelRequest struct {
	// Name is the unique index name
	Name string `json:"name"`

	// Cloud and Region place the serverless index
	Cloud  string `json:"cloud"`
	Region string `json:"region"`

	// Embed configures the hosted model
	Embed ModelEmbed `json:"embed"`

	// DeletionProtection is "enabled" or "disabled"
	DeletionProtection string `json:"deletion_protection,omitempty"`

	// Tags are free-form key/value labels attached to the index
	Tags map[string]string `json:"tags,omitempty"`
}

// ModelEmbed binds a hosted embedding model to an index.
type ModelEmbed struct {
	// Model is the hosted model name
	Model string `json:"model"`

	// FieldMap maps record fields to model inputs, e.g. {"text": "chunk_text"}
	FieldMap map[string]string `json:"field_map"`

	// Metric overrides the model's default similarity metric
	Metric string `json:"metric,omitempty"`
}

// ConfigureRequest changes mutable settings of an existing index.
type ConfigureRequest struct {
	// Spec carries pod scaling changes (replicas, pod type)
	Spec *Spec `json:"spec,omitempty"`

	// DeletionProtection is "enabled" or "disabled"
	DeletionProtection string `json:"deletion_protection,omitempty"`

	// Tags replace the index tags; a nil value removes a tag
	Tags map[string]string `json:"tags,omitempty"`
}
