// Package inference calls the hosted embedding and reranking models on
// the control plane.
//
// Embed turns a batch of texts into embeddings; Rerank reorders candidate
// documents by relevance to a query. Rerank responses flatten well:
//
//	env, err := inf.Rerank(ctx, inference.RerankRequest{
//	    Model: "rerank-v2",
//	    Query: "vector databases",
//	    Documents: []map[string]any{
//	        {"id": "a", "text": "..."},
//	        {"id": "b", "text": "..."},
//	    },
//	}, rest.WithFlattenedContent())
//
// yields one row per document with index, score and document_* columns.
package inference
