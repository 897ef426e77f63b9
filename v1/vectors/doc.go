// Package vectors operates on an index's vectors over its per-index data
// plane: upsert, query, fetch, update, delete, id listing and index
// stats.
//
// # Data Plane
//
// Every index has its own host, returned by the control-plane describe
// call. Construct the client from that host; construction fails with
// rest.ErrMissingHost when it is empty:
//
//	host, err := idx.DataPlaneHost(ctx, "docs")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	vec, err := vectors.NewClient(rc, host)
//
// # Querying
//
// Query returns the uniform envelope; ask for the tabular projection to
// get one row per match with metadata widened into metadata_* columns:
//
//	env, err := vec.Query(ctx, vectors.QueryRequest{
//	    Vector:          queryVector,
//	    TopK:            5,
//	    IncludeMetadata: true,
//	}, rest.WithFlattenedContent())
//	if table, ok := env.Table(); ok {
//	    for i := 0; i < table.Len(); i++ {
//	        fmt.Println(table.Row(i)["id"], table.Row(i)["score"])
//	    }
//	}
//
// # Batched Upserts
//
// UpsertBatch chunks large inputs (default 200 vectors per request) and
// runs up to 10 requests in flight, aggregating the upserted count. There
// are no retries; the first failed chunk cancels the rest.
package vectors
