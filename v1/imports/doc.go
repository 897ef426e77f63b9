// Package imports drives asynchronous bulk imports from object storage
// into an index, over the index's data plane.
//
// An import is started from an s3:// URI, runs server-side, and is
// observed through describe/list until it reaches a terminal state:
//
//	imp, _ := imports.NewClient(rc, host)
//	env, err := imp.Start(ctx, imports.StartRequest{
//	    URI:       "s3://bucket/exports/docs/",
//	    ErrorMode: &imports.ErrorMode{OnError: "continue"},
//	})
//
// There is no client-side polling loop or retry; each call is one HTTP
// request and the caller owns the waiting strategy.
//
// # Staging
//
// Stager covers the step before Start: uploading local source files to an
// S3-compatible bucket and producing the URI the import consumes.
//
//	stg, _ := imports.NewStager(imports.StagingConfig{
//	    Endpoint: "s3.amazonaws.com",
//	    Bucket:   "my-staging",
//	    Prefix:   "exports/docs",
//	})
//	uri, err := stg.StageFile(ctx, "/tmp/batch-000.parquet", "batch-000.parquet")
package imports
