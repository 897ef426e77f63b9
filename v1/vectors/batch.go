package vectors

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

const (
	defaultBatchSize     = 200 // default chunk size for batch upserts
	maxConcurrentUpserts = 10  // cap on in-flight upsert requests
)

// UpsertBatch splits a large vector set into chunks and upserts them with
// bounded concurrency, returning the aggregated upserted count. Chunk size
// comes from WithBatchSize (default 200).
//
// The first failing chunk cancels the remaining ones. A chunk fails either
// on a transport error or on a non-success status; per the no-retry
// policy, nothing is re-sent — the caller decides how to proceed.
func (c *Client) UpsertBatch(ctx context.Context, vecs []Vector, namespace string) (int, error) {
	if len(vecs) == 0 {
		return 0, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentUpserts)

	var total atomic.Int64
	for start := 0; start < len(vecs); start += c.batchSize {
		end := start + c.batchSize
		if end > len(vecs) {
			end = len(vecs)
		}
		chunk := vecs[start:end]

		g.Go(func() error {
			env, err := c.Upsert(ctx, UpsertRequest{Vectors: chunk, Namespace: namespace})
			if err != nil {
				return err
			}
			if env.StatusCode != 200 {
				return fmt.Errorf("vectors: upsert chunk of %d failed with status %d", len(chunk), env.StatusCode)
			}

			if record, ok := env.Content.(map[string]any); ok {
				if n, ok := record["upsertedCount"].(float64); ok {
					total.Add(int64(n))
					return nil
				}
			}
			// Body-less success still counts the chunk.
			total.Add(int64(len(chunk)))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}
	return int(total.Load()), nil
}
