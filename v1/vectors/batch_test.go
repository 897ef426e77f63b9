package vectors

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertBatchChunksAndAggregates(t *testing.T) {
	var (
		mu         sync.Mutex
		chunkSizes []int
	)
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var req UpsertRequest
		require.NoError(t, json.Unmarshal(body, &req))

		mu.Lock()
		chunkSizes = append(chunkSizes, len(req.Vectors))
		mu.Unlock()

		fmt.Fprintf(w, `{"upsertedCount":%d}`, len(req.Vectors))
	}), WithBatchSize(10))

	vecs := make([]Vector, 25)
	for i := range vecs {
		vecs[i] = Vector{ID: fmt.Sprintf("v%d", i), Values: []float32{float32(i)}}
	}

	total, err := client.UpsertBatch(context.Background(), vecs, "ns")
	require.NoError(t, err)
	assert.Equal(t, 25, total)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, chunkSizes, 3)
	sum := 0
	for _, n := range chunkSizes {
		sum += n
		assert.LessOrEqual(t, n, 10)
	}
	assert.Equal(t, 25, sum)
}

func TestUpsertBatchEmptyInput(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for empty input")
	}))

	total, err := client.UpsertBatch(context.Background(), nil, "")
	require.NoError(t, err)
	assert.Equal(t, 0, total)
}

func TestUpsertBatchFailedChunkSurfacesStatus(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":"rate limited"}`))
			return
		}
		w.Write([]byte(`{"upsertedCount":5}`))
	}), WithBatchSize(5))

	vecs := make([]Vector, 10)
	for i := range vecs {
		vecs[i] = Vector{ID: fmt.Sprintf("v%d", i)}
	}

	_, err := client.UpsertBatch(context.Background(), vecs, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}
