package vectors

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aleph-Alpha/vectorhub/v1/rest"
)

func newTestClient(t *testing.T, handler http.Handler, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	rc, err := rest.NewClient(&rest.Config{APIKey: "k", ControlPlaneHost: "https://control.example.io"})
	require.NoError(t, err)
	client, err := NewClient(rc, srv.URL, opts...)
	require.NoError(t, err)
	return client
}

func TestNewClientRequiresHost(t *testing.T) {
	rc, err := rest.NewClient(&rest.Config{APIKey: "k", ControlPlaneHost: "https://control.example.io"})
	require.NoError(t, err)

	_, err = NewClient(rc, "")
	assert.True(t, rest.IsMissingHostError(err))
}

func TestUpsertPostsVectors(t *testing.T) {
	var path string
	var body []byte
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		body, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"upsertedCount":1}`))
	}))

	env, err := client.Upsert(context.Background(), UpsertRequest{
		Vectors: []Vector{{
			ID:       "a",
			Values:   []float32{0.1, 0.2},
			Metadata: map[string]any{"genre": "doc"},
		}},
		Namespace: "ns",
	})
	require.NoError(t, err)

	assert.Equal(t, "/vectors/upsert", path)
	assert.Equal(t, 200, env.StatusCode)

	var sent map[string]any
	require.NoError(t, json.Unmarshal(body, &sent))
	assert.Equal(t, "ns", sent["namespace"])
	vecs := sent["vectors"].([]any)
	require.Len(t, vecs, 1)
	assert.Equal(t, "a", vecs[0].(map[string]any)["id"])
}

func TestQueryFlattensMatches(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/query", r.URL.Path)
		w.Write([]byte(`{
			"matches": [
				{"id":"a","score":0.92,"metadata":{"genre":"doc","year":2024}},
				{"id":"b","score":0.61}
			],
			"namespace": "ns",
			"usage": {"readUnits": 5}
		}`))
	}))

	env, err := client.Query(context.Background(), QueryRequest{
		Vector:          []float32{0.1, 0.2},
		TopK:            2,
		IncludeMetadata: true,
	}, rest.WithFlattenedContent())
	require.NoError(t, err)

	table, ok := env.Table()
	require.True(t, ok)
	assert.Equal(t, []string{"id", "score", "metadata_genre", "metadata_year"}, table.Columns())
	assert.Equal(t, "a", table.Row(0)["id"])
	assert.Equal(t, "doc", table.Row(0)["metadata_genre"])
	assert.Nil(t, table.Row(1)["metadata_genre"])
	assert.Nil(t, table.Row(1)["metadata_year"])
}

func TestQueryFailureKeepsStatusAndDropsContent(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"topK required"}`))
	}))

	env, err := client.Query(context.Background(), QueryRequest{}, rest.WithFlattenedContent())
	require.NoError(t, err)
	assert.Equal(t, 400, env.StatusCode)
	assert.Nil(t, env.Content)
}

func TestFetchEncodesIDsAndNamespace(t *testing.T) {
	var query string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		assert.Equal(t, "/vectors/fetch", r.URL.Path)
		w.Write([]byte(`{"vectors":{"a":{"id":"a","values":[0.1]}}}`))
	}))

	env, err := client.Fetch(context.Background(), []string{"a", "b"}, "ns")
	require.NoError(t, err)
	assert.True(t, env.HasContent())
	assert.Equal(t, "ids=a&ids=b&namespace=ns", query)
}

func TestDeleteWithoutBodyIsSuccess(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/vectors/delete", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))

	env, err := client.Delete(context.Background(), DeleteRequest{IDs: []string{"a"}, Namespace: "ns"})
	require.NoError(t, err)
	assert.Equal(t, 200, env.StatusCode)
	assert.False(t, env.HasContent())
}

func TestListBuildsQueryParameters(t *testing.T) {
	var query string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		w.Write([]byte(`{"vectors":[{"id":"doc1#a"},{"id":"doc1#b"}],"pagination":{"next":"tok"}}`))
	}))

	env, err := client.List(context.Background(), ListRequest{
		Prefix:    "doc1#",
		Limit:     50,
		Namespace: "ns",
	}, rest.WithFlattenedContent())
	require.NoError(t, err)

	assert.Contains(t, query, "prefix=doc1%23")
	assert.Contains(t, query, "limit=50")
	assert.Contains(t, query, "namespace=ns")

	table, ok := env.Table()
	require.True(t, ok)
	assert.Equal(t, []string{"id"}, table.Columns())
	assert.Equal(t, 2, table.Len())
}

func TestDescribeIndexStats(t *testing.T) {
	var body []byte
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
		assert.Equal(t, "/describe_index_stats", r.URL.Path)
		w.Write([]byte(`{"totalVectorCount":42,"namespaces":{"ns":{"vectorCount":42}}}`))
	}))

	env, err := client.DescribeIndexStats(context.Background(), map[string]any{"genre": "doc"})
	require.NoError(t, err)
	require.True(t, env.HasContent())
	assert.JSONEq(t, `{"filter":{"genre":"doc"}}`, string(body))
}
