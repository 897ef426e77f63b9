package collections

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aleph-Alpha/vectorhub/v1/rest"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	rc, err := rest.NewClient(&rest.Config{APIKey: "k", ControlPlaneHost: srv.URL})
	require.NoError(t, err)
	client, err := NewClient(rc)
	require.NoError(t, err)
	return client
}

func TestCreateSendsSourceIndex(t *testing.T) {
	var body []byte
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"name":"docs-backup","status":"Initializing"}`))
	})

	env, err := client.Create(context.Background(), CreateRequest{Name: "docs-backup", Source: "docs"})
	require.NoError(t, err)
	assert.Equal(t, 201, env.StatusCode)
	assert.True(t, env.HasContent())
	assert.JSONEq(t, `{"name":"docs-backup","source":"docs"}`, string(body))
}

func TestListFlattened(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/collections", r.URL.Path)
		w.Write([]byte(`{"collections":[{"name":"a","size":1024,"status":"Ready"},{"name":"b","status":"Initializing"}]}`))
	})

	env, err := client.List(context.Background(), rest.WithFlattenedContent())
	require.NoError(t, err)

	table, ok := env.Table()
	require.True(t, ok)
	assert.Equal(t, []string{"name", "size", "status"}, table.Columns())
	assert.Equal(t, 2, table.Len())
	assert.Nil(t, table.Row(1)["size"])
}

func TestDeleteTreats202AsSuccess(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusAccepted)
	})

	env, err := client.Delete(context.Background(), "docs-backup")
	require.NoError(t, err)
	assert.Equal(t, 202, env.StatusCode)
	assert.False(t, env.HasContent())
}
