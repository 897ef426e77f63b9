package index

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

type recordedRequest struct {
	Method string
	Path   string
	Body   []byte
}

func newTestServer(t *testing.T, status int, body string) (*httptest.Server, *[]recordedRequest) {
	t.Helper()
	var recorded []recordedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		recorded = append(recorded, recordedRequest{Method: r.Method, Path: r.URL.Path, Body: b})
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &recorded
}

func newTestClient(t *testing.T, srv *httptest.Server) *Client {
	t.Helper()
	rc, err := rest.NewClient(&rest.Config{APIKey: "k", ControlPlaneHost: srv.URL})
	require.NoError(t, err)
	client, err := NewClient(rc)
	require.NoError(t, err)
	return client
}

func TestCreateUses201(t *testing.T) {
	srv, recorded := newTestServer(t, http.StatusCreated, `{"name":"docs","host":"docs-a1.svc.example.io"}`)
	client := newTestClient(t, srv)

	env, err := client.Create(context.Background(), CreateRequest{
		Name:      "docs",
		Dimension: 1536,
		Metric:    "cosine",
		Spec:      Spec{Serverless: &ServerlessSpec{Cloud: "aws", Region: "us-east-1"}},
	})
	require.NoError(t, err)

	assert.Equal(t, 201, env.StatusCode)
	require.True(t, env.HasContent())

	require.Len(t, *recorded, 1)
	req := (*recorded)[0]
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/indexes", req.Path)

	var sent map[string]any
	require.NoError(t, json.Unmarshal(req.Body, &sent))
	assert.Equal(t, "docs", sent["name"])
	spec := sent["spec"].(map[string]any)
	serverless := spec["serverless"].(map[string]any)
	assert.Equal(t, "aws", serverless["cloud"])
}

func TestDeleteAccepts202WithoutBody(t *testing.T) {
	srv, recorded := newTestServer(t, http.StatusAccepted, "")
	client := newTestClient(t, srv)

	env, err := client.Delete(context.Background(), "docs")
	require.NoError(t, err)

	assert.Equal(t, 202, env.StatusCode)
	assert.False(t, env.HasContent())
	assert.Equal(t, http.MethodDelete, (*recorded)[0].Method)
	assert.Equal(t, "/indexes/docs", (*recorded)[0].Path)
}

func TestListFlattened(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK,
		`{"indexes":[{"name":"docs","dimension":1536,"status":{"ready":true,"state":"Ready"}},{"name":"web","dimension":768}]}`)
	client := newTestClient(t, srv)

	env, err := client.List(context.Background(), rest.WithFlattenedContent())
	require.NoError(t, err)

	table, ok := env.Table()
	require.True(t, ok)
	assert.Equal(t, 2, table.Len())
	assert.Equal(t, []string{"dimension", "name", "status_ready", "status_state"}, table.Columns())
	assert.Equal(t, "docs", table.Row(0)["name"])
	assert.Nil(t, table.Row(1)["status_ready"])
}

func TestDataPlaneHost(t *testing.T) {
	srv, recorded := newTestServer(t, http.StatusOK, `{"name":"docs","host":"docs-a1.svc.example.io"}`)
	client := newTestClient(t, srv)

	host, err := client.DataPlaneHost(context.Background(), "docs")
	require.NoError(t, err)
	assert.Equal(t, "docs-a1.svc.example.io", host)
	assert.Equal(t, "/indexes/docs", (*recorded)[0].Path)
}

func TestDataPlaneHostFailedDescribe(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusNotFound, `{"error":"not found"}`)
	client := newTestClient(t, srv)

	_, err := client.DataPlaneHost(context.Background(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestConfigurePatchesIndex(t *testing.T) {
	srv, recorded := newTestServer(t, http.StatusOK, `{"name":"docs"}`)
	client := newTestClient(t, srv)

	_, err := client.Configure(context.Background(), "docs", ConfigureRequest{
		DeletionProtection: "enabled",
	})
	require.NoError(t, err)

	req := (*recorded)[0]
	assert.Equal(t, http.MethodPatch, req.Method)
	assert.Equal(t, "/indexes/docs", req.Path)
	assert.JSONEq(t, `{"deletion_protection":"enabled"}`, string(req.Body))
}
