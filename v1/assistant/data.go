package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/Aleph-Alpha/vectorhub/v1/rest"
)

// DataClient operates on one assistant's contents — files, chat and
// context retrieval — over the assistant's data plane.
type DataClient struct {
	rest *rest.Client
	host string
	name string
}

// NewDataClient constructs a data-plane client for one assistant. The
// host comes from Client.DataPlaneHost.
func NewDataClient(rc *rest.Client, host, name string) (*DataClient, error) {
	if rc == nil {
		return nil, fmt.Errorf("assistant: nil rest client")
	}
	if host == "" {
		return nil, rest.ErrMissingHost
	}
	if name == "" {
		return nil, fmt.Errorf("assistant: name is required")
	}
	return &DataClient{rest: rc, host: host, name: name}, nil
}

// UploadFile uploads a local file into the assistant's knowledge base as
// a multipart request. Optional metadata travels as a JSON-encoded query
// parameter, matching the upload endpoint's contract.
func (c *DataClient) UploadFile(ctx context.Context, localPath string, metadata map[string]any) (*rest.Envelope, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return nil, fmt.Errorf("assistant: open %s: %w", localPath, err)
	}
	defer f.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filepath.Base(localPath))
	if err != nil {
		return nil, fmt.Errorf("assistant: build multipart body: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, fmt.Errorf("assistant: read %s: %w", localPath, err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("assistant: finish multipart body: %w", err)
	}

	query := url.Values{}
	if len(metadata) > 0 {
		encoded, err := json.Marshal(metadata)
		if err != nil {
			return nil, fmt.Errorf("assistant: encode file metadata: %w", err)
		}
		query.Set("metadata", string(encoded))
	}

	return c.rest.Do(ctx, rest.Request{
		Method:      http.MethodPost,
		BaseURL:     c.host,
		Path:        "/assistant/files/" + c.name,
		Query:       query,
		RawBody:     &buf,
		ContentType: writer.FormDataContentType(),
		Component:   component,
		Operation:   "upload_file",
		Resource:    c.name,
	})
}

// ListFiles returns the assistant's files. With rest.WithFlattenedContent
// the envelope content becomes one row per file.
func (c *DataClient) ListFiles(ctx context.Context, opts ...rest.CallOption) (*rest.Envelope, error) {
	env, err := c.rest.Do(ctx, rest.Request{
		Method:    http.MethodGet,
		BaseURL:   c.host,
		Path:      "/assistant/files/" + c.name,
		Component: component,
		Operation: "list_files",
		Resource:  c.name,
	})
	if err != nil {
		return nil, err
	}
	if rest.ApplyCallOptions(opts...).Flatten {
		if err := env.Flatten("files"); err != nil {
			return nil, err
		}
	}
	return env, nil
}

// DescribeFile returns one file's processing status and metadata.
func (c *DataClient) DescribeFile(ctx context.Context, fileID string) (*rest.Envelope, error) {
	return c.rest.Do(ctx, rest.Request{
		Method:    http.MethodGet,
		BaseURL:   c.host,
		Path:      "/assistant/files/" + c.name + "/" + fileID,
		Component: component,
		Operation: "describe_file",
		Resource:  c.name,
	})
}

// DeleteFile removes one file from the assistant.
func (c *DataClient) DeleteFile(ctx context.Context, fileID string) (*rest.Envelope, error) {
	return c.rest.Do(ctx, rest.Request{
		Method:    http.MethodDelete,
		BaseURL:   c.host,
		Path:      "/assistant/files/" + c.name + "/" + fileID,
		Success:   []int{http.StatusOK, http.StatusAccepted},
		Component: component,
		Operation: "delete_file",
		Resource:  c.name,
	})
}

// Chat asks the assistant to answer the conversation over its files.
func (c *DataClient) Chat(ctx context.Context, req ChatRequest) (*rest.Envelope, error) {
	if len(req.Messages) == 0 {
		return nil, fmt.Errorf("assistant: no messages provided")
	}
	return c.rest.Do(ctx, rest.Request{
		Method:    http.MethodPost,
		BaseURL:   c.host,
		Path:      "/assistant/chat/" + c.name,
		Body:      req,
		Component: component,
		Operation: "chat",
		Resource:  c.name,
	})
}

// Context retrieves the snippets the assistant would ground an answer
// on. With rest.WithFlattenedContent the envelope content becomes one row
// per snippet.
func (c *DataClient) Context(ctx context.Context, req ContextRequest, opts ...rest.CallOption) (*rest.Envelope, error) {
	if req.Query == "" {
		return nil, fmt.Errorf("assistant: query is required")
	}

	env, err := c.rest.Do(ctx, rest.Request{
		Method:    http.MethodPost,
		BaseURL:   c.host,
		Path:      "/assistant/chat/" + c.name + "/context",
		Body:      req,
		Component: component,
		Operation: "context",
		Resource:  c.name,
	})
	if err != nil {
		return nil, err
	}
	if rest.ApplyCallOptions(opts...).Flatten {
		if err := env.Flatten("snippets"); err != nil {
			return nil, err
		}
	}
	return env, nil
}
