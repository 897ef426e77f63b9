package imports

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// StagingConfig defines the S3-compatible object store used to stage
// import source files.
type StagingConfig struct {
	// Endpoint is the object store endpoint, e.g. "s3.amazonaws.com"
	// or "localhost:9000"
	Endpoint string

	// AccessKeyID and SecretAccessKey authenticate against the store
	AccessKeyID     string
	SecretAccessKey string

	// UseSSL selects https
	UseSSL bool

	// Bucket is the staging bucket; it must be readable by the import
	// integration configured on the server side
	Bucket string

	// Prefix is an optional key prefix under which files are staged
	Prefix string
}

// Validate ensures required fields are present.
func (c *StagingConfig) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("imports: staging config missing endpoint")
	}
	if c.Bucket == "" {
		return fmt.Errorf("imports: staging config missing bucket")
	}
	return nil
}

// Stager uploads local import source files to S3-compatible storage and
// hands back the s3:// URI that StartRequest consumes.
type Stager struct {
	client *minio.Client
	cfg    StagingConfig
}

// NewStager constructs a Stager from StagingConfig.
func NewStager(cfg StagingConfig) (*Stager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("imports: create staging client: %w", err)
	}

	return &Stager{client: client, cfg: cfg}, nil
}

// EnsureBucket creates the staging bucket if it does not exist yet.
func (s *Stager) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.cfg.Bucket)
	if err != nil {
		return fmt.Errorf("imports: check staging bucket: %w", err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("imports: create staging bucket: %w", err)
	}
	return nil
}

// StageFile uploads one local file and returns its s3:// URI.
func (s *Stager) StageFile(ctx context.Context, localPath, objectName string) (string, error) {
	key := s.objectKey(objectName)
	if _, err := s.client.FPutObject(ctx, s.cfg.Bucket, key, localPath, minio.PutObjectOptions{}); err != nil {
		return "", fmt.Errorf("imports: stage %s: %w", localPath, err)
	}
	return s.URI(objectName), nil
}

// StageReader uploads from a reader. Pass size -1 when unknown; the
// client falls back to a multipart upload.
func (s *Stager) StageReader(ctx context.Context, reader io.Reader, objectName string, size int64) (string, error) {
	key := s.objectKey(objectName)
	if _, err := s.client.PutObject(ctx, s.cfg.Bucket, key, reader, size, minio.PutObjectOptions{}); err != nil {
		return "", fmt.Errorf("imports: stage %s: %w", objectName, err)
	}
	return s.URI(objectName), nil
}

// URI returns the s3:// URI of a staged object without uploading
// anything. An empty objectName yields the prefix URI, suitable as a
// whole-directory import source.
func (s *Stager) URI(objectName string) string {
	key := s.objectKey(objectName)
	if key == "" {
		return fmt.Sprintf("s3://%s/", s.cfg.Bucket)
	}
	return fmt.Sprintf("s3://%s/%s", s.cfg.Bucket, key)
}

func (s *Stager) objectKey(objectName string) string {
	prefix := strings.Trim(s.cfg.Prefix, "/")
	name := strings.TrimLeft(objectName, "/")
	if prefix == "" {
		return name
	}
	if name == "" {
		return prefix + "/"
	}
	return path.Join(prefix, name)
}
