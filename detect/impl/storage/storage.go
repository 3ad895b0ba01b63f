package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
)

const uriScheme = "gs://"

type Client interface {
	ReadBytes(ctx context.Context, bucketName string, objectName string) ([]byte, error)
}

type gcsClient struct {
	storageClient *storage.Client
}

func New(storageClient *storage.Client) Client {
	return &gcsClient{storageClient: storageClient}
}

func (s *gcsClient) ReadBytes(ctx context.Context, bucketName string, objectName string) ([]byte, error) {
	reader, err := s.storageClient.Bucket(bucketName).Object(objectName).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open GCS object: %w", err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read GCS object: %w", err)
	}

	return data, nil
}

// IsURI reports whether path names a Cloud Storage object. E.g., gs://bucket/images/cat.jpg
func IsURI(path string) bool {
	return strings.HasPrefix(path, uriScheme)
}

// ParseURI splits gs://bucket/object into its bucket and object names.
func ParseURI(uri string) (string, string, error) {
	if !IsURI(uri) {
		return "", "", fmt.Errorf("not a Cloud Storage URI: %q", uri)
	}
	bucket, object, ok := strings.Cut(strings.TrimPrefix(uri, uriScheme), "/")
	if !ok || bucket == "" || object == "" {
		return "", "", fmt.Errorf("malformed Cloud Storage URI %q, expected gs://<bucket>/<object>", uri)
	}
	return bucket, object, nil
}
