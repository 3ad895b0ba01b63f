package impl

import (
	"context"
	"errors"
	"testing"
)

type fakeStorageClient struct {
	bucket string
	object string
	data   []byte
	err    error
}

func (f *fakeStorageClient) ReadBytes(ctx context.Context, bucketName string, objectName string) ([]byte, error) {
	f.bucket = bucketName
	f.object = objectName
	return f.data, f.err
}

func TestLoadImageFromStorage(t *testing.T) {
	store := &fakeStorageClient{data: []byte("gcs-bytes")}
	detector := New(nil, WithStorage(store))

	image, err := detector.loadImage(context.Background(), "gs://books/covers/isbn.jpg")
	if err != nil {
		t.Fatalf("loadImage() error = %v", err)
	}
	if store.bucket != "books" || store.object != "covers/isbn.jpg" {
		t.Fatalf("unexpected object gs://%s/%s", store.bucket, store.object)
	}
	if string(image.GetContent()) != "gcs-bytes" {
		t.Fatalf("unexpected content %q", image.GetContent())
	}
}

func TestLoadImageFromStorageErrors(t *testing.T) {
	errMissing := errors.New("object doesn't exist")
	testCases := []struct {
		name     string
		detector *Detector
		path     string
	}{
		{"no storage client", New(nil), "gs://books/a.jpg"},
		{"malformed uri", New(nil, WithStorage(&fakeStorageClient{})), "gs://books"},
		{"read failure", New(nil, WithStorage(&fakeStorageClient{err: errMissing})), "gs://books/a.jpg"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.detector.loadImage(context.Background(), tc.path)
			var inputErr *InputError
			if !errors.As(err, &inputErr) || inputErr.Path != tc.path {
				t.Fatalf("expected InputError for %q, got %v", tc.path, err)
			}
		})
	}
}

func TestLoadImageFromURL(t *testing.T) {
	image, err := New(nil).loadImage(context.Background(), "https://example.com/cover.jpg")
	if err != nil {
		t.Fatalf("loadImage() error = %v", err)
	}
	if image.GetSource().GetImageUri() != "https://example.com/cover.jpg" || len(image.GetContent()) != 0 {
		t.Fatalf("expected the URL to be passed as image source, got %v", image)
	}
}

func TestLoadImageEmptyPath(t *testing.T) {
	_, err := New(nil).loadImage(context.Background(), "")
	if !errors.Is(err, ErrEmptyPath) {
		t.Fatalf("expected ErrEmptyPath, got %v", err)
	}
}

func TestLoadImageEmptyFileIsSent(t *testing.T) {
	image, err := New(nil).loadImage(context.Background(), writeImage(t, ""))
	if err != nil {
		t.Fatalf("empty files are rejected remotely, not locally: %v", err)
	}
	if len(image.GetContent()) != 0 {
		t.Fatalf("expected empty content")
	}
}
