package impl

import (
	"context"
	"errors"
	"os"
	"strings"

	"cloud.google.com/go/vision/v2/apiv1/visionpb"

	"github.com/visionex-project/visiondetect/detect/impl/storage"
)

// Loads the image to annotate. Local files and gs:// objects are sent as bytes,
// http(s) URLs are left for the remote service to fetch.
// Image format is never checked here; the remote service rejects what it cannot read.
func (d *Detector) loadImage(ctx context.Context, path string) (*visionpb.Image, error) {
	switch {
	case path == "":
		return nil, &InputError{Path: path, Err: ErrEmptyPath}
	case isWebURL(path):
		return &visionpb.Image{Source: &visionpb.ImageSource{ImageUri: path}}, nil
	case storage.IsURI(path):
		return d.loadStorageImage(ctx, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &InputError{Path: path, Err: err}
	}
	return &visionpb.Image{Content: content}, nil
}

func (d *Detector) loadStorageImage(ctx context.Context, uri string) (*visionpb.Image, error) {
	if d.storage == nil {
		return nil, &InputError{Path: uri, Err: errors.New("no Cloud Storage client configured")}
	}
	bucket, object, err := storage.ParseURI(uri)
	if err != nil {
		return nil, &InputError{Path: uri, Err: err}
	}
	content, err := d.storage.ReadBytes(ctx, bucket, object)
	if err != nil {
		return nil, &InputError{Path: uri, Err: err}
	}
	return &visionpb.Image{Content: content}, nil
}

func isWebURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}
