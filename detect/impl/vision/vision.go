package vision

import (
	"context"

	"cloud.google.com/go/vision/v2/apiv1/visionpb"
	gax "github.com/googleapis/gax-go/v2"
)

// Client is an interface for the vision.ImageAnnotatorClient
// Ref: https://pkg.go.dev/cloud.google.com/go/vision/v2/apiv1
// This interface is used for mocking the vision.ImageAnnotatorClient in unit tests.
type Client interface {
	BatchAnnotateImages(ctx context.Context, req *visionpb.BatchAnnotateImagesRequest, opts ...gax.CallOption) (*visionpb.BatchAnnotateImagesResponse, error)
}

// TextDetectionRequest wraps a single image into a one-element batch that asks for text detection only.
func TextDetectionRequest(image *visionpb.Image) *visionpb.BatchAnnotateImagesRequest {
	return &visionpb.BatchAnnotateImagesRequest{
		Requests: []*visionpb.AnnotateImageRequest{
			{
				Image: image,
				Features: []*visionpb.Feature{
					{Type: visionpb.Feature_TEXT_DETECTION},
				},
			},
		},
	}
}
