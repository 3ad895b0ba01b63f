package impl

import (
	"context"
	"fmt"

	"cloud.google.com/go/vision/v2/apiv1/visionpb"
	"google.golang.org/protobuf/encoding/protojson"
)

func scanText(responses []AnnotationResponse) (Result, error) {
	result := Result{Mode: ModeText}
	for _, response := range responses {
		if response.HasError() {
			return result, &RemoteError{Message: response.Err}
		}

		for _, annotation := range response.Annotations {
			result.Lines = append(result.Lines,
				fmt.Sprintf("Text: %s", annotation.Text),
				fmt.Sprintf("Position : %s", annotation.Bounds),
			)
		}
	}
	return result, nil
}

// DetectJSON annotates the image and returns the raw service response as indented JSON.
// A remote error is still reported after the JSON so callers see both.
func (d *Detector) DetectJSON(ctx context.Context, path string) (Result, error) {
	response, err := d.Annotate(ctx, path)
	if err != nil {
		return Result{Mode: ModeText}, err
	}

	encoded, err := MarshalResponse(response)
	if err != nil {
		return Result{Mode: ModeText}, err
	}

	return Result{Mode: ModeText, Lines: []string{encoded}}, firstRemoteError(toAnnotationResponses(response))
}

func MarshalResponse(response *visionpb.BatchAnnotateImagesResponse) (string, error) {
	encoded, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(response)
	if err != nil {
		return "", fmt.Errorf("failed to encode response: %w", err)
	}
	return string(encoded), nil
}
