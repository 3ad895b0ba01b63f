package impl

import (
	"fmt"
	"strings"

	"cloud.google.com/go/vision/v2/apiv1/visionpb"

	"github.com/visionex-project/visiondetect/pkg/utils"
)

// A single text fragment recognized by the remote OCR service.
type Annotation struct {
	// Recognized text. E.g., "ISBN"
	Text string
	// Where the text was found on the image. Carried through for display only.
	Bounds Polygon
}

// Vertex is a pixel coordinate on the submitted image.
type Vertex struct {
	X int32
	Y int32
}

// Polygon is the ordered list of vertices surrounding an annotation.
type Polygon []Vertex

// E.g., "(10,20) (110,20) (110,40) (10,40)"
func (p Polygon) String() string {
	return strings.Join(utils.Map(p, func(v Vertex) string {
		return fmt.Sprintf("(%d,%d)", v.X, v.Y)
	}), " ")
}

// AnnotationResponse holds the outcome of annotating one image.
// When Err is set the annotations must be treated as absent.
type AnnotationResponse struct {
	Annotations []Annotation
	Err         string
}

func (r AnnotationResponse) HasError() bool {
	return r.Err != ""
}

func toAnnotationResponses(response *visionpb.BatchAnnotateImagesResponse) []AnnotationResponse {
	return utils.Map(response.GetResponses(), toAnnotationResponse)
}

func toAnnotationResponse(response *visionpb.AnnotateImageResponse) AnnotationResponse {
	if response.GetError() != nil {
		message := response.GetError().GetMessage()
		if message == "" {
			// A status without a message still signals failure.
			message = fmt.Sprintf("remote error code %d", response.GetError().GetCode())
		}
		return AnnotationResponse{Err: message}
	}
	return AnnotationResponse{
		Annotations: utils.Map(response.GetTextAnnotations(), func(annotation *visionpb.EntityAnnotation) Annotation {
			return Annotation{
				Text: annotation.GetDescription(),
				Bounds: utils.Map(annotation.GetBoundingPoly().GetVertices(), func(vertex *visionpb.Vertex) Vertex {
					return Vertex{X: vertex.GetX(), Y: vertex.GetY()}
				}),
			}
		}),
	}
}
