package impl

import (
	"fmt"
	"strings"
)

const isbnMarker = "ISBN"

// Returns the annotation right after the first one reading "ISBN" (case-insensitive).
// This relies on the OCR engine emitting the marker and the number as two consecutive
// annotations, which holds for typical book back covers but is not guaranteed.
func scanISBN(responses []AnnotationResponse) (Result, error) {
	result := Result{Mode: ModeISBN}
	for _, response := range responses {
		if response.HasError() {
			return result, &RemoteError{Message: response.Err}
		}

		markerSeen := false
		for _, annotation := range response.Annotations {
			if markerSeen {
				result.Value = annotation.Text
				result.Found = true
				result.Lines = append(result.Lines, fmt.Sprintf("ISBN: %s", annotation.Text))
				return result, nil
			}
			if strings.EqualFold(strings.TrimSpace(annotation.Text), isbnMarker) {
				markerSeen = true
			}
		}
	}
	result.Lines = append(result.Lines, "No ISBN found")
	return result, nil
}
