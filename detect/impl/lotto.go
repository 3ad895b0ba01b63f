package impl

import (
	"fmt"
	"regexp"
)

// LottoPattern matches five two-digit numbers separated by whitespace, followed
// somewhere later by a sixth two-digit number. E.g., "04 11 23 38 45 PB 17"
var LottoPattern = regexp.MustCompile(`(\d{2}\s){4}\d{2}.*\d{2}`)

const lottoNotFound = "Detect didn't find anything that looks like lotto numbers!"

// Without a pattern every annotation is listed and nothing is ever found.
func scanLotto(responses []AnnotationResponse, pattern *regexp.Regexp) (Result, error) {
	result := Result{Mode: ModeLotto}
	for _, response := range responses {
		if response.HasError() {
			return result, &RemoteError{Message: response.Err}
		}

		for _, annotation := range response.Annotations {
			if pattern == nil {
				result.Lines = append(result.Lines, fmt.Sprintf("Detect returns: %s", annotation.Text))
				continue
			}
			if pattern.MatchString(annotation.Text) {
				result.Lines = append(result.Lines, fmt.Sprintf("Detect returns: %s", annotation.Text))
				result.Value = annotation.Text
				result.Found = true
				return result, nil
			}
		}
	}
	result.Lines = append(result.Lines, lottoNotFound)
	return result, nil
}
