package impl

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestReportTextRemoteError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	client := &fakeVisionClient{response: errorResponse("quota exceeded")}

	result, err := New(client).Detect(context.Background(), ModeText, writeImage(t, "x"))
	code := NewReporter(&stdout, &stderr).Report(result, err)

	if code != ExitError {
		t.Fatalf("expected exit code %d got %d", ExitError, code)
	}
	if !strings.Contains(stderr.String(), "quota exceeded") {
		t.Fatalf("expected error message on stderr, got %q", stderr.String())
	}
	if strings.Contains(stdout.String(), "Text:") {
		t.Fatalf("no annotation may be printed, got %q", stdout.String())
	}
}

func TestReportResult(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := NewReporter(&stdout, &stderr).Report(Result{Lines: []string{"ISBN: 123"}, Value: "123", Found: true}, nil)

	if code != ExitOK {
		t.Fatalf("expected exit code 0 got %d", code)
	}
	if stdout.String() != "ISBN: 123\n" || stderr.Len() != 0 {
		t.Fatalf("unexpected output stdout=%q stderr=%q", stdout.String(), stderr.String())
	}
}

func TestReportNotFoundIsNotAnError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	result, err := scanISBN(annotations("Title"))

	if code := NewReporter(&stdout, &stderr).Report(result, err); code != ExitOK {
		t.Fatalf("expected exit code 0 for no match, got %d", code)
	}
	if stderr.Len() != 0 {
		t.Fatalf("no match must not be reported as an error, got %q", stderr.String())
	}
}

func TestFail(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		code     int
		contains string
	}{
		{"remote", &RemoteError{Message: "bad image data"}, ExitError, "Error: bad image data"},
		{"usage", &UsageError{Message: `unknown command "x"`}, ExitUsage, `unknown command "x"`},
		{"input", &InputError{Path: "a.jpg", Err: fmt.Errorf("no such file")}, ExitError, "a.jpg"},
		{"transport", fmt.Errorf("failed to detect text: %w", status.Error(codes.Unauthenticated, "bad credentials")), ExitError, "Unauthenticated"},
		{"plain", fmt.Errorf("boom"), ExitError, "Error: boom"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := NewReporter(&stdout, &stderr).Fail(tc.err)
			if code != tc.code {
				t.Fatalf("expected exit code %d got %d", tc.code, code)
			}
			if !strings.Contains(stderr.String(), tc.contains) {
				t.Fatalf("expected %q in %q", tc.contains, stderr.String())
			}
			if stdout.Len() != 0 {
				t.Fatalf("errors must not go to stdout, got %q", stdout.String())
			}
		})
	}
}

func TestFailNil(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := NewReporter(&stdout, &stderr).Fail(nil); code != ExitOK || stderr.Len() != 0 {
		t.Fatalf("expected silent success, got code %d stderr %q", code, stderr.String())
	}
}
