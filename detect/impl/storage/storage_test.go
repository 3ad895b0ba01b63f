package storage

import "testing"

func TestParseURI(t *testing.T) {
	testCases := []struct {
		uri     string
		bucket  string
		object  string
		wantErr bool
	}{
		{"gs://books/covers/isbn.jpg", "books", "covers/isbn.jpg", false},
		{"gs://books/a.png", "books", "a.png", false},
		{"gs://books", "", "", true},
		{"gs://books/", "", "", true},
		{"gs:///a.png", "", "", true},
		{"./resources/wakeupcat.jpg", "", "", true},
	}

	for _, tc := range testCases {
		bucket, object, err := ParseURI(tc.uri)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseURI(%q) error = %v, wantErr %v", tc.uri, err, tc.wantErr)
			continue
		}
		if bucket != tc.bucket || object != tc.object {
			t.Errorf("ParseURI(%q) = (%q, %q), expected (%q, %q)", tc.uri, bucket, object, tc.bucket, tc.object)
		}
	}
}

func TestIsURI(t *testing.T) {
	if !IsURI("gs://bucket/object") {
		t.Error("expected gs:// path to be a storage URI")
	}
	if IsURI("/tmp/gs://x") {
		t.Error("did not expect a local path to be a storage URI")
	}
}
