package utils

import (
	"strings"
	"testing"
)

func TestDecodeImageDataURI(t *testing.T) {
	// "hello" base64-encoded
	contentType, ext, data, err := decodeImageDataURI("data:image/png;base64,aGVsbG8=")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if contentType != "image/png" {
		t.Fatalf("expected image/png got %q", contentType)
	}
	if ext != ".png" {
		t.Fatalf("expected .png got %q", ext)
	}
	if string(data) != "hello" {
		t.Fatalf("unexpected payload: %q", data)
	}
}

func TestDecodeImageDataURIJpegExtension(t *testing.T) {
	_, ext, _, err := decodeImageDataURI("data:image/jpeg;base64,aGVsbG8=")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ext != ".jpg" {
		t.Fatalf("expected .jpg got %q", ext)
	}
}

func TestDecodeImageDataURIRejectsGarbage(t *testing.T) {
	cases := []string{
		"not a data uri",
		"data:image/png;base64",             // no comma
		"data:image/png;base64,%%%invalid",  // bad base64
		strings.Repeat(",", 3),              // too many parts
	}
	for _, c := range cases {
		if _, _, _, err := decodeImageDataURI(c); err == nil {
			t.Errorf("expected error for %q", c)
		}
	}
}
