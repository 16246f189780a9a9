package services_test

import (
	"errors"
	"strings"
	"testing"

	"songsearch/internal/services"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("connection reset")
	err := services.Wrap(services.ErrTransport, "itunes", "search", "request failed", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, services.ErrTransport) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"itunes", "search", "request failed"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestWrapDefaultsToTransportMarker(t *testing.T) {
	err := services.Wrap(nil, "", "", "", nil)
	if !errors.Is(err, services.ErrTransport) {
		t.Fatalf("expected transport marker, got %v", err)
	}
	if !strings.Contains(err.Error(), "service failure") {
		t.Fatalf("expected fallback detail, got %q", err.Error())
	}
}

func TestMarkerClassification(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"transport", services.Wrap(services.ErrTransport, "itunes", "search", "", errors.New("io")), services.ErrTransport},
		{"parse", services.Wrap(services.ErrParse, "lookup", "decode", "", nil), services.ErrParse},
		{"no match", services.Wrap(services.ErrNoMatch, "lookup", "select", "", nil), services.ErrNoMatch},
		{"unmarked", errors.New("plain"), nil},
		{"nil", nil, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := services.Marker(tc.err); got != tc.want {
				t.Fatalf("Marker(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}
