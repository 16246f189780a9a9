package textutil_test

import (
	"testing"

	"songsearch/internal/textutil"
)

func TestFormatQuery(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"trims and collapses", "  Bohemian \t Rhapsody\n", "Bohemian Rhapsody"},
		{"full width folded", "Ｑｕｅｅｎ", "Queen"},
		{"ligature folded", "ﬁre", "fire"},
		{"control dropped", "Live\x00 Aid", "Live Aid"},
		{"punctuation kept", "Don't Stop Me Now (Live)", "Don't Stop Me Now (Live)"},
		{"empty", "   ", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := textutil.FormatQuery(tc.in); got != tc.want {
				t.Fatalf("FormatQuery(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestFormatResponse(t *testing.T) {
	if got := textutil.FormatResponse("Apple Music", "No result"); got != "Apple Music: No result" {
		t.Fatalf("unexpected response string %q", got)
	}
	if got := textutil.FormatResponse("  ", "https://music.apple.com/x"); got != "https://music.apple.com/x" {
		t.Fatalf("expected bare content without provider, got %q", got)
	}
}

func TestTitleCase(t *testing.T) {
	if got := textutil.TitleCase("no_match"); got != "No Match" {
		t.Fatalf("TitleCase = %q", got)
	}
	if got := textutil.TitleCase(""); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
