package lookup_test

import (
	"errors"
	"testing"

	"songsearch/internal/lookup"
	"songsearch/internal/services"
)

func TestFromErrorClassifiesByMarker(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want lookup.Kind
	}{
		{"transport", services.Wrap(services.ErrTransport, "itunes", "search", "", errors.New("reset")), lookup.KindTransportFailure},
		{"parse", services.Wrap(services.ErrParse, "lookup", "decode payload", "", nil), lookup.KindParseFailure},
		{"no match", services.Wrap(services.ErrNoMatch, "lookup", "select", "", nil), lookup.KindNoMatch},
		{"validation", services.Wrap(services.ErrValidation, "itunes", "search", "term must not be empty", nil), lookup.KindTransportFailure},
		{"unmarked", errors.New("plain"), lookup.KindTransportFailure},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			outcome := lookup.FromError(tc.err)
			if outcome.Kind != tc.want {
				t.Fatalf("FromError(%v) = %s, want %s", tc.err, outcome.Kind, tc.want)
			}
			if outcome.Err != tc.err {
				t.Fatalf("expected cause to be kept, got %v", outcome.Err)
			}
		})
	}
}

func TestOutcomeContentSentinels(t *testing.T) {
	cases := []struct {
		outcome lookup.Outcome
		want    string
	}{
		{lookup.Selected(studio), studio.TrackViewURL},
		{lookup.NoMatch(nil), lookup.SentinelNoResult},
		{lookup.ParseFailure(nil), lookup.SentinelParsingError},
		{lookup.TransportFailure(nil), lookup.SentinelRequestError},
	}
	for _, tc := range cases {
		if got := tc.outcome.Content(); got != tc.want {
			t.Fatalf("%s content = %q, want %q", tc.outcome.Kind, got, tc.want)
		}
	}
}

func TestSelectedWithoutArtworkStaysSelected(t *testing.T) {
	bare := studio
	bare.ArtworkURL100 = ""
	resp := lookup.Selected(bare).Render("Apple Music", nil)
	if resp.URL != "Apple Music: "+bare.TrackViewURL || resp.AlbumCover != "" {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestKindString(t *testing.T) {
	if got := lookup.Kind(0).String(); got != "unknown" {
		t.Fatalf("expected unknown for zero kind, got %q", got)
	}
	if got := lookup.KindNoMatch.String(); got != "no_match" {
		t.Fatalf("unexpected label %q", got)
	}
}
