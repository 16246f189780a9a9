package lookup_test

import (
	"errors"
	"testing"

	"songsearch/internal/lookup"
	"songsearch/internal/services"
)

func TestParsePayloadDecodesCatalogFields(t *testing.T) {
	raw := []byte(`{
  "resultCount": 1,
  "results": [{
    "wrapperType": "track",
    "kind": "song",
    "trackId": 1440650711,
    "collectionId": 1440650428,
    "artistName": "Queen",
    "trackName": "Bohemian Rhapsody",
    "collectionName": "A Night At the Opera (2011 Remaster)",
    "trackCensoredName": "Bohemian Rhapsody",
    "collectionCensoredName": "A Night At the Opera (2011 Remaster)",
    "trackViewUrl": "https://music.apple.com/ua/album/bohemian-rhapsody/1440650428?i=1440650711",
    "artworkUrl100": "https://is1-ssl.mzstatic.com/image/thumb/100x100bb.jpg",
    "trackTimeMillis": 354947,
    "isStreamable": true
  }]
}`)
	payload, err := lookup.ParsePayload(raw)
	if err != nil {
		t.Fatalf("ParsePayload returned error: %v", err)
	}
	if payload.ResultCount != 1 || len(payload.Results) != 1 {
		t.Fatalf("unexpected payload shape: %+v", payload)
	}
	got := payload.Results[0]
	if got.TrackName != "Bohemian Rhapsody" || got.TrackID != "1440650711" || !got.IsTrack() {
		t.Fatalf("unexpected candidate: %+v", got)
	}
	if got.ArtworkURL100 == "" || got.TrackViewURL == "" {
		t.Fatalf("expected urls to decode: %+v", got)
	}
}

func TestParsePayloadEmptyResultsIsNotAnError(t *testing.T) {
	for _, raw := range []string{`{"resultCount":0,"results":[]}`, `{"resultCount":0}`} {
		payload, err := lookup.ParsePayload([]byte(raw))
		if err != nil {
			t.Fatalf("ParsePayload(%s) returned error: %v", raw, err)
		}
		if payload.ResultCount != 0 || len(payload.Results) != 0 {
			t.Fatalf("ParsePayload(%s) = %+v", raw, payload)
		}
	}
}

func TestParsePayloadMalformed(t *testing.T) {
	for _, raw := range []string{`<html>Service Unavailable</html>`, `{"resultCount": 1, "results": [`, ``, `[1,2]`, `{"resultCount":"one"}`, `null`, `{}`, `{"results":[]}`} {
		_, err := lookup.ParsePayload([]byte(raw))
		if err == nil {
			t.Fatalf("expected parse error for %q", raw)
		}
		if !errors.Is(err, services.ErrParse) {
			t.Fatalf("expected parse marker for %q, got %v", raw, err)
		}
	}
}

func TestParsePayloadToleratesUnusualIDs(t *testing.T) {
	raw := []byte(`{"resultCount":1,"results":[{"trackName":"x","trackId":1.5,"collectionId":"abc","trackTimeMillis":"long"}]}`)
	payload, err := lookup.ParsePayload(raw)
	if err != nil {
		t.Fatalf("ParsePayload returned error: %v", err)
	}
	if len(payload.Results) != 1 || payload.Results[0].TrackName != "x" || payload.Results[0].TrackID != "1.5" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}
