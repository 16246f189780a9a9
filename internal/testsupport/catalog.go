package testsupport

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"songsearch/internal/lookup"
)

// CatalogServer is a stub search endpoint that records the terms it receives.
type CatalogServer struct {
	URL string

	mu    sync.Mutex
	terms []string
}

// Terms returns the search terms received so far.
func (s *CatalogServer) Terms() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.terms))
	copy(out, s.terms)
	return out
}

// NewCatalogServer starts a server answering every request with status and body.
func NewCatalogServer(t testing.TB, status int, body string) *CatalogServer {
	t.Helper()

	stub := &CatalogServer{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stub.mu.Lock()
		stub.terms = append(stub.terms, r.URL.Query().Get("term"))
		stub.mu.Unlock()
		w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	stub.URL = server.URL + "/search"
	return stub
}

// PayloadJSON encodes candidates the way the catalog does, with resultCount
// matching the number of results.
func PayloadJSON(t testing.TB, candidates ...lookup.Candidate) string {
	t.Helper()

	if candidates == nil {
		candidates = []lookup.Candidate{}
	}
	data, err := json.Marshal(lookup.Payload{ResultCount: len(candidates), Results: candidates})
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	return string(data)
}

// Track builds a track candidate with predictable URLs derived from id.
func Track(id int64, trackName, collectionName string) lookup.Candidate {
	return lookup.Candidate{
		WrapperType:            "track",
		Kind:                   "song",
		TrackID:                json.Number(strconv.FormatInt(id, 10)),
		ArtistName:             "Queen",
		TrackName:              trackName,
		CollectionName:         collectionName,
		TrackCensoredName:      trackName,
		CollectionCensoredName: collectionName,
		TrackViewURL:           "https://music.apple.com/ua/album/" + strconv.FormatInt(id, 10),
		ArtworkURL100:          "https://is1-ssl.mzstatic.com/image/" + strconv.FormatInt(id, 10) + "/100x100bb.jpg",
	}
}
