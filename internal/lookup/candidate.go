package lookup

import "encoding/json"

// Candidate is one catalog entry as returned by the search endpoint. The
// pipeline only ever selects or discards candidates; it never edits them.
// TrackID keeps the raw JSON number.
type Candidate struct {
	WrapperType            string      `json:"wrapperType"`
	Kind                   string      `json:"kind"`
	TrackID                json.Number `json:"trackId"`
	ArtistName             string      `json:"artistName"`
	TrackName              string      `json:"trackName"`
	CollectionName         string      `json:"collectionName"`
	TrackCensoredName      string      `json:"trackCensoredName"`
	CollectionCensoredName string      `json:"collectionCensoredName"`
	TrackViewURL           string      `json:"trackViewUrl"`
	PreviewURL             string      `json:"previewUrl"`
	ArtworkURL30           string      `json:"artworkUrl30"`
	ArtworkURL60           string      `json:"artworkUrl60"`
	ArtworkURL100          string      `json:"artworkUrl100"`
	ReleaseDate            string      `json:"releaseDate"`
	PrimaryGenreName       string      `json:"primaryGenreName"`
	Country                string      `json:"country"`
}

// IsTrack reports whether the catalog classified the entry as a track.
func (c Candidate) IsTrack() bool {
	return c.WrapperType == "track"
}

// Payload is the decoded search response. Results keep catalog relevance order.
type Payload struct {
	ResultCount int         `json:"resultCount"`
	Results     []Candidate `json:"results"`
}
